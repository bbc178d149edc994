package list_shifts

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /shifts - Failed to list shifts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainShifts(shifts))
}
