package list_buses

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

// BusResponse HTTP response model
type BusResponse struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plate_number"`
	Capacity    int    `json:"capacity"`
}

type Handler struct {
	service BusService
	logger  Logger
}

func NewHandler(service BusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/buses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	buses, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /buses - Failed to list buses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*BusResponse, 0, len(buses))
	for _, bus := range buses {
		result = append(result, &BusResponse{
			ID:          bus.ID,
			PlateNumber: bus.PlateNumber,
			Capacity:    bus.Capacity,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
