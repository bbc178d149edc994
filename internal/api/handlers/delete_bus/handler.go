package delete_bus

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

const msgIDRequired = "Bus ID is required"

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

// Handle DELETE /api/buses?id=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgIDRequired)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /buses - Failed to delete bus: bus_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /buses - Bus deleted: bus_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
