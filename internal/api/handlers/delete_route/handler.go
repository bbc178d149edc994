package delete_route

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

const msgIDRequired = "Route ID is required"

type Handler struct {
	service RouteService
	logger  Logger
}

func NewHandler(service RouteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/routes?id=N
// Смены удаленного маршрута остаются, их длительность при проверке
// конфликтов считается нулевой.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgIDRequired)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /routes - Failed to delete route: route_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /routes - Route deleted: route_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
