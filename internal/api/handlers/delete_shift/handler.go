package delete_shift

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

const msgIDRequired = "Shift ID is required"

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

// Handle DELETE /api/shifts?id=N
// Удаление идемпотентно: повторный запрос тоже вернет success.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgIDRequired)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /shifts - Failed to delete shift: shift_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /shifts - Shift deleted: shift_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
