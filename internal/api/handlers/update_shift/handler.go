package update_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	updateShift "github.com/m04kA/SMC-FleetService/internal/usecase/update_shift"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgIDRequired         = "Shift ID is required"
	msgInvalidDateOrTime  = "Invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgShiftNotFound      = "Shift not found"
	msgRouteNotFound      = "Route not found"
)

type Handler struct {
	useCase UpdateShiftUseCase
	logger  Logger
}

func NewHandler(useCase UpdateShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ID == 0 {
		handlers.RespondBadRequest(w, msgIDRequired)
		return
	}

	if req.DriverID == 0 || req.BusID == 0 || req.RouteID == 0 || req.ShiftDate == "" || req.ShiftTime == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /shifts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *updateShift.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /shifts - Schedule conflict: shift_id=%d, driver_id=%d", req.ID, req.DriverID)
			handlers.RespondBadRequest(w, conflict.Error())

		case errors.Is(err, updateShift.ErrShiftNotFound):
			h.logger.Warn("PUT /shifts - Shift not found: shift_id=%d", req.ID)
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, updateShift.ErrRouteNotFound):
			// Маршрут проверяется до детектора конфликтов, ответ 400, а не 404
			h.logger.Warn("PUT /shifts - Route not found: route_id=%d", req.RouteID)
			handlers.RespondBadRequest(w, msgRouteNotFound)

		case errors.Is(err, updateShift.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("PUT /shifts - Failed to update shift: shift_id=%d, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /shifts - Shift updated successfully: shift_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
