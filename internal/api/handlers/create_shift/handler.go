package create_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	createShift "github.com/m04kA/SMC-FleetService/internal/usecase/create_shift"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgInvalidDateOrTime  = "Invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgRouteNotFound      = "Route not found"
)

type Handler struct {
	useCase CreateShiftUseCase
	logger  Logger
}

func NewHandler(useCase CreateShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.DriverID == 0 || req.BusID == 0 || req.RouteID == 0 || req.ShiftDate == "" || req.ShiftTime == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /shifts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createShift.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /shifts - Schedule conflict: driver_id=%d", req.DriverID)
			handlers.RespondBadRequest(w, conflict.Error())

		case errors.Is(err, createShift.ErrRouteNotFound):
			// Маршрут проверяется до детектора конфликтов, ответ 400, а не 404
			h.logger.Warn("POST /shifts - Route not found: route_id=%d", req.RouteID)
			handlers.RespondBadRequest(w, msgRouteNotFound)

		case errors.Is(err, createShift.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /shifts - Failed to create shift: driver_id=%d, error=%v", req.DriverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shifts - Shift created successfully: shift_id=%d, driver_id=%d", result.ID, req.DriverID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
