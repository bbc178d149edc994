package update_bus

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	busesService "github.com/m04kA/SMC-FleetService/internal/service/buses"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgIDRequired         = "Bus ID is required"
	msgBusNotFound        = "Bus not found"
)

// UpdateBusRequest HTTP request model.
// Поля кроме id опциональны, не переданные не меняются.
type UpdateBusRequest struct {
	ID          int64   `json:"id"`
	PlateNumber *string `json:"plate_number"`
	Capacity    *int    `json:"capacity"`
}

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

// Handle PUT /api/buses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateBusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /buses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ID == 0 {
		handlers.RespondBadRequest(w, msgIDRequired)
		return
	}

	bus, err := h.service.Update(r.Context(), req.ID, req.PlateNumber, req.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, busesService.ErrBusNotFound):
			h.logger.Warn("PUT /buses - Bus not found: bus_id=%d", req.ID)
			handlers.RespondNotFound(w, msgBusNotFound)

		case errors.Is(err, busesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("PUT /buses - Failed to update bus: bus_id=%d, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /buses - Bus updated: bus_id=%d", bus.ID)
	handlers.RespondJSON(w, http.StatusOK, &BusResponse{
		ID:          bus.ID,
		PlateNumber: bus.PlateNumber,
		Capacity:    bus.Capacity,
	})
}
