package create_bus

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	busesService "github.com/m04kA/SMC-FleetService/internal/service/buses"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
)

// CreateBusRequest HTTP request model
type CreateBusRequest struct {
	PlateNumber string `json:"plate_number"`
	Capacity    int    `json:"capacity"`
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

// Handle POST /api/buses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /buses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	bus, err := h.service.Create(r.Context(), req.PlateNumber, req.Capacity)
	if err != nil {
		if errors.Is(err, busesService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingFields)
			return
		}
		h.logger.Error("POST /buses - Failed to create bus: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /buses - Bus created: bus_id=%d", bus.ID)
	handlers.RespondJSON(w, http.StatusCreated, &BusResponse{
		ID:          bus.ID,
		PlateNumber: bus.PlateNumber,
		Capacity:    bus.Capacity,
	})
}
