package create_route

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	routesService "github.com/m04kA/SMC-FleetService/internal/service/routes"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
)

// CreateRouteRequest HTTP request model
type CreateRouteRequest struct {
	Origin                   string `json:"origin"`
	Destination              string `json:"destination"`
	EstimatedDurationMinutes int    `json:"estimated_duration_minutes"`
}

// RouteResponse HTTP response model
type RouteResponse struct {
	ID                       int64  `json:"id"`
	Origin                   string `json:"origin"`
	Destination              string `json:"destination"`
	EstimatedDurationMinutes int    `json:"estimated_duration_minutes"`
}

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

// Handle POST /api/routes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRouteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /routes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	route, err := h.service.Create(r.Context(), req.Origin, req.Destination, req.EstimatedDurationMinutes)
	if err != nil {
		if errors.Is(err, routesService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingFields)
			return
		}
		h.logger.Error("POST /routes - Failed to create route: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /routes - Route created: route_id=%d", route.ID)
	handlers.RespondJSON(w, http.StatusCreated, &RouteResponse{
		ID:                       route.ID,
		Origin:                   route.Origin,
		Destination:              route.Destination,
		EstimatedDurationMinutes: route.EstimatedDurationMinutes,
	})
}
