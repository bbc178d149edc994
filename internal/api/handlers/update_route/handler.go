package update_route

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	routesService "github.com/m04kA/SMC-FleetService/internal/service/routes"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgIDRequired         = "Route ID is required"
	msgRouteNotFound      = "Route not found"
)

// UpdateRouteRequest HTTP request model.
// Поля кроме id опциональны, не переданные не меняются.
type UpdateRouteRequest struct {
	ID                       int64   `json:"id"`
	Origin                   *string `json:"origin"`
	Destination              *string `json:"destination"`
	EstimatedDurationMinutes *int    `json:"estimated_duration_minutes"`
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

// Handle PUT /api/routes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateRouteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /routes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ID == 0 {
		handlers.RespondBadRequest(w, msgIDRequired)
		return
	}

	route, err := h.service.Update(r.Context(), req.ID, req.Origin, req.Destination, req.EstimatedDurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, routesService.ErrRouteNotFound):
			h.logger.Warn("PUT /routes - Route not found: route_id=%d", req.ID)
			handlers.RespondNotFound(w, msgRouteNotFound)

		case errors.Is(err, routesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("PUT /routes - Failed to update route: route_id=%d, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /routes - Route updated: route_id=%d", route.ID)
	handlers.RespondJSON(w, http.StatusOK, &RouteResponse{
		ID:                       route.ID,
		Origin:                   route.Origin,
		Destination:              route.Destination,
		EstimatedDurationMinutes: route.EstimatedDurationMinutes,
	})
}
