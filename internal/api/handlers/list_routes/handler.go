package list_routes

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

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

// Handle GET /api/routes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	routes, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /routes - Failed to list routes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*RouteResponse, 0, len(routes))
	for _, route := range routes {
		result = append(result, &RouteResponse{
			ID:                       route.ID,
			Origin:                   route.Origin,
			Destination:              route.Destination,
			EstimatedDurationMinutes: route.EstimatedDurationMinutes,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
