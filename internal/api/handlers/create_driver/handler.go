package create_driver

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	driversService "github.com/m04kA/SMC-FleetService/internal/service/drivers"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
)

// CreateDriverRequest HTTP request model.
// Отсутствующее поле available трактуется как true.
type CreateDriverRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Available     *bool  `json:"available"`
}

// DriverResponse HTTP response model
type DriverResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Available     bool   `json:"available"`
}

type Handler struct {
	service DriverService
	logger  Logger
}

func NewHandler(service DriverService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/drivers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDriverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drivers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	driver, err := h.service.Create(r.Context(), req.Name, req.LicenseNumber, available)
	if err != nil {
		if errors.Is(err, driversService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingFields)
			return
		}
		h.logger.Error("POST /drivers - Failed to create driver: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drivers - Driver created: driver_id=%d", driver.ID)
	handlers.RespondJSON(w, http.StatusCreated, &DriverResponse{
		ID:            driver.ID,
		Name:          driver.Name,
		LicenseNumber: driver.LicenseNumber,
		Available:     driver.Available,
	})
}
