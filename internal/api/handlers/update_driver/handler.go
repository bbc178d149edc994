package update_driver

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	driversService "github.com/m04kA/SMC-FleetService/internal/service/drivers"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgIDRequired         = "Driver ID is required"
	msgDriverNotFound     = "Driver not found"
)

// UpdateDriverRequest HTTP request model.
// Поля кроме id опциональны, не переданные не меняются.
type UpdateDriverRequest struct {
	ID            int64   `json:"id"`
	Name          *string `json:"name"`
	LicenseNumber *string `json:"license_number"`
	Available     *bool   `json:"available"`
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

// Handle PUT /api/drivers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateDriverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drivers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ID == 0 {
		handlers.RespondBadRequest(w, msgIDRequired)
		return
	}

	driver, err := h.service.Update(r.Context(), req.ID, req.Name, req.LicenseNumber, req.Available)
	if err != nil {
		switch {
		case errors.Is(err, driversService.ErrDriverNotFound):
			h.logger.Warn("PUT /drivers - Driver not found: driver_id=%d", req.ID)
			handlers.RespondNotFound(w, msgDriverNotFound)

		case errors.Is(err, driversService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("PUT /drivers - Failed to update driver: driver_id=%d, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /drivers - Driver updated: driver_id=%d", driver.ID)
	handlers.RespondJSON(w, http.StatusOK, &DriverResponse{
		ID:            driver.ID,
		Name:          driver.Name,
		LicenseNumber: driver.LicenseNumber,
		Available:     driver.Available,
	})
}
