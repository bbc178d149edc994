package list_drivers

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/domain"
)

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

// Handle GET /api/drivers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /drivers - Failed to list drivers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		result = append(result, fromDomainDriver(driver))
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func fromDomainDriver(driver *domain.Driver) *DriverResponse {
	return &DriverResponse{
		ID:            driver.ID,
		Name:          driver.Name,
		LicenseNumber: driver.LicenseNumber,
		Available:     driver.Available,
	}
}
