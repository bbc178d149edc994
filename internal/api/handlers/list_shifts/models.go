package list_shifts

import (
	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// DriverResponse данные водителя смены
type DriverResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Available     bool   `json:"available"`
}

// BusResponse данные автобуса смены
type BusResponse struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plate_number"`
	Capacity    int    `json:"capacity"`
}

// RouteResponse данные маршрута смены
type RouteResponse struct {
	ID                       int64  `json:"id"`
	Origin                   string `json:"origin"`
	Destination              string `json:"destination"`
	EstimatedDurationMinutes int    `json:"estimated_duration_minutes"`
}

// ShiftResponse HTTP response model смены со связями
type ShiftResponse struct {
	ID        int64           `json:"id"`
	DriverID  int64           `json:"driver_id"`
	BusID     int64           `json:"bus_id"`
	RouteID   int64           `json:"route_id"`
	ShiftDate string          `json:"shift_date"`
	ShiftTime string          `json:"shift_time"`
	Driver    *DriverResponse `json:"driver,omitempty"`
	Bus       *BusResponse    `json:"bus,omitempty"`
	Route     *RouteResponse  `json:"route,omitempty"`
}

// FromDomainShifts конвертирует смены со связями в HTTP response
func FromDomainShifts(shifts []*domain.ShiftWithRelations) []*ShiftResponse {
	result := make([]*ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		resp := &ShiftResponse{
			ID:        shift.ID,
			DriverID:  shift.DriverID,
			BusID:     shift.BusID,
			RouteID:   shift.RouteID,
			ShiftDate: shift.ShiftDate.Format(domain.DateFormat),
			ShiftTime: shift.ShiftTime.String(),
		}

		if shift.Driver != nil {
			resp.Driver = &DriverResponse{
				ID:            shift.Driver.ID,
				Name:          shift.Driver.Name,
				LicenseNumber: shift.Driver.LicenseNumber,
				Available:     shift.Driver.Available,
			}
		}
		if shift.Bus != nil {
			resp.Bus = &BusResponse{
				ID:          shift.Bus.ID,
				PlateNumber: shift.Bus.PlateNumber,
				Capacity:    shift.Bus.Capacity,
			}
		}
		if shift.Route != nil {
			resp.Route = &RouteResponse{
				ID:                       shift.Route.ID,
				Origin:                   shift.Route.Origin,
				Destination:              shift.Route.Destination,
				EstimatedDurationMinutes: shift.Route.EstimatedDurationMinutes,
			}
		}

		result = append(result, resp)
	}
	return result
}
