package create_shift

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	createShift "github.com/m04kA/SMC-FleetService/internal/usecase/create_shift"
	"github.com/m04kA/SMC-FleetService/pkg/types"
)

// CreateShiftRequest HTTP request model
type CreateShiftRequest struct {
	DriverID  int64  `json:"driver_id"`
	BusID     int64  `json:"bus_id"`
	RouteID   int64  `json:"route_id"`
	ShiftDate string `json:"shift_date"` // "2025-11-03"
	ShiftTime string `json:"shift_time"` // "08:00"
}

// ShiftResponse HTTP response model
type ShiftResponse struct {
	ID        int64  `json:"id"`
	DriverID  int64  `json:"driver_id"`
	BusID     int64  `json:"bus_id"`
	RouteID   int64  `json:"route_id"`
	ShiftDate string `json:"shift_date"`
	ShiftTime string `json:"shift_time"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateShiftRequest) ToUseCaseRequest() (*createShift.Request, error) {
	shiftDate, err := time.Parse(domain.DateFormat, r.ShiftDate)
	if err != nil {
		return nil, err
	}

	shiftTime, err := types.NewTimeStringFromString(r.ShiftTime)
	if err != nil {
		return nil, err
	}

	return &createShift.Request{
		DriverID:  r.DriverID,
		BusID:     r.BusID,
		RouteID:   r.RouteID,
		Date:      shiftDate,
		StartTime: shiftTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createShift.Response) *ShiftResponse {
	return &ShiftResponse{
		ID:        resp.ID,
		DriverID:  resp.DriverID,
		BusID:     resp.BusID,
		RouteID:   resp.RouteID,
		ShiftDate: resp.Date.Format(domain.DateFormat),
		ShiftTime: resp.StartTime.String(),
	}
}
