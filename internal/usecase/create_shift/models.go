package create_shift

import (
	"time"

	"github.com/m04kA/SMC-FleetService/pkg/types"
)

// Request модель запроса на создание смены
type Request struct {
	DriverID  int64            // ID водителя
	BusID     int64            // ID автобуса
	RouteID   int64            // ID маршрута
	Date      time.Time        // Дата смены (без времени)
	StartTime types.TimeString // Время начала смены (например, "08:00")
}

// Response модель ответа с созданной сменой
type Response struct {
	ID        int64            // ID созданной смены
	DriverID  int64            // ID водителя
	BusID     int64            // ID автобуса
	RouteID   int64            // ID маршрута
	Date      time.Time        // Дата смены
	StartTime types.TimeString // Время начала
}
