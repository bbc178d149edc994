package update_shift

import (
	"time"

	"github.com/m04kA/SMC-FleetService/pkg/types"
)

// Request модель запроса на обновление смены
type Request struct {
	ID        int64            // ID обновляемой смены
	DriverID  int64            // ID водителя
	BusID     int64            // ID автобуса
	RouteID   int64            // ID маршрута
	Date      time.Time        // Дата смены (без времени)
	StartTime types.TimeString // Время начала смены
}

// Response модель ответа с обновленной сменой
type Response struct {
	ID        int64            // ID смены
	DriverID  int64            // ID водителя
	BusID     int64            // ID автобуса
	RouteID   int64            // ID маршрута
	Date      time.Time        // Дата смены
	StartTime types.TimeString // Время начала
}
