package domain

import (
	"time"

	"github.com/m04kA/SMC-FleetService/pkg/types"
)

// Shift смена: назначение водителя на автобус и маршрут в конкретную
// дату и время. Время окончания не хранится — оно вычисляется по
// длительности маршрута в момент проверки.
//
// Дата и время наивные (без таймзоны): вся арифметика идет в минутах
// с полуночи по 24-часовому циферблату.
type Shift struct {
	ID        int64
	DriverID  int64
	BusID     int64
	RouteID   int64
	ShiftDate time.Time
	ShiftTime types.TimeString
}

// DriverSummary краткие данные водителя для списка смен
type DriverSummary struct {
	ID            int64
	Name          string
	LicenseNumber string
	Available     bool
}

// BusSummary краткие данные автобуса для списка смен
type BusSummary struct {
	ID          int64
	PlateNumber string
	Capacity    int
}

// RouteSummary краткие данные маршрута для списка смен
type RouteSummary struct {
	ID                       int64
	Origin                   string
	Destination              string
	EstimatedDurationMinutes int
}

// ShiftWithRelations смена вместе со связанными сущностями.
// Связи подтягиваются LEFT JOIN-ами, поэтому могут отсутствовать.
type ShiftWithRelations struct {
	Shift
	Driver *DriverSummary
	Bus    *BusSummary
	Route  *RouteSummary
}
