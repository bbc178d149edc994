package shifts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-FleetService/pkg/types"
)

// Repository репозиторий для работы со сменами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую смену
func (r *Repository) Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shifts").
		Columns("driver_id", "bus_id", "route_id", "shift_date", "shift_time").
		Values(shift.DriverID, shift.BusID, shift.RouteID, shift.ShiftDate, shift.ShiftTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&shift.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return shift, nil
}

// Update обновляет смену целиком по id
func (r *Repository) Update(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shifts").
		Set("driver_id", shift.DriverID).
		Set("bus_id", shift.BusID).
		Set("route_id", shift.RouteID).
		Set("shift_date", shift.ShiftDate).
		Set("shift_time", shift.ShiftTime).
		Where(squirrel.Eq{"id": shift.ID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&shift.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return shift, nil
}

// Delete удаляет смену. Удаление идемпотентно: отсутствие строки
// не считается ошибкой.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByDriverAndDate возвращает смены водителя на дату вместе с
// длительностью маршрута — ровно то, что нужно детектору конфликтов.
// Длительность отсутствующего маршрута приводится к нулю.
// Сортировка по времени начала делает сообщение о конфликте детерминированным.
func (r *Repository) GetByDriverAndDate(ctx context.Context, driverID int64, date time.Time) ([]domain.ScheduledShift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.shift_time",
		"COALESCE(r.estimated_duration_minutes, 0)",
	).
		From("shifts s").
		LeftJoin("routes r ON r.id = s.route_id").
		Where(squirrel.Eq{"s.driver_id": driverID, "s.shift_date": date}).
		OrderBy("s.shift_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDriverAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDriverAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	scheduled := make([]domain.ScheduledShift, 0)
	for rows.Next() {
		var shift domain.ScheduledShift
		if err := rows.Scan(&shift.ID, &shift.StartTime, &shift.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: GetByDriverAndDate - scan row: %v", ErrScanRow, err)
		}
		scheduled = append(scheduled, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDriverAndDate - rows error: %v", ErrScanRow, err)
	}

	return scheduled, nil
}

// ListWithRelations возвращает все смены вместе с данными водителя,
// автобуса и маршрута (LEFT JOIN, связи могут отсутствовать)
func (r *Repository) ListWithRelations(ctx context.Context) ([]*domain.ShiftWithRelations, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.driver_id",
		"s.bus_id",
		"s.route_id",
		"s.shift_date",
		"s.shift_time",
		"d.id", "d.name", "d.license_number", "d.available",
		"b.id", "b.plate_number", "b.capacity",
		"r.id", "r.origin", "r.destination", "r.estimated_duration_minutes",
	).
		From("shifts s").
		LeftJoin("drivers d ON d.id = s.driver_id").
		LeftJoin("buses b ON b.id = s.bus_id").
		LeftJoin("routes r ON r.id = s.route_id").
		OrderBy("s.shift_date ASC, s.shift_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithRelations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithRelations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shifts := make([]*domain.ShiftWithRelations, 0)
	for rows.Next() {
		shift, err := scanShiftWithRelations(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithRelations - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}

// scanShiftWithRelations сканирует строку джойна, собирая необязательные связи
func scanShiftWithRelations(rows *sql.Rows) (*domain.ShiftWithRelations, error) {
	var (
		shift         domain.ShiftWithRelations
		shiftTime     types.TimeString
		driverID      sql.NullInt64
		driverName    sql.NullString
		driverLicense sql.NullString
		driverAvail   sql.NullBool
		busID         sql.NullInt64
		busPlate      sql.NullString
		busCapacity   sql.NullInt64
		routeID       sql.NullInt64
		routeOrigin   sql.NullString
		routeDest     sql.NullString
		routeDuration sql.NullInt64
	)

	err := rows.Scan(
		&shift.ID,
		&shift.DriverID,
		&shift.BusID,
		&shift.RouteID,
		&shift.ShiftDate,
		&shiftTime,
		&driverID, &driverName, &driverLicense, &driverAvail,
		&busID, &busPlate, &busCapacity,
		&routeID, &routeOrigin, &routeDest, &routeDuration,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanShiftWithRelations - scan row: %v", ErrScanRow, err)
	}

	shift.ShiftTime = shiftTime

	if driverID.Valid {
		shift.Driver = &domain.DriverSummary{
			ID:            driverID.Int64,
			Name:          driverName.String,
			LicenseNumber: driverLicense.String,
			Available:     driverAvail.Bool,
		}
	}
	if busID.Valid {
		shift.Bus = &domain.BusSummary{
			ID:          busID.Int64,
			PlateNumber: busPlate.String,
			Capacity:    int(busCapacity.Int64),
		}
	}
	if routeID.Valid {
		shift.Route = &domain.RouteSummary{
			ID:                       routeID.Int64,
			Origin:                   routeOrigin.String,
			Destination:              routeDest.String,
			EstimatedDurationMinutes: int(routeDuration.Int64),
		}
	}

	return &shift, nil
}
