package routes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с маршрутами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория маршрутов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все маршруты
func (r *Repository) List(ctx context.Context) ([]*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "origin", "destination", "estimated_duration_minutes").
		From("routes").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Route, 0)
	for rows.Next() {
		var route domain.Route
		if err := rows.Scan(&route.ID, &route.Origin, &route.Destination, &route.EstimatedDurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetDurationMinutes возвращает длительность маршрута в минутах.
// Используется детектором конфликтов для вычисления конца смены.
func (r *Repository) GetDurationMinutes(ctx context.Context, id int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("estimated_duration_minutes").
		From("routes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetDurationMinutes - build select query: %v", ErrBuildQuery, err)
	}

	var duration int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&duration)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRouteNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetDurationMinutes - scan duration: %v", ErrScanRow, err)
	}

	return duration, nil
}

// Create создает новый маршрут
func (r *Repository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("routes").
		Columns("origin", "destination", "estimated_duration_minutes").
		Values(route.Origin, route.Destination, route.EstimatedDurationMinutes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&route.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return route, nil
}

// Update обновляет переданные поля маршрута. Поля со значением nil
// не трогаются (частичное обновление).
func (r *Repository) Update(ctx context.Context, id int64, origin *string, destination *string, durationMinutes *int) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("routes").Where(squirrel.Eq{"id": id})

	if origin != nil {
		updateBuilder = updateBuilder.Set("origin", *origin)
	}
	if destination != nil {
		updateBuilder = updateBuilder.Set("destination", *destination)
	}
	if durationMinutes != nil {
		updateBuilder = updateBuilder.Set("estimated_duration_minutes", *durationMinutes)
	}
	if origin == nil && destination == nil && durationMinutes == nil {
		return r.getByID(ctx, id)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, origin, destination, estimated_duration_minutes").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var route domain.Route
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&route.ID, &route.Origin, &route.Destination, &route.EstimatedDurationMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return &route, nil
}

// Delete удаляет маршрут. Удаление идемпотентно.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("routes").
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

func (r *Repository) getByID(ctx context.Context, id int64) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "origin", "destination", "estimated_duration_minutes").
		From("routes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	var route domain.Route
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&route.ID, &route.Origin, &route.Destination, &route.EstimatedDurationMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan route: %v", ErrScanRow, err)
	}

	return &route, nil
}
