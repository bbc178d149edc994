package buses

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

// Repository репозиторий для работы с автобусами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автобусов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все автобусы
func (r *Repository) List(ctx context.Context) ([]*domain.Bus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "plate_number", "capacity").
		From("buses").
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

	result := make([]*domain.Bus, 0)
	for rows.Next() {
		var bus domain.Bus
		if err := rows.Scan(&bus.ID, &bus.PlateNumber, &bus.Capacity); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &bus)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Create создает новый автобус
func (r *Repository) Create(ctx context.Context, bus *domain.Bus) (*domain.Bus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("buses").
		Columns("plate_number", "capacity").
		Values(bus.PlateNumber, bus.Capacity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&bus.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return bus, nil
}

// Update обновляет переданные поля автобуса. Поля со значением nil
// не трогаются (частичное обновление).
func (r *Repository) Update(ctx context.Context, id int64, plateNumber *string, capacity *int) (*domain.Bus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("buses").Where(squirrel.Eq{"id": id})

	if plateNumber != nil {
		updateBuilder = updateBuilder.Set("plate_number", *plateNumber)
	}
	if capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *capacity)
	}
	if plateNumber == nil && capacity == nil {
		return r.getByID(ctx, id)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, plate_number, capacity").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var bus domain.Bus
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&bus.ID, &bus.PlateNumber, &bus.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return &bus, nil
}

// Delete удаляет автобус. Удаление идемпотентно.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("buses").
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

func (r *Repository) getByID(ctx context.Context, id int64) (*domain.Bus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "plate_number", "capacity").
		From("buses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	var bus domain.Bus
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&bus.ID, &bus.PlateNumber, &bus.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan bus: %v", ErrScanRow, err)
	}

	return &bus, nil
}
