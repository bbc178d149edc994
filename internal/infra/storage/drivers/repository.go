package drivers

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

// Repository репозиторий для работы с водителями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория водителей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает всех водителей
func (r *Repository) List(ctx context.Context) ([]*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "license_number", "available").
		From("drivers").
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

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		var driver domain.Driver
		if err := rows.Scan(&driver.ID, &driver.Name, &driver.LicenseNumber, &driver.Available); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		drivers = append(drivers, &driver)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return drivers, nil
}

// Create создает нового водителя
func (r *Repository) Create(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("drivers").
		Columns("name", "license_number", "available").
		Values(driver.Name, driver.LicenseNumber, driver.Available).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&driver.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return driver, nil
}

// Update обновляет переданные поля водителя. Поля со значением nil
// не трогаются (частичное обновление).
func (r *Repository) Update(ctx context.Context, id int64, name *string, licenseNumber *string, available *bool) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("drivers").Where(squirrel.Eq{"id": id})

	if name != nil {
		updateBuilder = updateBuilder.Set("name", *name)
	}
	if licenseNumber != nil {
		updateBuilder = updateBuilder.Set("license_number", *licenseNumber)
	}
	if available != nil {
		updateBuilder = updateBuilder.Set("available", *available)
	}
	if name == nil && licenseNumber == nil && available == nil {
		// Нечего обновлять - возвращаем текущее состояние
		return r.getByID(ctx, id)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, name, license_number, available").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var driver domain.Driver
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&driver.ID, &driver.Name, &driver.LicenseNumber, &driver.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return &driver, nil
}

// Delete удаляет водителя. Удаление идемпотентно.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("drivers").
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

func (r *Repository) getByID(ctx context.Context, id int64) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "license_number", "available").
		From("drivers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	var driver domain.Driver
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&driver.ID, &driver.Name, &driver.LicenseNumber, &driver.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan driver: %v", ErrScanRow, err)
	}

	return &driver, nil
}
