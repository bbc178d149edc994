package shifts

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/types"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	shift := &domain.Shift{
		DriverID:  1,
		BusID:     2,
		RouteID:   3,
		ShiftDate: date,
		ShiftTime: "08:00",
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO shifts (driver_id,bus_id,route_id,shift_date,shift_time) VALUES ($1,$2,$3,$4,$5) RETURNING id`,
	)).
		WithArgs(int64(1), int64(2), int64(3), date, "08:00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	created, err := repo.Create(context.Background(), shift)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDriverAndDate(t *testing.T) {
	repo, mock := newMock(t)

	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "shift_time", "estimated_duration_minutes"}).
		AddRow(int64(1), "06:00:00", 45).
		AddRow(int64(2), "08:00:00", 0) // маршрут удален, COALESCE в ноль

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT s.id, s.shift_time, COALESCE(r.estimated_duration_minutes, 0) FROM shifts s LEFT JOIN routes r ON r.id = s.route_id WHERE s.driver_id = $1 AND s.shift_date = $2 ORDER BY s.shift_time ASC`,
	)).
		WithArgs(int64(7), date).
		WillReturnRows(rows)

	scheduled, err := repo.GetByDriverAndDate(context.Background(), 7, date)
	require.NoError(t, err)
	require.Len(t, scheduled, 2)

	assert.Equal(t, domain.ScheduledShift{ID: 1, StartTime: "06:00", DurationMinutes: 45}, scheduled[0])
	assert.Equal(t, domain.ScheduledShift{ID: 2, StartTime: "08:00", DurationMinutes: 0}, scheduled[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	shift := &domain.Shift{
		ID:        99,
		DriverID:  1,
		BusID:     2,
		RouteID:   3,
		ShiftDate: date,
		ShiftTime: types.TimeString("08:00"),
	}

	mock.ExpectQuery("UPDATE shifts SET").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), shift)
	assert.ErrorIs(t, err, ErrShiftNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_Idempotent(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shifts WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Отсутствие строки не считается ошибкой
	err := repo.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
