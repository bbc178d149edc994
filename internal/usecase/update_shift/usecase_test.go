package update_shift

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	routesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/routes"
	shiftsRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/shifts"
	"github.com/m04kA/SMC-FleetService/pkg/types"
)

type fakeShiftRepo struct {
	existing  []domain.ScheduledShift
	updated   *domain.Shift
	updateErr error
}

func (f *fakeShiftRepo) Update(_ context.Context, shift *domain.Shift) (*domain.Shift, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = shift
	return shift, nil
}

func (f *fakeShiftRepo) GetByDriverAndDate(_ context.Context, _ int64, _ time.Time) ([]domain.ScheduledShift, error) {
	return f.existing, nil
}

type fakeRouteRepo struct {
	duration int
	err      error
}

func (f *fakeRouteRepo) GetDurationMinutes(_ context.Context, _ int64) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.duration, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest(t *testing.T, startTime types.TimeString) *Request {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2025-11-03")
	require.NoError(t, err)
	return &Request{
		ID:        5,
		DriverID:  1,
		BusID:     2,
		RouteID:   3,
		Date:      date,
		StartTime: startTime,
	}
}

func TestExecute_UpdatesShift(t *testing.T) {
	shiftRepo := &fakeShiftRepo{}
	uc := NewUseCase(shiftRepo, &fakeRouteRepo{duration: 45}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t, "08:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	require.NotNil(t, shiftRepo.updated)
	assert.Equal(t, types.TimeString("08:00"), shiftRepo.updated.ShiftTime)
}

func TestExecute_ExcludesOwnShiftFromConflictCheck(t *testing.T) {
	// Старая версия той же смены (id=5) лежит в расписании и пересекается
	// с новым временем, но не должна считаться конфликтом
	shiftRepo := &fakeShiftRepo{
		existing: []domain.ScheduledShift{
			{ID: 5, StartTime: "08:00", DurationMinutes: 60},
		},
	}
	uc := NewUseCase(shiftRepo, &fakeRouteRepo{duration: 60}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t, "08:15"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
}

func TestExecute_ConflictWithOtherShift(t *testing.T) {
	shiftRepo := &fakeShiftRepo{
		existing: []domain.ScheduledShift{
			{ID: 5, StartTime: "08:00", DurationMinutes: 60},
			{ID: 9, StartTime: "10:00", DurationMinutes: 90},
		},
	}
	uc := NewUseCase(shiftRepo, &fakeRouteRepo{duration: 60}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t, "10:30"))
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t,
		"Driver already has an overlapping shift from 10:00 to 11:30. Updated shift would run from 10:30 to 11:30.",
		conflict.Error())
	assert.Nil(t, shiftRepo.updated)
}

func TestExecute_ShiftNotFound(t *testing.T) {
	shiftRepo := &fakeShiftRepo{updateErr: shiftsRepo.ErrShiftNotFound}
	uc := NewUseCase(shiftRepo, &fakeRouteRepo{duration: 45}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t, "08:00"))
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestExecute_RouteNotFound(t *testing.T) {
	uc := NewUseCase(&fakeShiftRepo{}, &fakeRouteRepo{err: routesRepo.ErrRouteNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t, "08:00"))
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestExecute_ValidationFails(t *testing.T) {
	uc := NewUseCase(&fakeShiftRepo{}, &fakeRouteRepo{duration: 45}, nopLogger{})

	req := validRequest(t, "08:00")
	req.ID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
