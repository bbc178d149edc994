package create_shift

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	routesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/routes"
	"github.com/m04kA/SMC-FleetService/pkg/types"
)

type fakeShiftRepo struct {
	existing  []domain.ScheduledShift
	created   *domain.Shift
	createErr error
	listErr   error
}

func (f *fakeShiftRepo) Create(_ context.Context, shift *domain.Shift) (*domain.Shift, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	shift.ID = 42
	f.created = shift
	return shift, nil
}

func (f *fakeShiftRepo) GetByDriverAndDate(_ context.Context, _ int64, _ time.Time) ([]domain.ScheduledShift, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
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
		DriverID:  1,
		BusID:     2,
		RouteID:   3,
		Date:      date,
		StartTime: startTime,
	}
}

func TestExecute_CreatesShift(t *testing.T) {
	shiftRepo := &fakeShiftRepo{}
	routeRepo := &fakeRouteRepo{duration: 45}
	uc := NewUseCase(shiftRepo, routeRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t, "08:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, types.TimeString("08:00"), resp.StartTime)
	require.NotNil(t, shiftRepo.created)
	assert.Equal(t, int64(1), shiftRepo.created.DriverID)
}

func TestExecute_ValidationFails(t *testing.T) {
	uc := NewUseCase(&fakeShiftRepo{}, &fakeRouteRepo{duration: 45}, nopLogger{})

	req := validRequest(t, "08:00")
	req.DriverID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RouteNotFound(t *testing.T) {
	uc := NewUseCase(&fakeShiftRepo{}, &fakeRouteRepo{err: routesRepo.ErrRouteNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t, "08:00"))
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestExecute_Conflict(t *testing.T) {
	shiftRepo := &fakeShiftRepo{
		existing: []domain.ScheduledShift{
			{ID: 7, StartTime: "08:00", DurationMinutes: 60},
		},
	}
	uc := NewUseCase(shiftRepo, &fakeRouteRepo{duration: 30}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t, "08:30"))
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t,
		"Driver already has an overlapping shift from 08:00 to 09:00. New shift would run from 08:30 to 09:00.",
		conflict.Error())
	assert.Nil(t, shiftRepo.created)
}

func TestExecute_AdjacentShiftAllowed(t *testing.T) {
	shiftRepo := &fakeShiftRepo{
		existing: []domain.ScheduledShift{
			{ID: 7, StartTime: "08:00", DurationMinutes: 60},
		},
	}
	uc := NewUseCase(shiftRepo, &fakeRouteRepo{duration: 60}, nopLogger{})

	// Начало ровно в момент окончания существующей смены
	resp, err := uc.Execute(context.Background(), validRequest(t, "09:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_RepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("list fails", func(t *testing.T) {
		uc := NewUseCase(&fakeShiftRepo{listErr: boom}, &fakeRouteRepo{duration: 45}, nopLogger{})
		_, err := uc.Execute(context.Background(), validRequest(t, "08:00"))
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("create fails", func(t *testing.T) {
		uc := NewUseCase(&fakeShiftRepo{createErr: boom}, &fakeRouteRepo{duration: 45}, nopLogger{})
		_, err := uc.Execute(context.Background(), validRequest(t, "08:00"))
		assert.ErrorIs(t, err, ErrInternal)
	})
}
