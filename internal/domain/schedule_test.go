package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/pkg/types"
)

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     types.TimeString
		want                           bool
	}{
		{name: "partial overlap", startA: "08:00", endA: "09:00", startB: "08:30", endB: "09:30", want: true},
		{name: "contained interval", startA: "08:00", endA: "12:00", startB: "09:00", endB: "10:00", want: true},
		{name: "identical intervals", startA: "08:00", endA: "09:00", startB: "08:00", endB: "09:00", want: true},
		{name: "touching boundaries do not overlap", startA: "08:00", endA: "09:00", startB: "09:00", endB: "10:00", want: false},
		{name: "one minute overlap", startA: "08:00", endA: "09:00", startB: "08:59", endB: "10:00", want: true},
		{name: "disjoint", startA: "08:00", endA: "09:00", startB: "10:00", endB: "11:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalsOverlap(tt.startA, tt.endA, tt.startB, tt.endB)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			assert.Equal(t, got, IntervalsOverlap(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}

func TestFindShiftConflict_NoConflict(t *testing.T) {
	existing := []ScheduledShift{
		{ID: 1, StartTime: "06:00", DurationMinutes: 60},
		{ID: 2, StartTime: "10:00", DurationMinutes: 60},
	}

	conflict, err := FindShiftConflict("08:00", 60, existing, 0)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindShiftConflict_AdjacentShiftsAllowed(t *testing.T) {
	existing := []ScheduledShift{
		{ID: 1, StartTime: "08:00", DurationMinutes: 60},
	}

	// Начало ровно в момент окончания существующей смены
	conflict, err := FindShiftConflict("09:00", 60, existing, 0)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindShiftConflict_ReturnsWindows(t *testing.T) {
	existing := []ScheduledShift{
		{ID: 7, StartTime: "08:00", DurationMinutes: 45},
	}

	conflict, err := FindShiftConflict("08:30", 30, existing, 0)
	require.NoError(t, err)
	require.NotNil(t, conflict)

	assert.Equal(t, int64(7), conflict.ShiftID)
	assert.Equal(t, ShiftWindow{Start: "08:00", End: "08:45"}, conflict.Existing)
	assert.Equal(t, ShiftWindow{Start: "08:30", End: "09:00"}, conflict.Candidate)
}

func TestFindShiftConflict_FirstMatchWins(t *testing.T) {
	existing := []ScheduledShift{
		{ID: 1, StartTime: "08:00", DurationMinutes: 120},
		{ID: 2, StartTime: "09:00", DurationMinutes: 120},
	}

	conflict, err := FindShiftConflict("09:30", 30, existing, 0)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(1), conflict.ShiftID)
}

func TestFindShiftConflict_ExcludesOwnShift(t *testing.T) {
	existing := []ScheduledShift{
		{ID: 5, StartTime: "08:00", DurationMinutes: 60},
	}

	// Сдвиг собственной смены не конфликтует с ее старой версией
	conflict, err := FindShiftConflict("08:15", 60, existing, 5)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// Но чужая смена с другим id по-прежнему конфликтует
	conflict, err = FindShiftConflict("08:15", 60, existing, 99)
	require.NoError(t, err)
	assert.NotNil(t, conflict)
}

func TestFindShiftConflict_ZeroDuration(t *testing.T) {
	existing := []ScheduledShift{
		{ID: 1, StartTime: "08:00", DurationMinutes: 0},
	}

	// Смена нулевой длины дает пустое окно и не пересекается ни с чем
	conflict, err := FindShiftConflict("08:00", 60, existing, 0)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindShiftConflict_MidnightWrapLimitation(t *testing.T) {
	// Смена 23:00 + 120 минут "заворачивается" в окно [23:00, 01:00),
	// которое при лексикографическом сравнении выглядит пустым.
	// Кандидат на 23:30 пересечения не находит.
	existing := []ScheduledShift{
		{ID: 1, StartTime: "23:00", DurationMinutes: 120},
	}

	conflict, err := FindShiftConflict("23:30", 15, existing, 0)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindShiftConflict_EmptySchedule(t *testing.T) {
	conflict, err := FindShiftConflict("08:00", 60, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}
