package domain

import (
	"github.com/m04kA/SMC-FleetService/pkg/types"
)

// ScheduledShift существующая смена водителя в пределах одной даты,
// уже отфильтрованная по водителю и дате. Длительность берется из
// маршрута (COALESCE в ноль, если маршрут не найден).
type ScheduledShift struct {
	ID              int64
	StartTime       types.TimeString
	DurationMinutes int
}

// ShiftWindow занимаемое сменой окно [Start, End).
// Окно полуоткрытое: смены "впритык" (конец одной равен началу другой)
// не считаются пересекающимися.
type ShiftWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// ShiftConflict найденное пересечение кандидата с существующей сменой
type ShiftConflict struct {
	ShiftID   int64
	Existing  ShiftWindow
	Candidate ShiftWindow
}

// IntervalsOverlap возвращает true, если полуоткрытые интервалы
// [startA, endA) и [startB, endB) пересекаются: startA < endB && startB < endA.
// Сравнение лексикографическое, что для "HH:MM" с ведущими нулями
// эквивалентно сравнению минут с полуночи.
func IntervalsOverlap(startA, endA, startB, endB types.TimeString) bool {
	return startA.IsBefore(endB) && startB.IsBefore(endA)
}

// FindShiftConflict проверяет кандидата (start, durationMinutes) на
// пересечение с существующими сменами и возвращает первое найденное
// пересечение в порядке обхода existing (или nil, если пересечений нет).
//
// excludeShiftID исключает смену из сравнения — при обновлении смена
// не должна конфликтовать сама с собой; 0 означает "не исключать ничего".
//
// Функция чистая: не делает I/O и не знает о хранилище. Время окончания
// вычисляется по модулю суток (см. types.TimeString.AddMinutes), поэтому
// смены, переходящие через полночь, моделируются некорректно — это
// известное ограничение, унаследованное от исходного поведения.
func FindShiftConflict(
	start types.TimeString,
	durationMinutes int,
	existing []ScheduledShift,
	excludeShiftID int64,
) (*ShiftConflict, error) {
	candidateEnd, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return nil, err
	}

	candidate := ShiftWindow{Start: start, End: candidateEnd}

	for _, shift := range existing {
		if excludeShiftID != 0 && shift.ID == excludeShiftID {
			continue
		}

		shiftEnd, err := shift.StartTime.AddMinutes(shift.DurationMinutes)
		if err != nil {
			return nil, err
		}

		if IntervalsOverlap(shift.StartTime, shiftEnd, candidate.Start, candidate.End) {
			return &ShiftConflict{
				ShiftID:   shift.ID,
				Existing:  ShiftWindow{Start: shift.StartTime, End: shiftEnd},
				Candidate: candidate,
			}, nil
		}
	}

	return nil, nil
}
