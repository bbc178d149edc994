package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// timeFormat формат времени "HH:MM"
	timeFormat = "15:04"

	// minutesPerDay количество минут в сутках
	minutesPerDay = 24 * 60
)

// TimeString время суток в формате "HH:MM" (24-часовой формат, с ведущими нулями).
// Хранится как строка, чтобы сравнение значений совпадало с лексикографическим
// сравнением (работает только при ведущих нулях).
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" или "HH:MM:SS".
// Секунды отбрасываются, часы и минуты нормализуются до двух цифр.
func NewTimeStringFromString(s string) (TimeString, error) {
	hours, minutes, err := parseHoursMinutes(s)
	if err != nil {
		return "", err
	}
	return fromMinutes(hours*60 + minutes), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение имеет корректный формат "HH:MM"
func (t TimeString) Validate() error {
	hours, minutes, err := parseHoursMinutes(string(t))
	if err != nil {
		return err
	}
	// Формат должен быть каноническим (с ведущими нулями), иначе
	// лексикографическое сравнение даст неверный результат
	if string(t) != fromMinutes(hours*60+minutes).String() {
		return fmt.Errorf("%w: %q is not zero-padded", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	hours, minutes, err := parseHoursMinutes(string(t))
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// AddMinutes прибавляет minutes минут и возвращает новое время.
// Результат берется по модулю суток: время, перешедшее за полночь,
// "заворачивается" на следующий день без переноса даты (23:30 + 90 = 01:00).
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if minutes < 0 {
		return "", fmt.Errorf("%w: minutes must be non-negative, got %d", ErrNegativeMinutes, minutes)
	}

	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	return fromMinutes((total + minutes) % minutesPerDay), nil
}

// Scan реализует sql.Scanner. Postgres-колонка time приходит как строка "HH:MM:SS".
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// parseHoursMinutes разбирает "HH:MM" или "HH:MM:SS" на часы и минуты
func parseHoursMinutes(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q, hours are not a number", ErrInvalidTimeFormat, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q, minutes are not a number", ErrInvalidTimeFormat, s)
	}

	// Секунды (если есть) отбрасываются, но должны быть числом
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, 0, fmt.Errorf("%w: %q, seconds are not a number", ErrInvalidTimeFormat, s)
		}
	}

	if hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("%w: hours out of range in %q", ErrInvalidTimeFormat, s)
	}
	if minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("%w: minutes out of range in %q", ErrInvalidTimeFormat, s)
	}

	return hours, minutes, nil
}

// fromMinutes собирает TimeString из количества минут с полуночи
func fromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}
