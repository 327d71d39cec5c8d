package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM (24 часа)
const timeLayout = "15:04"

// timeLayout12h формат времени с AM/PM, поддерживается как fallback при парсинге
const timeLayout12h = "3:04 PM"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString строковое представление времени суток в формате "HH:MM"
// Используется для хранения времени слотов без привязки к дате и таймзоне
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки в формате "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// ParseFlexible создает TimeString из строки в формате "HH:MM" или "h:MM AM/PM"
// Результат всегда нормализован к 24-часовому формату
func ParseFlexible(s string) (TimeString, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(timeLayout12h, s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String возвращает строковое представление времени
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// toTime конвертирует TimeString в time.Time (дата фиктивная)
func (ts TimeString) toTime() (time.Time, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t, nil
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперёд
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.toTime()
	if err != nil {
		return "", err
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}

// MinutesUntil возвращает количество минут от ts до other
func (ts TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := ts.toTime()
	if err != nil {
		return 0, err
	}
	to, err := other.toTime()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Minutes()), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*ts = TimeString(v)
	case []byte:
		*ts = TimeString(v)
	case time.Time:
		*ts = NewTimeString(v)
	case nil:
		*ts = ""
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	return nil
}
