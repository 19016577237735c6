package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени слота (HH:MM)
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString represents a time-of-day label in "HH:MM" format.
// It is the canonical representation of a bookable slot start time.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (ts TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String возвращает строковое представление
func (ts TimeString) String() string {
	return string(ts)
}

// minutes возвращает время в минутах от начала суток
func (ts TimeString) minutes() (int, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := ts.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, err := ts.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a > b
}

// AddMinutes возвращает новый TimeString, сдвинутый на m минут вперед
// Возвращает ошибку при выходе за пределы суток
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := ts.minutes()
	if err != nil {
		return "", err
	}

	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(ts), m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}
