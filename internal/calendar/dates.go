package calendar

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	// DateLayout: формат даты в API и конфиге.
	DateLayout = "2006-01-02"
	// ClockLayout: формат времени суток.
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidClock = errors.New("invalid time of day")
)

// Все даты движка: "наивные" локальные даты площадки. Внутри храним их
// как полночь в UTC, чтобы сравнения и сериализация не зависели от пояса.

// Date собирает дату из компонентов.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf отбрасывает время суток, оставляя локальную дату t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ParseDate разбирает дату в формате 2006-01-02.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// FormatDate: обратная к ParseDate.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Clock: время суток.
func Clock(hour, minute int) datatypes.Time {
	return datatypes.NewTime(hour, minute, 0, 0)
}

// ParseClock принимает "15:04" или "15:04:05".
func ParseClock(s string) (datatypes.Time, error) {
	for _, layout := range []string{ClockLayout, time.TimeOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
}

// FormatClock печатает время суток как 15:04.
func FormatClock(c datatypes.Time) string {
	d := time.Duration(c)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// Minutes переводит время суток в минуты от полуночи.
func Minutes(c datatypes.Time) int {
	return int(time.Duration(c) / time.Minute)
}
