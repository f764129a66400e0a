package calendar

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var ErrInvalidTimeRange = errors.New("invalid time range")

// ClockRange: полуоткрытый интервал [Start, End) внутри одного дня,
// в виде смещений от полуночи.
type ClockRange struct {
	Start time.Duration
	End   time.Duration
}

// NewClockRange собирает интервал из времени начала и длительности в минутах.
func NewClockRange(start datatypes.Time, durationMinutes int) ClockRange {
	s := time.Duration(start)
	return ClockRange{Start: s, End: s + time.Duration(durationMinutes)*time.Minute}
}

// BetweenClocks собирает интервал из двух времён суток.
func BetweenClocks(start, end datatypes.Time) (ClockRange, error) {
	r := ClockRange{Start: time.Duration(start), End: time.Duration(end)}
	if r.End <= r.Start {
		return ClockRange{}, ErrInvalidTimeRange
	}
	return r, nil
}

// Overlaps: пересечение полуоткрытых интервалов:
// a.Start < b.End && b.Start < a.End. Касание концами не пересечение.
func (r ClockRange) Overlaps(other ClockRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains сообщает, лежит ли other целиком внутри r.
func (r ClockRange) Contains(other ClockRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// HasOverlap проверяет, пересекается ли candidate с existing, и возвращает
// все конфликтующие интервалы.
func HasOverlap(candidate ClockRange, existing []ClockRange) (bool, []ClockRange) {
	var conflicts []ClockRange
	for _, r := range existing {
		if candidate.Overlaps(r) {
			conflicts = append(conflicts, r)
		}
	}
	return len(conflicts) > 0, conflicts
}
