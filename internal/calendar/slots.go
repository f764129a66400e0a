package calendar

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotDuration = errors.New("slot duration must be positive")
	ErrSlotStep     = errors.New("slot step must be positive")
)

// SlotRequest: запрос свободных окон специалиста на дату.
type SlotRequest struct {
	StaffID         uuid.UUID
	Date            time.Time
	DurationMinutes int
}

// ComputeFreeSlots перебирает кандидатов с шагом stepMinutes внутри каждого
// рабочего интервала и возвращает начала тех окон длиной durationMinutes,
// которые целиком помещаются в рабочее время и не пересекаются ни с одним
// существующим приёмом. Результат упорядочен и без повторов.
//
// Функция чистая: вызывающий обязан пересчитывать окна на каждый запрос,
// записи конкурируют с ним.
func ComputeFreeSlots(workingHours, existing []ClockRange, durationMinutes, stepMinutes int) ([]time.Duration, error) {
	if durationMinutes <= 0 {
		return nil, ErrSlotDuration
	}
	if stepMinutes <= 0 {
		return nil, ErrSlotStep
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	seen := make(map[time.Duration]struct{})
	free := make([]time.Duration, 0)

	for _, wh := range workingHours {
		for start := wh.Start; start+duration <= wh.End; start += step {
			candidate := ClockRange{Start: start, End: start + duration}
			if busy, _ := HasOverlap(candidate, existing); busy {
				continue
			}
			if _, dup := seen[start]; dup {
				continue
			}
			seen[start] = struct{}{}
			free = append(free, start)
		}
	}

	sort.Slice(free, func(i, j int) bool { return free[i] < free[j] })
	return free, nil
}
