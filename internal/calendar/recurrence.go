package calendar

import "time"

// WeeklyDates возвращает все даты в [from, to] (включительно), попадающие
// на weekday, по возрастанию. Пустой результат, если to раньше from.
func WeeklyDates(from, to time.Time, weekday time.Weekday) []time.Time {
	from, to = DateOf(from), DateOf(to)
	if to.Before(from) {
		return nil
	}

	offset := (int(weekday) - int(from.Weekday()) + 7) % 7
	cur := from.AddDate(0, 0, offset)

	var dates []time.Time
	for !cur.After(to) {
		dates = append(dates, cur)
		cur = cur.AddDate(0, 0, 7)
	}
	return dates
}

// MaxDate: более поздняя из двух дат.
func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
