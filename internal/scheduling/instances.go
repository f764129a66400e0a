package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
)

type ListInstancesQuery struct {
	SeriesID uuid.UUID
	From     time.Time
	To       time.Time
	Page     int
	PageSize int
}

// GetInstance возвращает занятие по id.
func (e *Engine) GetInstance(ctx context.Context, id uuid.UUID) (*model.SessionInstance, error) {
	instance, err := e.store.Instances.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get instance", err)
	}
	return instance, nil
}

// ListInstances: занятия серии в [From, To] постранично.
// Пустой From: сегодня, пустой To: конец серии.
func (e *Engine) ListInstances(ctx context.Context, q ListInstancesQuery) (calendar.Page[model.SessionInstance], error) {
	series, err := e.Expander.GetSeries(ctx, q.SeriesID)
	if err != nil {
		return calendar.Page[model.SessionInstance]{}, err
	}

	from := e.Expander.referenceDay(q.From)
	to := calendar.DateOf(q.To)
	if q.To.IsZero() {
		to = time.Time(series.EndDate)
	}
	if to.Before(from) {
		return calendar.Page[model.SessionInstance]{}, invalidRange("to", "must not be before from")
	}

	instances, err := e.store.Instances.ListBySeries(ctx, q.SeriesID, from, to)
	if err != nil {
		return calendar.Page[model.SessionInstance]{}, storeErr("list instances", err)
	}
	return calendar.Paginate(instances, q.Page, q.PageSize), nil
}
