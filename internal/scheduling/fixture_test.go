package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/logging"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/repository"
	"github.com/Leganyst/session-scheduler/internal/testutil"
)

type fixture struct {
	engine   *Engine
	store    *repository.Store
	clock    *testutil.Clock
	notifier *testutil.Notifier
}

func newFixture(t *testing.T, now time.Time, opts ...func(*Options)) *fixture {
	t.Helper()

	store := repository.NewStore(testutil.NewDB(t))
	clock := testutil.NewClock(now)
	notifier := &testutil.Notifier{}

	o := Options{
		Store:    store,
		Notifier: notifier,
		Logger:   logging.Discard(),
		Now:      clock.Now,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return &fixture{
		engine:   NewEngine(o),
		store:    store,
		clock:    clock,
		notifier: notifier,
	}
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// standalone создаёт разовое занятие с заданной ёмкостью.
func (f *fixture) standalone(t *testing.T, date time.Time, capacity int) *model.SessionInstance {
	t.Helper()
	inst, err := f.engine.Expander.CreateInstance(context.Background(), CreateInstanceInput{
		Date:            date,
		StartTime:       calendar.Clock(18, 0),
		DurationMinutes: 60,
		Capacity:        capacity,
		InstructorID:    uuid.New(),
	})
	require.NoError(t, err)
	return inst
}

// weekly создаёт серию и материализует её занятия.
func (f *fixture) weekly(t *testing.T, weekday time.Weekday, from, to time.Time, capacity int) (*model.RecurringSeries, []model.SessionInstance) {
	t.Helper()
	series, created, err := f.engine.Expander.CreateSeries(context.Background(), CreateSeriesInput{
		Title:        "Yoga",
		DayOfWeek:    int(weekday),
		StartTime:    calendar.Clock(18, 0),
		EndTime:      calendar.Clock(19, 30),
		StartDate:    from,
		EndDate:      to,
		Capacity:     capacity,
		InstructorID: uuid.New(),
		AsOf:         from,
	})
	require.NoError(t, err)
	return series, created
}

func (f *fixture) reload(t *testing.T, id uuid.UUID) *model.SessionInstance {
	t.Helper()
	inst, err := f.store.Instances.GetByID(context.Background(), id)
	require.NoError(t, err)
	return inst
}

func (f *fixture) onDate(t *testing.T, seriesID uuid.UUID, day time.Time) *model.SessionInstance {
	t.Helper()
	list, err := f.store.Instances.ListBySeries(context.Background(), seriesID, day, day)
	require.NoError(t, err)
	require.Len(t, list, 1, "instance on %s", calendar.FormatDate(day))
	return &list[0]
}

func dates(instances []model.SessionInstance) []string {
	out := make([]string, 0, len(instances))
	for _, i := range instances {
		out = append(out, calendar.FormatDate(i.Day()))
	}
	return out
}
