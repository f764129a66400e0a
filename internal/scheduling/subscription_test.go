package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/notification"
)

func TestSubscribe_BooksAndWaitlists(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	series, created := f.weekly(t, time.Thursday,
		calendar.Date(2025, time.January, 1), calendar.Date(2025, time.January, 30), 1)
	require.Len(t, created, 5) // 02, 09, 16, 23, 30

	// 9-е уже занято, на 16-м клиент уже записан сам
	client := uuid.New()
	_, err := f.engine.Enrollment.Book(ctx, created[1].ID, uuid.New())
	require.NoError(t, err)
	_, err = f.engine.Enrollment.Book(ctx, created[2].ID, client)
	require.NoError(t, err)

	res, err := f.engine.Subscriptions.Subscribe(ctx, SubscribeRequest{
		SeriesID: series.ID,
		ClientID: client,
		EndDate:  calendar.Date(2025, time.January, 23),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Subscription)
	assert.True(t, res.Subscription.IsActive)

	got := make(map[string]Outcome, len(res.Outcomes))
	for _, o := range res.Outcomes {
		got[calendar.FormatDate(o.Date)] = o.Outcome
	}
	assert.Equal(t, map[string]Outcome{
		"2025-01-02": OutcomeBooked,
		"2025-01-09": OutcomeWaitlisted,
		"2025-01-16": OutcomeAlreadyEnrolled,
		"2025-01-23": OutcomeBooked,
	}, got)
}

func TestSubscribe_Validation(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 10, 9, 0))
	ctx := context.Background()

	series, _ := f.weekly(t, time.Thursday,
		calendar.Date(2025, time.January, 1), calendar.Date(2025, time.January, 30), 3)

	for name, end := range map[string]time.Time{
		"before today":      calendar.Date(2025, time.January, 9),
		"after series end":  calendar.Date(2025, time.February, 6),
		"far after the end": calendar.Date(2026, time.January, 1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.engine.Subscriptions.Subscribe(ctx, SubscribeRequest{
				SeriesID: series.ID,
				ClientID: uuid.New(),
				EndDate:  end,
			})
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}

	_, err := f.engine.Subscriptions.Subscribe(ctx, SubscribeRequest{
		SeriesID: uuid.New(),
		ClientID: uuid.New(),
		EndDate:  calendar.Date(2025, time.January, 30),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscribe_Duplicate(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	series, _ := f.weekly(t, time.Thursday,
		calendar.Date(2025, time.January, 1), calendar.Date(2025, time.January, 30), 3)
	req := SubscribeRequest{SeriesID: series.ID, ClientID: uuid.New(), EndDate: calendar.Date(2025, time.January, 30)}

	_, err := f.engine.Subscriptions.Subscribe(ctx, req)
	require.NoError(t, err)
	_, err = f.engine.Subscriptions.Subscribe(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateSubscription)

	// после отписки можно подписаться снова; записи не отменяются
	require.NoError(t, f.engine.Subscriptions.Unsubscribe(ctx, series.ID, req.ClientID))
	enrollments, err := f.engine.Enrollment.ListClientEnrollments(ctx, req.ClientID, time.Time{})
	require.NoError(t, err)
	assert.Len(t, enrollments, 5)

	res, err := f.engine.Subscriptions.Subscribe(ctx, req)
	require.NoError(t, err)
	for _, o := range res.Outcomes {
		assert.Equal(t, OutcomeAlreadyEnrolled, o.Outcome)
	}
}

func TestUnsubscribe_NoActive(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))

	err := f.engine.Subscriptions.Unsubscribe(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweep_AutoEnrollsSubscriber(t *testing.T) {
	f := newFixture(t, at(2025, time.March, 1, 9, 0))
	ctx := context.Background()

	// серия без материализованных занятий: их создаст только прогон генерации
	series := &model.RecurringSeries{
		Title:        "Pilates",
		DayOfWeek:    int(time.Monday),
		StartTime:    calendar.Clock(9, 0),
		EndTime:      calendar.Clock(10, 0),
		StartDate:    datatypes.Date(calendar.Date(2025, time.March, 1)),
		EndDate:      datatypes.Date(calendar.Date(2025, time.April, 30)),
		Capacity:     8,
		InstructorID: uuid.New(),
	}
	require.NoError(t, f.store.Series.Create(ctx, series))

	client := uuid.New()
	res, err := f.engine.Subscriptions.Subscribe(ctx, SubscribeRequest{
		SeriesID: series.ID,
		ClientID: client,
		EndDate:  calendar.Date(2025, time.March, 31),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Outcomes)

	sweep, err := f.engine.Expander.Sweep(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 9, sweep.Created) // понедельники 03-03 .. 04-28

	target := f.onDate(t, series.ID, calendar.Date(2025, time.March, 10))
	enrollment, err := f.store.Enrollments.GetByPair(ctx, target.ID, client)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusActive, enrollment.Status)
	assert.Equal(t, 1, f.reload(t, target.ID).ParticipantCount)

	// апрель вне окна подписки
	april := f.onDate(t, series.ID, calendar.Date(2025, time.April, 7))
	_, err = f.store.Enrollments.GetByPair(ctx, april.ID, client)
	assert.Error(t, err)

	msgs := f.notifier.ByTemplate(notification.TemplateSubscriptionEnrolled)
	assert.Len(t, msgs, 5) // 03, 10, 17, 24, 31 марта
}
