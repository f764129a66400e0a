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

func intPtr(v int) *int { return &v }

// tuesdaySeries: вторники с 2025-01-07 по 2025-02-25 и одно занятие той же
// серии в среду 2025-02-05.
func tuesdaySeries(t *testing.T, f *fixture) (*model.RecurringSeries, *model.SessionInstance) {
	t.Helper()
	series, created := f.weekly(t, time.Tuesday,
		calendar.Date(2025, time.January, 6), calendar.Date(2025, time.February, 25), 10)
	require.Len(t, created, 8)

	seriesID := series.ID
	wednesday := &model.SessionInstance{
		Date:            datatypes.Date(calendar.Date(2025, time.February, 5)),
		StartTime:       series.StartTime,
		DurationMinutes: series.DurationMinutes(),
		Capacity:        series.Capacity,
		InstructorID:    series.InstructorID,
		ParentSeriesID:  &seriesID,
	}
	require.NoError(t, f.store.Instances.Create(context.Background(), wednesday))
	return series, wednesday
}

func TestUpdateInstance_CascadeScope(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	series, wednesday := tuesdaySeries(t, f)

	ref := f.onDate(t, series.ID, calendar.Date(2025, time.February, 4))
	res, err := f.engine.Cascade.UpdateInstance(ctx, ref.ID, InstancePatch{Capacity: intPtr(20)}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-04", "2025-02-11", "2025-02-18", "2025-02-25"}, dates(res.Updated))

	for _, d := range []int{7, 14, 21, 28} {
		inst := f.onDate(t, series.ID, calendar.Date(2025, time.January, d))
		assert.Equal(t, 10, inst.Capacity, "2025-01-%02d must stay untouched", d)
	}
	assert.Equal(t, 10, f.reload(t, wednesday.ID).Capacity, "other weekday must stay untouched")

	updatedSeries, err := f.store.Series.GetByID(ctx, series.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, updatedSeries.Capacity)
}

func TestUpdateInstance_SingleMarksOverridden(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	series, _ := tuesdaySeries(t, f)

	single := f.onDate(t, series.ID, calendar.Date(2025, time.February, 11))
	start := calendar.Clock(7, 30)
	_, err := f.engine.Cascade.UpdateInstance(ctx, single.ID, InstancePatch{StartTime: &start}, false)
	require.NoError(t, err)

	got := f.reload(t, single.ID)
	assert.True(t, got.IsOverridden)
	assert.Equal(t, "07:30", calendar.FormatClock(got.StartTime))

	ref := f.onDate(t, series.ID, calendar.Date(2025, time.February, 4))
	res, err := f.engine.Cascade.UpdateInstance(ctx, ref.ID, InstancePatch{DurationMinutes: intPtr(45)}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-04", "2025-02-18", "2025-02-25"}, dates(res.Updated))

	overridden := f.reload(t, single.ID)
	assert.Equal(t, 90, overridden.DurationMinutes)
	assert.Equal(t, "07:30", calendar.FormatClock(overridden.StartTime))

	updatedSeries, err := f.store.Series.GetByID(ctx, series.ID)
	require.NoError(t, err)
	assert.Equal(t, "18:45", calendar.FormatClock(updatedSeries.EndTime))
}

func TestUpdateInstance_CascadeConflictAbortsAll(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	series, _ := tuesdaySeries(t, f)

	crowded := f.onDate(t, series.ID, calendar.Date(2025, time.February, 18))
	for i := 0; i < 3; i++ {
		_, err := f.engine.Enrollment.Book(ctx, crowded.ID, uuid.New())
		require.NoError(t, err)
	}

	ref := f.onDate(t, series.ID, calendar.Date(2025, time.February, 4))
	_, err := f.engine.Cascade.UpdateInstance(ctx, ref.ID, InstancePatch{Capacity: intPtr(2)}, true)

	var conflict *CascadeConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, crowded.ID, conflict.InstanceID)
	assert.Equal(t, KindCascadeConflict, ErrorKind(err))

	for _, d := range []int{4, 11, 18, 25} {
		inst := f.onDate(t, series.ID, calendar.Date(2025, time.February, d))
		assert.Equal(t, 10, inst.Capacity, "2025-02-%02d must be rolled back", d)
	}
	unchanged, err := f.store.Series.GetByID(ctx, series.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, unchanged.Capacity)
}

func clockPtr(hh, mm int) *datatypes.Time {
	v := calendar.Clock(hh, mm)
	return &v
}

func TestUpdateInstance_RejectsPastMidnight(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	series, _ := tuesdaySeries(t, f)
	ref := f.onDate(t, series.ID, calendar.Date(2025, time.February, 4))

	_, err := f.engine.Cascade.UpdateInstance(ctx, ref.ID,
		InstancePatch{StartTime: clockPtr(23, 0), DurationMinutes: intPtr(120)}, false)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "duration_minutes")

	// 23:00 + 90 минут текущей длительности
	_, err = f.engine.Cascade.UpdateInstance(ctx, ref.ID, InstancePatch{StartTime: clockPtr(23, 0)}, false)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, calendar.Clock(18, 0), f.reload(t, ref.ID).StartTime)

	// длинное занятие серии ломает каскад целиком
	long := f.onDate(t, series.ID, calendar.Date(2025, time.February, 11))
	require.NoError(t, f.store.Instances.Update(ctx, long.ID, map[string]any{"duration_minutes": 240}))

	_, err = f.engine.Cascade.UpdateInstance(ctx, ref.ID, InstancePatch{StartTime: clockPtr(21, 0)}, true)
	var conflict *CascadeConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, long.ID, conflict.InstanceID)
	assert.Equal(t, calendar.Clock(18, 0), f.reload(t, ref.ID).StartTime)
}

func TestUpdateInstance_SingleCapacityBelowEnrolled(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 3)
	for i := 0; i < 2; i++ {
		_, err := f.engine.Enrollment.Book(ctx, inst.ID, uuid.New())
		require.NoError(t, err)
	}

	_, err := f.engine.Cascade.UpdateInstance(ctx, inst.ID, InstancePatch{Capacity: intPtr(1)}, false)
	var conflict *CascadeConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, inst.ID, conflict.InstanceID)
}

func TestUpdateInstance_CapacityIncreasePromotes(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	inst, _ := fullWithQueue(t, f, a, b)

	res, err := f.engine.Cascade.UpdateInstance(ctx, inst.ID, InstancePatch{Capacity: intPtr(2)}, false)
	require.NoError(t, err)
	require.Len(t, res.Promoted, 1)
	assert.Equal(t, a, res.Promoted[0].ClientID)
	assert.Equal(t, 2, f.reload(t, inst.ID).ParticipantCount)
}

func TestUpdateInstance_EmptyPatch(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 3)

	_, err := f.engine.Cascade.UpdateInstance(context.Background(), inst.ID, InstancePatch{}, false)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "patch")
}

func TestDeleteInstance_CascadeSkipsOverridden(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	series, wednesday := tuesdaySeries(t, f)

	ref := f.onDate(t, series.ID, calendar.Date(2025, time.February, 18))
	last := f.onDate(t, series.ID, calendar.Date(2025, time.February, 25))

	// заполнить 18-е до отказа и поставить одного в очередь
	_, err := f.engine.Cascade.UpdateInstance(ctx, ref.ID, InstancePatch{Capacity: intPtr(1)}, false)
	require.NoError(t, err)
	enrolled := uuid.New()
	_, err = f.engine.Enrollment.Book(ctx, ref.ID, enrolled)
	require.NoError(t, err)
	waiting := uuid.New()
	_, err = f.engine.Waitlist.JoinWaitlist(ctx, ref.ID, waiting)
	require.NoError(t, err)
	_, err = f.engine.Enrollment.Book(ctx, last.ID, enrolled)
	require.NoError(t, err)

	// 18-е помечено is_overridden, поэтому каскад берём от 11-го
	from := f.onDate(t, series.ID, calendar.Date(2025, time.February, 11))
	res, err := f.engine.Cascade.DeleteInstance(ctx, from.ID, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{from.ID, last.ID}, res.Deleted)

	// 18-е осталось: оно было изменено отдельно
	kept := f.reload(t, ref.ID)
	assert.Equal(t, 1, kept.ParticipantCount)
	queued, err := f.store.Waitlist.GetOpen(ctx, ref.ID, waiting)
	require.NoError(t, err)
	assert.Equal(t, model.WaitlistStatusPending, queued.Status)

	cancelled, err := f.store.Enrollments.GetByPair(ctx, last.ID, enrolled)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusCancelled, cancelled.Status)
	assert.Equal(t, model.CancelReasonInstanceDeleted, cancelled.CancelReason)

	_, err = f.store.Instances.GetByID(ctx, last.ID)
	assert.Error(t, err)
	assert.NotNil(t, f.reload(t, wednesday.ID))

	msgs := f.notifier.ByTemplate(notification.TemplateEnrollmentCancelled)
	require.Len(t, msgs, 1)
	assert.Equal(t, enrolled.String(), msgs[0].Recipient)
	assert.Equal(t, model.CancelReasonInstanceDeleted, msgs[0].Payload["reason"])
}

func TestDeleteInstance_ExpiresWaitlist(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	a := uuid.New()
	inst, holder := fullWithQueue(t, f, a)

	res, err := f.engine.Cascade.DeleteInstance(ctx, inst.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Cancelled)
	assert.Equal(t, 1, res.Expired)

	entries, err := f.store.Waitlist.ListByInstance(ctx, inst.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.WaitlistStatusExpired, entries[0].Status)

	// отмена из-за удаления не поднимает очередь
	e, err := f.store.Enrollments.GetByPair(ctx, inst.ID, holder)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusCancelled, e.Status)
	_, err = f.store.Enrollments.GetByPair(ctx, inst.ID, a)
	assert.Error(t, err)
}

func TestDeleteSeries(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	series, created := f.weekly(t, time.Monday,
		calendar.Date(2025, time.January, 6), calendar.Date(2025, time.January, 27), 5)

	client := uuid.New()
	_, err := f.engine.Subscriptions.Subscribe(ctx, SubscribeRequest{
		SeriesID: series.ID,
		ClientID: client,
		EndDate:  calendar.Date(2025, time.January, 27),
	})
	require.NoError(t, err)

	res, err := f.engine.Cascade.DeleteSeries(ctx, series.ID)
	require.NoError(t, err)
	assert.Len(t, res.Deleted, len(created))
	assert.Equal(t, len(created), res.Cancelled)

	_, err = f.store.Subscriptions.GetActive(ctx, series.ID, client)
	assert.Error(t, err)

	_, err = f.engine.Expander.GetSeries(ctx, series.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
