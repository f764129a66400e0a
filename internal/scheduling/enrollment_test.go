package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
)

func TestBook_Basic(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 2)

	client := uuid.New()
	enrollment, err := f.engine.Enrollment.Book(ctx, inst.ID, client)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusActive, enrollment.Status)
	assert.Equal(t, 1, f.reload(t, inst.ID).ParticipantCount)

	_, err = f.engine.Enrollment.Book(ctx, inst.ID, client)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, 1, f.reload(t, inst.ID).ParticipantCount, "seat must not leak on duplicate")

	_, err = f.engine.Enrollment.Book(ctx, inst.ID, uuid.New())
	require.NoError(t, err)

	_, err = f.engine.Enrollment.Book(ctx, inst.ID, uuid.New())
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, f.reload(t, inst.ID).ParticipantCount)
}

func TestBook_UnknownInstance(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))

	_, err := f.engine.Enrollment.Book(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, KindNotFound, ErrorKind(err))
}

func TestBook_ConcurrentLastSeat(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 3)

	for i := 0; i < 2; i++ {
		_, err := f.engine.Enrollment.Book(ctx, inst.ID, uuid.New())
		require.NoError(t, err)
	}

	const workers = 12
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
		other     []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.Enrollment.Book(ctx, inst.ID, uuid.New())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrCapacityExceeded):
				rejected++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, rejected)

	got := f.reload(t, inst.ID)
	assert.Equal(t, got.Capacity, got.ParticipantCount)

	active, err := f.store.Enrollments.ListActiveByInstance(ctx, inst.ID)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

func TestCancel_NotEnrolled(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 2)

	_, err := f.engine.Enrollment.Cancel(context.Background(), CancelRequest{InstanceID: inst.ID, ClientID: uuid.New()})
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestCancel_ThenRebookReactivates(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 1)
	client := uuid.New()

	first, err := f.engine.Enrollment.Book(ctx, inst.ID, client)
	require.NoError(t, err)

	res, err := f.engine.Enrollment.Cancel(ctx, CancelRequest{InstanceID: inst.ID, ClientID: client})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Affected())
	assert.Zero(t, f.reload(t, inst.ID).ParticipantCount)

	cancelled, err := f.store.Enrollments.GetByPair(ctx, inst.ID, client)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusCancelled, cancelled.Status)
	assert.Equal(t, model.CancelReasonClient, cancelled.CancelReason)
	require.NotNil(t, cancelled.CancelledAt)

	again, err := f.engine.Enrollment.Book(ctx, inst.ID, client)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 1, f.reload(t, inst.ID).ParticipantCount)
}

func TestCancel_CascadeFutureSameWeekday(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	series, created := f.weekly(t, time.Tuesday,
		calendar.Date(2025, time.January, 6), calendar.Date(2025, time.February, 4), 5)
	require.Len(t, created, 5) // 07, 14, 21, 28, 02-04

	client := uuid.New()
	for _, inst := range created {
		_, err := f.engine.Enrollment.Book(ctx, inst.ID, client)
		require.NoError(t, err)
	}

	ref := f.onDate(t, series.ID, calendar.Date(2025, time.January, 14))
	res, err := f.engine.Enrollment.Cancel(ctx, CancelRequest{
		InstanceID:    ref.ID,
		ClientID:      client,
		Cascade:       true,
		ReferenceDate: calendar.Date(2025, time.January, 20),
	})
	require.NoError(t, err)

	// 14-е: само занятие; дальше только даты >= 20-го.
	assert.Equal(t, 4, res.Affected())

	still := f.onDate(t, series.ID, calendar.Date(2025, time.January, 7))
	e, err := f.store.Enrollments.GetByPair(ctx, still.ID, client)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusActive, e.Status)

	for _, d := range []time.Time{
		calendar.Date(2025, time.January, 21),
		calendar.Date(2025, time.January, 28),
		calendar.Date(2025, time.February, 4),
	} {
		inst := f.onDate(t, series.ID, d)
		e, err := f.store.Enrollments.GetByPair(ctx, inst.ID, client)
		require.NoError(t, err)
		assert.Equal(t, model.EnrollmentStatusCancelled, e.Status, calendar.FormatDate(d))
		assert.Zero(t, inst.ParticipantCount)
	}
}

func TestCancel_CascadeSkipsSiblingsWithoutEnrollment(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	_, created := f.weekly(t, time.Tuesday,
		calendar.Date(2025, time.January, 6), calendar.Date(2025, time.January, 28), 5)

	client := uuid.New()
	_, err := f.engine.Enrollment.Book(ctx, created[0].ID, client)
	require.NoError(t, err)
	_, err = f.engine.Enrollment.Book(ctx, created[2].ID, client)
	require.NoError(t, err)

	res, err := f.engine.Enrollment.Cancel(ctx, CancelRequest{InstanceID: created[0].ID, ClientID: client, Cascade: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{created[0].ID, created[2].ID}, res.Cancelled)
}
