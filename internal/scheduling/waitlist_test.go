package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/notification"
)

// fullWithQueue создаёт занятие на одно место, занятое holder, и очередь из waiters
// в порядке их передачи.
func fullWithQueue(t *testing.T, f *fixture, waiters ...uuid.UUID) (*model.SessionInstance, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 1)
	holder := uuid.New()
	_, err := f.engine.Enrollment.Book(ctx, inst.ID, holder)
	require.NoError(t, err)

	for _, w := range waiters {
		f.clock.Advance(time.Minute)
		_, err := f.engine.Waitlist.JoinWaitlist(ctx, inst.ID, w)
		require.NoError(t, err)
	}
	return inst, holder
}

func TestJoinWaitlist_Rules(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	open := f.standalone(t, calendar.Date(2025, time.January, 10), 2)
	_, err := f.engine.Waitlist.JoinWaitlist(ctx, open.ID, uuid.New())
	assert.ErrorIs(t, err, ErrWaitlistNotAllowed)

	a := uuid.New()
	inst, holder := fullWithQueue(t, f, a)

	_, err = f.engine.Waitlist.JoinWaitlist(ctx, inst.ID, a)
	assert.ErrorIs(t, err, ErrDuplicateWaitlist)

	_, err = f.engine.Waitlist.JoinWaitlist(ctx, inst.ID, holder)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestPromote_FIFO(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	inst, holder := fullWithQueue(t, f, a, b, c)

	res, err := f.engine.Enrollment.Cancel(ctx, CancelRequest{InstanceID: inst.ID, ClientID: holder})
	require.NoError(t, err)
	require.Len(t, res.Promoted, 1)
	assert.Equal(t, a, res.Promoted[0].ClientID)

	res, err = f.engine.Enrollment.Cancel(ctx, CancelRequest{InstanceID: inst.ID, ClientID: a})
	require.NoError(t, err)
	require.Len(t, res.Promoted, 1)
	assert.Equal(t, b, res.Promoted[0].ClientID)

	res, err = f.engine.Enrollment.Cancel(ctx, CancelRequest{InstanceID: inst.ID, ClientID: b})
	require.NoError(t, err)
	require.Len(t, res.Promoted, 1)
	assert.Equal(t, c, res.Promoted[0].ClientID)

	entries, err := f.engine.Waitlist.ListWaitlist(ctx, inst.ID)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, model.WaitlistStatusBooked, e.Status)
		assert.Nil(t, e.OpenKey)
		assert.NotNil(t, e.NotifiedAt)
	}

	promoted := f.notifier.ByTemplate(notification.TemplateWaitlistPromoted)
	require.Len(t, promoted, 3)
	assert.Equal(t, a.String(), promoted[0].Recipient)
	assert.Equal(t, b.String(), promoted[1].Recipient)
	assert.Equal(t, c.String(), promoted[2].Recipient)
}

func TestPromote_SkipsWithdrawnEntry(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	inst, holder := fullWithQueue(t, f, a, b, c)

	require.NoError(t, f.engine.Waitlist.LeaveWaitlist(ctx, inst.ID, a))

	res, err := f.engine.Enrollment.Cancel(ctx, CancelRequest{InstanceID: inst.ID, ClientID: holder})
	require.NoError(t, err)
	require.Len(t, res.Promoted, 1)
	assert.Equal(t, b, res.Promoted[0].ClientID)

	enrollment, err := f.store.Enrollments.GetByPair(ctx, inst.ID, b)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusActive, enrollment.Status)

	open, err := f.store.Waitlist.GetOpen(ctx, inst.ID, c)
	require.NoError(t, err)
	assert.Equal(t, model.WaitlistStatusPending, open.Status)
}

func TestPromote_ClientAlreadyEnrolledClosesEntry(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	inst, holder := fullWithQueue(t, f, a, b)

	// A попал на занятие в обход очереди: капасити подняли, а промоутер ещё не запускался.
	_, err := f.store.Instances.UpdateIfFits(ctx, inst.ID, map[string]any{"capacity": 2}, 2)
	require.NoError(t, err)
	_, err = f.engine.Enrollment.Book(ctx, inst.ID, a)
	require.NoError(t, err)

	_, err = f.engine.Enrollment.Cancel(ctx, CancelRequest{InstanceID: inst.ID, ClientID: holder})
	require.NoError(t, err)

	entries, err := f.store.Waitlist.ListByInstance(ctx, inst.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.WaitlistStatusBooked, entries[0].Status)
	assert.Equal(t, model.WaitlistStatusBooked, entries[1].Status)

	got := f.reload(t, inst.ID)
	assert.Equal(t, 2, got.ParticipantCount)
	assert.LessOrEqual(t, got.ParticipantCount, got.Capacity)
}

func TestLeaveWaitlist_NotOpen(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 1)

	err := f.engine.Waitlist.LeaveWaitlist(context.Background(), inst.ID, uuid.New())
	assert.ErrorIs(t, err, ErrWaitlistNotOpen)
}

func TestExpireWaitlistEntry(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	a := uuid.New()
	inst, _ := fullWithQueue(t, f, a)

	entry, err := f.store.Waitlist.GetOpen(ctx, inst.ID, a)
	require.NoError(t, err)

	expired, err := f.engine.Waitlist.ExpireWaitlistEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, model.WaitlistStatusExpired, expired.Status)

	_, err = f.engine.Waitlist.ExpireWaitlistEntry(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// после истечения можно встать в очередь снова
	f.clock.Advance(time.Minute)
	_, err = f.engine.Waitlist.JoinWaitlist(ctx, inst.ID, a)
	require.NoError(t, err)
}

func TestPromote_StopsWhenNoPending(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 3)
	promoted, err := f.engine.Waitlist.Promote(ctx, inst.ID)
	require.NoError(t, err)
	assert.Empty(t, promoted)

	promoted, err = f.engine.Waitlist.Promote(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, promoted)
}
