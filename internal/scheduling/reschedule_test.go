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
	"github.com/Leganyst/session-scheduler/internal/notification"
)

func guestOn(t *testing.T, f *fixture, inst *model.SessionInstance) *model.GuestSignup {
	t.Helper()
	signup, err := f.engine.Reschedule.CreateGuestSignup(context.Background(), GuestSignupInput{
		InstanceID: inst.ID,
		GuestName:  "Guest",
		GuestEmail: "guest@example.com",
	})
	require.NoError(t, err)
	return signup
}

func TestReschedule_ConfirmOnce(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	from := f.standalone(t, calendar.Date(2025, time.January, 10), 5)
	to := f.standalone(t, calendar.Date(2025, time.January, 17), 5)
	signup := guestOn(t, f, from)

	proposal, err := f.engine.Reschedule.ProposeReschedule(ctx, signup.ID, to.ID)
	require.NoError(t, err)
	assert.Len(t, proposal.Token, 43) // 32 байта в base64url без паддинга
	assert.Equal(t, at(2025, time.January, 4, 9, 0), proposal.ExpiresAt.UTC())

	msgs := f.notifier.ByTemplate(notification.TemplateGuestRescheduleProposed)
	require.Len(t, msgs, 1)
	assert.Equal(t, "guest@example.com", msgs[0].Recipient)
	assert.Equal(t, proposal.Token, msgs[0].Payload["token"])

	moved, err := f.engine.Reschedule.Confirm(ctx, proposal.Token)
	require.NoError(t, err)
	assert.Equal(t, to.ID, moved.InstanceID)

	_, err = f.engine.Reschedule.Confirm(ctx, proposal.Token)
	assert.ErrorIs(t, err, ErrTokenAlreadyUsed)
	assert.Equal(t, KindTokenAlreadyUsed, ErrorKind(err))
}

func TestReschedule_ConcurrentConfirm(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	from := f.standalone(t, calendar.Date(2025, time.January, 10), 5)
	to := f.standalone(t, calendar.Date(2025, time.January, 17), 5)
	signup := guestOn(t, f, from)
	proposal, err := f.engine.Reschedule.ProposeReschedule(ctx, signup.ID, to.ID)
	require.NoError(t, err)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		used      int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.Reschedule.Confirm(ctx, proposal.Token)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrTokenAlreadyUsed):
				used++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, used)
}

func TestReschedule_TokenErrors(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	_, err := f.engine.Reschedule.Confirm(ctx, "nope")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	from := f.standalone(t, calendar.Date(2025, time.January, 10), 5)
	to := f.standalone(t, calendar.Date(2025, time.January, 17), 5)
	signup := guestOn(t, f, from)
	proposal, err := f.engine.Reschedule.ProposeReschedule(ctx, signup.ID, to.ID)
	require.NoError(t, err)

	// после ExpiresAt токен уже не принимается
	f.clock.Set(proposal.ExpiresAt.Add(time.Second))
	_, err = f.engine.Reschedule.Confirm(ctx, proposal.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	unchanged, err := f.store.Reschedules.GetSignup(ctx, signup.ID)
	require.NoError(t, err)
	assert.Equal(t, from.ID, unchanged.InstanceID)
}

func TestReschedule_ProposeRules(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	from := f.standalone(t, calendar.Date(2025, time.January, 10), 5)
	full := f.standalone(t, calendar.Date(2025, time.January, 17), 1)
	_, err := f.engine.Enrollment.Book(ctx, full.ID, uuid.New())
	require.NoError(t, err)
	signup := guestOn(t, f, from)

	_, err = f.engine.Reschedule.ProposeReschedule(ctx, signup.ID, full.ID)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = f.engine.Reschedule.ProposeReschedule(ctx, signup.ID, from.ID)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = f.engine.Reschedule.ProposeReschedule(ctx, signup.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.store.DB().Model(&model.GuestSignup{}).
		Where("id = ?", signup.ID).
		Update("status", model.GuestSignupStatusConfirmed).Error)
	other := f.standalone(t, calendar.Date(2025, time.January, 24), 5)
	_, err = f.engine.Reschedule.ProposeReschedule(ctx, signup.ID, other.ID)
	assert.ErrorIs(t, err, ErrSignupNotPending)
}

func TestCreateGuestSignup_Validation(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))

	_, err := f.engine.Reschedule.CreateGuestSignup(context.Background(), GuestSignupInput{
		InstanceID: uuid.New(),
		GuestEmail: "not-an-email",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "guest_name")
	assert.Contains(t, vErr.FieldErrors, "guest_email")
}

func TestReschedule_TargetDeletedAfterProposal(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	from := f.standalone(t, calendar.Date(2025, time.January, 10), 5)
	to := f.standalone(t, calendar.Date(2025, time.January, 17), 5)
	signup := guestOn(t, f, from)
	proposal, err := f.engine.Reschedule.ProposeReschedule(ctx, signup.ID, to.ID)
	require.NoError(t, err)

	_, err = f.engine.Cascade.DeleteInstance(ctx, to.ID, false)
	require.NoError(t, err)

	// в тот же момент токен ещё не истёк, но занятия уже нет
	_, err = f.engine.Reschedule.Confirm(ctx, proposal.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	f.clock.Advance(time.Minute)
	_, err = f.engine.Reschedule.Confirm(ctx, proposal.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	kept, err := f.store.Reschedules.GetSignup(ctx, signup.ID)
	require.NoError(t, err)
	assert.Equal(t, from.ID, kept.InstanceID)
	assert.Equal(t, model.GuestSignupStatusPending, kept.Status)
}

func TestReschedule_SignupsCancelledWithInstance(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	inst := f.standalone(t, calendar.Date(2025, time.January, 10), 5)
	first := guestOn(t, f, inst)
	second := guestOn(t, f, inst)

	res, err := f.engine.Cascade.DeleteInstance(ctx, inst.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.CancelledSignups)

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		s, err := f.store.Reschedules.GetSignup(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.GuestSignupStatusCancelled, s.Status)
	}

	// отменённую запись перенести нельзя
	other := f.standalone(t, calendar.Date(2025, time.January, 17), 5)
	_, err = f.engine.Reschedule.ProposeReschedule(ctx, first.ID, other.ID)
	assert.ErrorIs(t, err, ErrSignupNotPending)
}
