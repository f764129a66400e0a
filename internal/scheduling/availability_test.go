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

// провайдер с рабочими часами 09:00–13:00 и 14:00–17:00 по понедельникам
func seedProvider(t *testing.T, f *fixture) *model.Provider {
	t.Helper()
	ctx := context.Background()

	p := &model.Provider{DisplayName: "Dr. X"}
	require.NoError(t, f.store.Providers.Create(ctx, p))
	for _, h := range [][2]datatypes.Time{
		{calendar.Clock(9, 0), calendar.Clock(13, 0)},
		{calendar.Clock(14, 0), calendar.Clock(17, 0)},
	} {
		require.NoError(t, f.store.Providers.AddWorkingHours(ctx, &model.WorkingHours{
			ProviderID: p.ID,
			DayOfWeek:  int(time.Monday),
			StartTime:  h[0],
			EndTime:    h[1],
		}))
	}
	return p
}

func clockStrings(slots []time.Duration) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, calendar.FormatClock(datatypes.Time(s)))
	}
	return out
}

func TestFreeSlots_ExistingAppointmentBlocksOverlap(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0), func(o *Options) { o.SlotStepMinutes = 30 })
	ctx := context.Background()
	p := seedProvider(t, f)
	monday := calendar.Date(2025, time.January, 13)

	require.NoError(t, f.store.Appointments.Create(ctx, &model.Appointment{
		ProviderID:      p.ID,
		ClientID:        uuid.New(),
		Date:            datatypes.Date(monday),
		StartTime:       calendar.Clock(10, 0),
		DurationMinutes: 60,
		Status:          model.AppointmentStatusConfirmed,
	}))

	slots, err := f.engine.Availability.FreeSlots(ctx, calendar.SlotRequest{StaffID: p.ID, Date: monday, DurationMinutes: 60})
	require.NoError(t, err)

	got := clockStrings(slots)
	assert.NotContains(t, got, "09:30")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:30")
	assert.Contains(t, got, "11:00")
	assert.Equal(t, []string{"09:00", "11:00", "11:30", "12:00", "14:00", "14:30", "15:00", "15:30", "16:00"}, got)
}

func TestFreeSlots_CancelledAndSessionsCount(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0), func(o *Options) { o.SlotStepMinutes = 60 })
	ctx := context.Background()
	p := seedProvider(t, f)
	monday := calendar.Date(2025, time.January, 13)

	require.NoError(t, f.store.Appointments.Create(ctx, &model.Appointment{
		ProviderID:      p.ID,
		ClientID:        uuid.New(),
		Date:            datatypes.Date(monday),
		StartTime:       calendar.Clock(9, 0),
		DurationMinutes: 60,
		Status:          model.AppointmentStatusCancelled,
	}))
	// групповое занятие, которое ведёт этот же специалист
	require.NoError(t, f.store.Instances.Create(ctx, &model.SessionInstance{
		Date:            datatypes.Date(monday),
		StartTime:       calendar.Clock(15, 0),
		DurationMinutes: 60,
		Capacity:        5,
		InstructorID:    p.ID,
	}))

	slots, err := f.engine.Availability.FreeSlots(ctx, calendar.SlotRequest{StaffID: p.ID, Date: monday, DurationMinutes: 60})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "14:00", "16:00"}, clockStrings(slots))

	tuesday := monday.AddDate(0, 0, 1)
	slots, err = f.engine.Availability.FreeSlots(ctx, calendar.SlotRequest{StaffID: p.ID, Date: tuesday, DurationMinutes: 60})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFreeSlots_Validation(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	_, err := f.engine.Availability.FreeSlots(ctx, calendar.SlotRequest{})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "staff_id")
	assert.Contains(t, vErr.FieldErrors, "duration_minutes")

	_, err = f.engine.Availability.FreeSlots(ctx, calendar.SlotRequest{
		StaffID: uuid.New(), Date: calendar.Date(2025, time.January, 13), DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointments_RequestAcceptCancel(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0), func(o *Options) {
		o.SlotStepMinutes = 30
		o.Payment = StaticPaymentPolicy(true)
	})
	ctx := context.Background()
	p := seedProvider(t, f)
	monday := calendar.Date(2025, time.January, 13)

	req := AppointmentRequest{
		ProviderID:      p.ID,
		ClientID:        uuid.New(),
		Date:            monday,
		StartTime:       calendar.Clock(10, 0),
		DurationMinutes: 60,
	}
	appt, err := f.engine.Appointments.Request(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusRequested, appt.Status)

	overlapping := req
	overlapping.ClientID = uuid.New()
	overlapping.StartTime = calendar.Clock(10, 30)
	_, err = f.engine.Appointments.Request(ctx, overlapping)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	outside := req
	outside.StartTime = calendar.Clock(12, 30)
	_, err = f.engine.Appointments.Request(ctx, outside)
	assert.ErrorIs(t, err, ErrSlotUnavailable, "must fit inside working hours")

	accepted, err := f.engine.Appointments.Accept(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, accepted.Status)
	assert.True(t, accepted.PaymentPending)
	require.Len(t, f.notifier.ByTemplate(notification.TemplateAppointmentConfirmed), 1)

	_, err = f.engine.Appointments.Accept(ctx, appt.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, f.engine.Appointments.Cancel(ctx, appt.ID))
	assert.ErrorIs(t, f.engine.Appointments.Cancel(ctx, appt.ID), ErrInvalidTransition)

	// окно освободилось
	_, err = f.engine.Appointments.Request(ctx, overlapping)
	require.NoError(t, err)
}

func TestAppointments_UnknownProvider(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))

	_, err := f.engine.Appointments.Request(context.Background(), AppointmentRequest{
		ProviderID:      uuid.New(),
		ClientID:        uuid.New(),
		Date:            calendar.Date(2025, time.January, 13),
		StartTime:       calendar.Clock(10, 0),
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointment_IsSingleSeatBookable(t *testing.T) {
	var b model.Bookable = &model.Appointment{Status: model.AppointmentStatusRequested}
	assert.Equal(t, 1, b.SeatCapacity())
	assert.False(t, b.HasFreeSeat())

	b = &model.Appointment{Status: model.AppointmentStatusCancelled}
	assert.True(t, b.HasFreeSeat())
}
