package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/session-scheduler/internal/calendar"
)

func TestCreateProvider_WithWorkingHours(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	p, err := f.engine.Availability.CreateProvider(ctx, ProviderInput{
		DisplayName: "Dr. X",
		WorkingHours: []WorkingHoursInput{
			{DayOfWeek: int(time.Monday), StartTime: calendar.Clock(14, 0), EndTime: calendar.Clock(17, 0)},
			{DayOfWeek: int(time.Monday), StartTime: calendar.Clock(9, 0), EndTime: calendar.Clock(12, 0)},
		},
	})
	require.NoError(t, err)
	require.Len(t, p.WorkingHours, 2)
	assert.Equal(t, calendar.Clock(9, 0), p.WorkingHours[0].StartTime)
	assert.Equal(t, calendar.Clock(14, 0), p.WorkingHours[1].StartTime)

	slots, err := f.engine.Availability.FreeSlots(ctx, calendar.SlotRequest{
		StaffID:         p.ID,
		Date:            calendar.Date(2025, time.January, 13),
		DurationMinutes: 180,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:00"}, clockStrings(slots))
}

func TestCreateProvider_Validation(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))

	_, err := f.engine.Availability.CreateProvider(context.Background(), ProviderInput{
		WorkingHours: []WorkingHoursInput{
			{DayOfWeek: 7, StartTime: calendar.Clock(9, 0), EndTime: calendar.Clock(12, 0)},
			{DayOfWeek: 1, StartTime: calendar.Clock(12, 0), EndTime: calendar.Clock(9, 0)},
		},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "display_name")
	assert.Contains(t, vErr.FieldErrors, "working_hours.day_of_week")
	assert.Equal(t, "end_time must be after start_time", vErr.FieldErrors["working_hours"])
}

func TestAddWorkingHours(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()
	p := seedProvider(t, f)

	_, err := f.engine.Availability.AddWorkingHours(ctx, p.ID, WorkingHoursInput{
		DayOfWeek: int(time.Monday),
		StartTime: calendar.Clock(12, 30),
		EndTime:   calendar.Clock(14, 30),
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "overlaps existing working hours", vErr.FieldErrors["working_hours"])

	// стык интервалов не пересечение
	updated, err := f.engine.Availability.AddWorkingHours(ctx, p.ID, WorkingHoursInput{
		DayOfWeek: int(time.Monday),
		StartTime: calendar.Clock(13, 0),
		EndTime:   calendar.Clock(14, 0),
	})
	require.NoError(t, err)
	assert.Len(t, updated.WorkingHours, 3)

	_, err = f.engine.Availability.AddWorkingHours(ctx, uuid.New(), WorkingHoursInput{
		DayOfWeek: int(time.Tuesday),
		StartTime: calendar.Clock(9, 0),
		EndTime:   calendar.Clock(10, 0),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
