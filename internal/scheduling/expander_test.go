package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
)

func TestCreateSeries_TuesdayRange(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))

	series, created := f.weekly(t, time.Tuesday,
		calendar.Date(2025, time.January, 6), calendar.Date(2025, time.January, 20), 10)

	assert.Equal(t, []string{"2025-01-07", "2025-01-14"}, dates(created))
	for _, inst := range created {
		assert.True(t, inst.IsGeneratedInstance)
		require.NotNil(t, inst.ParentSeriesID)
		assert.Equal(t, series.ID, *inst.ParentSeriesID)
		assert.Equal(t, 10, inst.Capacity)
		assert.Equal(t, 90, inst.DurationMinutes)
		assert.Equal(t, series.InstructorID, inst.InstructorID)
		assert.Equal(t, "18:00", calendar.FormatClock(inst.StartTime))
	}
}

func TestGenerateInstances_Idempotent(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	series, _ := f.weekly(t, time.Tuesday,
		calendar.Date(2025, time.January, 6), calendar.Date(2025, time.January, 20), 10)

	again, err := f.engine.Expander.GenerateInstances(ctx, series, calendar.Date(2025, time.January, 1))
	require.NoError(t, err)
	assert.Empty(t, again)

	all, err := f.store.Instances.ListBySeries(ctx, series.ID,
		calendar.Date(2025, time.January, 1), calendar.Date(2025, time.December, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-07", "2025-01-14"}, dates(all))
}

func TestGenerateInstances_StartsAtAsOf(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	series := &model.RecurringSeries{
		DayOfWeek:    int(time.Tuesday),
		StartTime:    calendar.Clock(10, 0),
		EndTime:      calendar.Clock(11, 0),
		StartDate:    datatypes.Date(calendar.Date(2025, time.January, 6)),
		EndDate:      datatypes.Date(calendar.Date(2025, time.February, 4)),
		Capacity:     5,
		InstructorID: uuid.New(),
	}
	require.NoError(t, f.store.Series.Create(ctx, series))

	created, err := f.engine.Expander.GenerateInstances(ctx, series, calendar.Date(2025, time.January, 15))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-21", "2025-01-28", "2025-02-04"}, dates(created))
}

func TestCreateSeries_InvalidRange(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	_, _, err := f.engine.Expander.CreateSeries(ctx, CreateSeriesInput{
		DayOfWeek:    int(time.Tuesday),
		StartTime:    calendar.Clock(18, 0),
		EndTime:      calendar.Clock(19, 0),
		StartDate:    calendar.Date(2025, time.January, 20),
		EndDate:      calendar.Date(2025, time.January, 6),
		Capacity:     10,
		InstructorID: uuid.New(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "end_date")
	assert.Equal(t, KindValidation, ErrorKind(err))

	var count int64
	require.NoError(t, f.store.DB().Model(&model.RecurringSeries{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, f.store.DB().Model(&model.SessionInstance{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateSeries_FieldValidation(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))

	_, _, err := f.engine.Expander.CreateSeries(context.Background(), CreateSeriesInput{
		DayOfWeek: 9,
		StartDate: calendar.Date(2025, time.January, 6),
		EndDate:   calendar.Date(2025, time.January, 20),
		Capacity:  0,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "day_of_week")
	assert.Contains(t, vErr.FieldErrors, "capacity")
	assert.Contains(t, vErr.FieldErrors, "instructor_id")
}

func TestSweep_DoesNotResurrectDeleted(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	series, created := f.weekly(t, time.Tuesday,
		calendar.Date(2025, time.January, 6), calendar.Date(2025, time.January, 28), 10)
	require.Len(t, created, 4)

	_, err := f.engine.Cascade.DeleteInstance(ctx, created[1].ID, false)
	require.NoError(t, err)

	result, err := f.engine.Expander.Sweep(ctx, calendar.Date(2025, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Series)
	assert.Zero(t, result.Created)

	all, err := f.store.Instances.ListBySeries(ctx, series.ID,
		calendar.Date(2025, time.January, 1), calendar.Date(2025, time.December, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-07", "2025-01-21", "2025-01-28"}, dates(all))
}

func TestSweep_SkipsFinishedSeries(t *testing.T) {
	f := newFixture(t, at(2025, time.March, 1, 9, 0))
	ctx := context.Background()

	f.weekly(t, time.Monday, calendar.Date(2025, time.January, 6), calendar.Date(2025, time.January, 27), 5)

	result, err := f.engine.Expander.Sweep(ctx, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, result.Series)
}

func TestListInstances_Paginates(t *testing.T) {
	f := newFixture(t, at(2025, time.January, 1, 9, 0))
	ctx := context.Background()

	series, _ := f.weekly(t, time.Friday,
		calendar.Date(2025, time.January, 1), calendar.Date(2025, time.March, 31), 5)

	page, err := f.engine.ListInstances(ctx, ListInstancesQuery{SeriesID: series.ID, Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 13, page.Total)
	assert.Len(t, page.Items, 5)
	assert.True(t, page.HasNext)
	assert.Equal(t, "2025-02-07", calendar.FormatDate(page.Items[0].Day()))
}
