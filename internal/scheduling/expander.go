package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

// Expander разворачивает повторяющуюся серию в конкретные занятия.
type Expander struct {
	deps
	subscriptions *SubscriptionManager
}

type CreateSeriesInput struct {
	Title     string         `json:"title" validate:"max=255"`
	DayOfWeek int            `json:"day_of_week" validate:"min=0,max=6"`
	StartTime datatypes.Time `json:"start_time"`
	EndTime   datatypes.Time `json:"end_time"`
	StartDate time.Time      `json:"start_date" validate:"required"`
	EndDate   time.Time      `json:"end_date" validate:"required"`
	Capacity  int            `json:"capacity" validate:"gt=0"`

	InstructorID uuid.UUID `json:"instructor_id" validate:"required"`

	// С какой даты материализовать занятия. По умолчанию: сегодня.
	AsOf time.Time `json:"-"`
}

type CreateInstanceInput struct {
	Date            time.Time      `json:"date" validate:"required"`
	StartTime       datatypes.Time `json:"start_time"`
	DurationMinutes int            `json:"duration_minutes" validate:"gt=0,lte=1440"`
	Capacity        int            `json:"capacity" validate:"gt=0"`
	InstructorID    uuid.UUID      `json:"instructor_id" validate:"required"`
}

// SweepResult: итог прогона по всем активным сериям.
type SweepResult struct {
	Series  int
	Created int
}

func validateSeries(series *model.RecurringSeries) *ValidationError {
	vErr := &ValidationError{}
	if time.Time(series.EndDate).Before(time.Time(series.StartDate)) {
		vErr.merge(invalidRange("end_date", "must not be before start_date"))
	}
	if series.EndTime <= series.StartTime {
		vErr.merge(invalidRange("end_time", "must be after start_time"))
	}
	if series.Capacity <= 0 {
		vErr.add("capacity", "must be greater than 0")
	}
	if series.DayOfWeek < 0 || series.DayOfWeek > 6 {
		vErr.add("day_of_week", "must be between 0 and 6")
	}
	if !vErr.HasErrors() {
		return nil
	}
	return vErr
}

// CreateSeries сохраняет серию и сразу материализует весь горизонт.
func (e *Expander) CreateSeries(ctx context.Context, in CreateSeriesInput) (*model.RecurringSeries, []model.SessionInstance, error) {
	logger := componentLogger(ctx, e.logger, "expander", "create_series")

	series := &model.RecurringSeries{
		Title:        in.Title,
		DayOfWeek:    in.DayOfWeek,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		StartDate:    datatypes.Date(calendar.DateOf(in.StartDate)),
		EndDate:      datatypes.Date(calendar.DateOf(in.EndDate)),
		Capacity:     in.Capacity,
		InstructorID: in.InstructorID,
	}

	vErr := &ValidationError{}
	vErr.merge(validateStruct(in))
	if !vErr.HasErrors() {
		vErr.merge(validateSeries(series))
	}
	if vErr.HasErrors() {
		logOutcome(logger, "create series", vErr)
		return nil, nil, vErr
	}

	asOf := e.referenceDay(in.AsOf)
	var created []model.SessionInstance
	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Series.Create(ctx, series); err != nil {
			return err
		}
		var err error
		created, err = generateTx(ctx, tx, series, asOf)
		return err
	})
	err = storeErr("create series", err)
	logOutcome(logger, "create series", err)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("series created", "series_id", series.ID, "instances", len(created))
	return series, created, nil
}

// GetSeries возвращает серию по id.
func (e *Expander) GetSeries(ctx context.Context, id uuid.UUID) (*model.RecurringSeries, error) {
	series, err := e.store.Series.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get series", err)
	}
	return series, nil
}

// GenerateInstances гарантирует ровно одно занятие на каждую подходящую дату
// в [max(StartDate, asOf), EndDate]. Повторный вызов ничего не дублирует.
// Возвращает только созданные этим вызовом занятия; их сразу сверяют
// с активными подписками.
func (e *Expander) GenerateInstances(ctx context.Context, series *model.RecurringSeries, asOf time.Time) ([]model.SessionInstance, error) {
	logger := componentLogger(ctx, e.logger, "expander", "generate", "series_id", series.ID)

	if vErr := validateSeries(series); vErr != nil {
		logOutcome(logger, "generate", vErr)
		return nil, vErr
	}

	var created []model.SessionInstance
	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		created, err = generateTx(ctx, tx, series, calendar.DateOf(asOf))
		return err
	})
	err = storeErr("generate instances", err)
	logOutcome(logger, "generate", err)
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		logger.Info("instances generated", "created", len(created))
		e.subscriptions.enrollNewInstances(ctx, created)
	}
	return created, nil
}

func generateTx(ctx context.Context, tx *repository.Store, series *model.RecurringSeries, asOf time.Time) ([]model.SessionInstance, error) {
	from := calendar.MaxDate(time.Time(series.StartDate), asOf)
	dates := calendar.WeeklyDates(from, time.Time(series.EndDate), series.Weekday())

	created := make([]model.SessionInstance, 0, len(dates))
	for _, d := range dates {
		seriesID := series.ID
		instance := model.SessionInstance{
			SeriesID:            &seriesID,
			Date:                datatypes.Date(d),
			StartTime:           series.StartTime,
			DurationMinutes:     series.DurationMinutes(),
			Capacity:            series.Capacity,
			InstructorID:        series.InstructorID,
			IsGeneratedInstance: true,
			ParentSeriesID:      &seriesID,
		}
		ok, err := tx.Instances.CreateIfAbsent(ctx, &instance)
		if err != nil {
			return nil, err
		}
		if ok {
			created = append(created, instance)
		}
	}
	return created, nil
}

// Sweep догоняет все серии, у которых ещё есть даты не раньше asOf.
// Ошибка одной серии не останавливает остальные.
func (e *Expander) Sweep(ctx context.Context, asOf time.Time) (*SweepResult, error) {
	logger := componentLogger(ctx, e.logger, "expander", "sweep")
	asOf = e.referenceDay(asOf)

	series, err := e.store.Series.ListEndingOnOrAfter(ctx, asOf)
	if err != nil {
		err = storeErr("sweep", err)
		logOutcome(logger, "sweep", err)
		return nil, err
	}

	result := &SweepResult{Series: len(series)}
	var errs []error
	for i := range series {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		created, err := e.GenerateInstances(ctx, &series[i], asOf)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		result.Created += len(created)
	}

	logger.Info("sweep finished", "as_of", calendar.FormatDate(asOf), "series", result.Series, "created", result.Created)
	return result, errors.Join(errs...)
}

// CreateInstance создаёт разовое занятие вне серии.
func (e *Expander) CreateInstance(ctx context.Context, in CreateInstanceInput) (*model.SessionInstance, error) {
	logger := componentLogger(ctx, e.logger, "expander", "create_instance")

	if vErr := validateStruct(in); vErr != nil {
		logOutcome(logger, "create instance", vErr)
		return nil, vErr
	}

	instance := &model.SessionInstance{
		Date:            datatypes.Date(calendar.DateOf(in.Date)),
		StartTime:       in.StartTime,
		DurationMinutes: in.DurationMinutes,
		Capacity:        in.Capacity,
		InstructorID:    in.InstructorID,
	}
	if err := e.store.Instances.Create(ctx, instance); err != nil {
		err = storeErr("create instance", err)
		logOutcome(logger, "create instance", err)
		return nil, err
	}
	return instance, nil
}
