package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

type WorkingHoursInput struct {
	DayOfWeek int            `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime datatypes.Time `json:"start_time"`
	EndTime   datatypes.Time `json:"end_time"`
}

type ProviderInput struct {
	DisplayName  string              `json:"display_name" validate:"required,max=255"`
	Description  string              `json:"description"`
	WorkingHours []WorkingHoursInput `json:"working_hours"`
}

func (w WorkingHoursInput) validate(field string) *ValidationError {
	vErr := &ValidationError{}
	if fieldErrs := validateStruct(w); fieldErrs != nil {
		for name, msg := range fieldErrs.FieldErrors {
			vErr.add(field+"."+name, msg)
		}
	}
	if w.StartTime < 0 || time.Duration(w.EndTime) > 24*time.Hour {
		vErr.add(field, "must be within the day")
	} else if w.EndTime <= w.StartTime {
		vErr.add(field, "end_time must be after start_time")
	}
	if !vErr.HasErrors() {
		return nil
	}
	return vErr
}

func (w WorkingHoursInput) model(providerID uuid.UUID) *model.WorkingHours {
	return &model.WorkingHours{
		ProviderID: providerID,
		DayOfWeek:  w.DayOfWeek,
		StartTime:  w.StartTime,
		EndTime:    w.EndTime,
	}
}

// CreateProvider заводит специалиста вместе с рабочими часами.
func (a *AvailabilityService) CreateProvider(ctx context.Context, in ProviderInput) (*model.Provider, error) {
	logger := componentLogger(ctx, a.logger, "availability", "create_provider")

	vErr := &ValidationError{}
	vErr.merge(validateStruct(in))
	for _, wh := range in.WorkingHours {
		vErr.merge(wh.validate("working_hours"))
	}
	if vErr.HasErrors() {
		logOutcome(logger, "create provider", vErr)
		return nil, vErr
	}

	provider := &model.Provider{DisplayName: in.DisplayName, Description: in.Description}
	err := a.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Providers.Create(ctx, provider); err != nil {
			return err
		}
		for _, wh := range in.WorkingHours {
			if err := tx.Providers.AddWorkingHours(ctx, wh.model(provider.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	err = storeErr("create provider", err)
	logOutcome(logger, "create provider", err)
	if err != nil {
		return nil, err
	}
	return a.GetProvider(ctx, provider.ID)
}

// AddWorkingHours добавляет интервал работы специалиста. Интервалы одного
// дня не должны пересекаться.
func (a *AvailabilityService) AddWorkingHours(ctx context.Context, providerID uuid.UUID, in WorkingHoursInput) (*model.Provider, error) {
	logger := componentLogger(ctx, a.logger, "availability", "add_working_hours", "provider_id", providerID)

	if vErr := in.validate("working_hours"); vErr != nil {
		logOutcome(logger, "add working hours", vErr)
		return nil, vErr
	}

	err := a.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Providers.Lock(ctx, providerID); err != nil {
			return err
		}
		existing, err := tx.Providers.ListWorkingHours(ctx, providerID, in.DayOfWeek)
		if err != nil {
			return err
		}
		for _, wh := range existing {
			if in.StartTime < wh.EndTime && wh.StartTime < in.EndTime {
				vErr := &ValidationError{}
				vErr.add("working_hours", "overlaps existing working hours")
				return vErr
			}
		}
		return tx.Providers.AddWorkingHours(ctx, in.model(providerID))
	})
	err = storeErr("add working hours", err)
	logOutcome(logger, "add working hours", err)
	if err != nil {
		return nil, err
	}
	return a.GetProvider(ctx, providerID)
}

func (a *AvailabilityService) GetProvider(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	provider, err := a.store.Providers.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get provider", err)
	}
	return provider, nil
}
