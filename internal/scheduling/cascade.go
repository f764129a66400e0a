package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

// CascadeEditor правит и удаляет занятие или занятие вместе со всеми
// будущими занятиями того же шаблона.
//
// "Будущее занятие того же шаблона": тот же parent_series_id,
// дата >= даты исходного, тот же день недели, не is_overridden и не удалено.
type CascadeEditor struct {
	deps
	promoter *WaitlistPromoter
}

// InstancePatch: изменяемые поля занятия. nil: поле не трогаем.
type InstancePatch struct {
	StartTime       *datatypes.Time `json:"start_time,omitempty"`
	DurationMinutes *int            `json:"duration_minutes,omitempty" validate:"omitempty,gt=0,lte=1440"`
	Capacity        *int            `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	InstructorID    *uuid.UUID      `json:"instructor_id,omitempty"`
}

func (p InstancePatch) empty() bool {
	return p.StartTime == nil && p.DurationMinutes == nil && p.Capacity == nil && p.InstructorID == nil
}

func (p InstancePatch) validate() *ValidationError {
	vErr := &ValidationError{}
	if p.empty() {
		vErr.add("patch", "no fields to update")
		return vErr
	}
	vErr.merge(validateStruct(p))
	if p.StartTime != nil && (*p.StartTime < 0 || time.Duration(*p.StartTime) >= 24*time.Hour) {
		vErr.add("start_time", "must be within the day")
	}
	if p.InstructorID != nil && *p.InstructorID == uuid.Nil {
		vErr.add("instructor_id", "is required")
	}
	if p.StartTime != nil && p.DurationMinutes != nil && !vErr.HasErrors() {
		if !p.fitsInDay(*p.StartTime, 0) {
			vErr.add("duration_minutes", "session must end within the day")
		}
	}
	if !vErr.HasErrors() {
		return nil
	}
	return vErr
}

// fitsInDay: занятие после патча заканчивается не позже полуночи.
// start и durationMinutes: текущие значения занятия.
func (p InstancePatch) fitsInDay(start datatypes.Time, durationMinutes int) bool {
	if p.StartTime != nil {
		start = *p.StartTime
	}
	if p.DurationMinutes != nil {
		durationMinutes = *p.DurationMinutes
	}
	return time.Duration(start)+time.Duration(durationMinutes)*time.Minute <= 24*time.Hour
}

func (p InstancePatch) instanceFields() map[string]any {
	fields := make(map[string]any, 4)
	if p.StartTime != nil {
		fields["start_time"] = *p.StartTime
	}
	if p.DurationMinutes != nil {
		fields["duration_minutes"] = *p.DurationMinutes
	}
	if p.Capacity != nil {
		fields["capacity"] = *p.Capacity
	}
	if p.InstructorID != nil {
		fields["instructor_id"] = *p.InstructorID
	}
	return fields
}

// seriesFields переносит патч в шаблон серии, чтобы следующие прогоны
// генерировали уже изменённые занятия.
func (p InstancePatch) seriesFields(series *model.RecurringSeries) map[string]any {
	fields := make(map[string]any, 4)

	start := series.StartTime
	duration := time.Duration(series.EndTime - series.StartTime)
	if p.StartTime != nil {
		start = *p.StartTime
		fields["start_time"] = start
	}
	if p.DurationMinutes != nil {
		duration = time.Duration(*p.DurationMinutes) * time.Minute
	}
	if p.StartTime != nil || p.DurationMinutes != nil {
		fields["end_time"] = datatypes.Time(time.Duration(start) + duration)
	}
	if p.Capacity != nil {
		fields["capacity"] = *p.Capacity
	}
	if p.InstructorID != nil {
		fields["instructor_id"] = *p.InstructorID
	}
	return fields
}

type UpdateResult struct {
	Updated  []model.SessionInstance
	Promoted []model.WaitlistEntry
}

type DeleteResult struct {
	Deleted   []uuid.UUID
	Cancelled int
	Expired   int
	// Гостевые записи, отменённые вместе с занятием.
	CancelledSignups int
}

// UpdateInstance применяет патч к занятию. Без cascade занятие помечается
// is_overridden. С cascade патч уходит и во все будущие неизменённые занятия
// серии; если хотя бы одно не вмещает записанных, не меняется ничего.
func (c *CascadeEditor) UpdateInstance(ctx context.Context, instanceID uuid.UUID, patch InstancePatch, cascade bool) (*UpdateResult, error) {
	logger := componentLogger(ctx, c.logger, "cascade", "update", "instance_id", instanceID, "cascade", cascade)

	if vErr := patch.validate(); vErr != nil {
		logOutcome(logger, "update instance", vErr)
		return nil, vErr
	}

	var grown []uuid.UUID
	var updatedIDs []uuid.UUID
	err := c.store.Transaction(ctx, func(tx *repository.Store) error {
		ref, err := tx.Instances.GetByID(ctx, instanceID)
		if err != nil {
			return err
		}

		targets := []model.SessionInstance{*ref}
		if cascade && ref.ParentSeriesID != nil {
			siblings, err := tx.Instances.ListFutureSiblings(ctx, ref, ref.Day(), false)
			if err != nil {
				return err
			}
			targets = append(targets, siblings...)
		}

		for _, t := range targets {
			if !patch.fitsInDay(t.StartTime, t.DurationMinutes) {
				if t.ID == ref.ID {
					vErr := &ValidationError{}
					vErr.add("duration_minutes", "session must end within the day")
					return vErr
				}
				return &CascadeConflictError{InstanceID: t.ID, Reason: "session would end after midnight"}
			}

			fields := patch.instanceFields()
			if !cascade {
				fields["is_overridden"] = true
			}

			capacity := t.Capacity
			if patch.Capacity != nil {
				capacity = *patch.Capacity
			}
			ok, err := tx.Instances.UpdateIfFits(ctx, t.ID, fields, capacity)
			if err != nil {
				return err
			}
			if !ok {
				return &CascadeConflictError{
					InstanceID: t.ID,
					Reason:     fmt.Sprintf("capacity %d is below enrolled count", capacity),
				}
			}

			updatedIDs = append(updatedIDs, t.ID)
			if capacity > t.Capacity {
				grown = append(grown, t.ID)
			}
		}

		if cascade && ref.ParentSeriesID != nil {
			series, err := tx.Series.GetByID(ctx, *ref.ParentSeriesID)
			if err != nil {
				if isNotFound(err) {
					return nil
				}
				return err
			}
			if err := tx.Series.Update(ctx, series.ID, patch.seriesFields(series)); err != nil {
				return err
			}
		}
		return nil
	})
	err = storeErr("update instance", err)
	logOutcome(logger, "update instance", err)
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{}
	for _, id := range updatedIDs {
		inst, err := c.store.Instances.GetByID(ctx, id)
		if err != nil {
			return nil, storeErr("update instance", err)
		}
		result.Updated = append(result.Updated, *inst)
	}

	for _, id := range grown {
		promoted, err := c.promoter.Promote(ctx, id)
		result.Promoted = append(result.Promoted, promoted...)
		if err != nil {
			logger.Error("promote after capacity increase failed", "instance_id", id, "err", err)
		}
	}

	logger.Info("instances updated", "updated", len(result.Updated), "promoted", len(result.Promoted))
	return result, nil
}

// DeleteInstance удаляет занятие (и с cascade: будущие занятия шаблона).
// Активные записи сначала отменяются с причиной instance_deleted без
// подъёма очереди, открытые заявки листа ожидания закрываются как EXPIRED.
func (c *CascadeEditor) DeleteInstance(ctx context.Context, instanceID uuid.UUID, cascade bool) (*DeleteResult, error) {
	logger := componentLogger(ctx, c.logger, "cascade", "delete", "instance_id", instanceID, "cascade", cascade)

	result := &DeleteResult{}
	cancelled := make(map[uuid.UUID][]uuid.UUID)
	err := c.store.Transaction(ctx, func(tx *repository.Store) error {
		ref, err := tx.Instances.GetByID(ctx, instanceID)
		if err != nil {
			return err
		}

		targets := []model.SessionInstance{*ref}
		if cascade && ref.ParentSeriesID != nil {
			siblings, err := tx.Instances.ListFutureSiblings(ctx, ref, ref.Day(), false)
			if err != nil {
				return err
			}
			targets = append(targets, siblings...)
		}

		return c.removeTx(ctx, tx, targets, result, cancelled)
	})
	err = storeErr("delete instance", err)
	logOutcome(logger, "delete instance", err)
	if err != nil {
		return nil, err
	}

	for id, clients := range cancelled {
		c.notifyCancelled(ctx, id, clients, model.CancelReasonInstanceDeleted)
	}
	logger.Info("instances deleted", "deleted", len(result.Deleted), "cancelled", result.Cancelled)
	return result, nil
}

// DeleteSeries удаляет все занятия серии тем же способом, выключает
// подписки и мягко удаляет саму серию.
func (c *CascadeEditor) DeleteSeries(ctx context.Context, seriesID uuid.UUID) (*DeleteResult, error) {
	logger := componentLogger(ctx, c.logger, "cascade", "delete_series", "series_id", seriesID)

	result := &DeleteResult{}
	cancelled := make(map[uuid.UUID][]uuid.UUID)
	err := c.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Series.GetByID(ctx, seriesID); err != nil {
			return err
		}

		instances, err := tx.Instances.ListBySeries(ctx, seriesID, calendar.Date(1, time.January, 1), calendar.Date(9999, time.December, 31))
		if err != nil {
			return err
		}
		if err := c.removeTx(ctx, tx, instances, result, cancelled); err != nil {
			return err
		}

		if _, err := tx.Subscriptions.DeactivateBySeries(ctx, seriesID); err != nil {
			return err
		}
		return tx.Series.Delete(ctx, seriesID)
	})
	err = storeErr("delete series", err)
	logOutcome(logger, "delete series", err)
	if err != nil {
		return nil, err
	}

	for id, clients := range cancelled {
		c.notifyCancelled(ctx, id, clients, model.CancelReasonInstanceDeleted)
	}
	logger.Info("series deleted", "deleted", len(result.Deleted), "cancelled", result.Cancelled)
	return result, nil
}

func (c *CascadeEditor) removeTx(
	ctx context.Context,
	tx *repository.Store,
	targets []model.SessionInstance,
	result *DeleteResult,
	cancelled map[uuid.UUID][]uuid.UUID,
) error {
	now := c.now()
	for _, t := range targets {
		enrollments, err := tx.Enrollments.ListActiveByInstance(ctx, t.ID)
		if err != nil {
			return err
		}
		for _, e := range enrollments {
			ok, err := cancelTx(ctx, tx, t.ID, e.ClientID, model.CancelReasonInstanceDeleted, now)
			if err != nil {
				return err
			}
			if ok {
				cancelled[t.ID] = append(cancelled[t.ID], e.ClientID)
				result.Cancelled++
			}
		}

		expired, err := tx.Waitlist.CloseAllOpen(ctx, t.ID, model.WaitlistStatusExpired)
		if err != nil {
			return err
		}
		result.Expired += len(expired)

		signups, err := tx.Reschedules.CancelSignupsByInstance(ctx, t.ID)
		if err != nil {
			return err
		}
		result.CancelledSignups += int(signups)
		if _, err := tx.Reschedules.ExpireProposalsForInstance(ctx, t.ID, now); err != nil {
			return err
		}

		if err := tx.Instances.Delete(ctx, t.ID); err != nil {
			return err
		}
		result.Deleted = append(result.Deleted, t.ID)
	}
	return nil
}
