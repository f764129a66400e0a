package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/notification"
)

// SubscriptionManager подписывает клиента на все занятия серии до выбранной даты.
type SubscriptionManager struct {
	deps
	enrollment *EnrollmentManager
	waitlist   *WaitlistPromoter
}

type Outcome string

const (
	OutcomeBooked            Outcome = "booked"
	OutcomeWaitlisted        Outcome = "waitlisted"
	OutcomeAlreadyEnrolled   Outcome = "already_enrolled"
	OutcomeAlreadyWaitlisted Outcome = "already_waitlisted"
	OutcomeFailed            Outcome = "failed"
)

type InstanceOutcome struct {
	InstanceID uuid.UUID
	Date       time.Time
	Outcome    Outcome
	// Причина для OutcomeFailed.
	Err error
}

type SubscribeRequest struct {
	SeriesID uuid.UUID `json:"series_id" validate:"required"`
	ClientID uuid.UUID `json:"client_id" validate:"required"`
	EndDate  time.Time `json:"end_date" validate:"required"`
	// По умолчанию: сегодня по часам движка.
	Today time.Time `json:"-"`
}

type SubscribeResult struct {
	Subscription *model.SeriesSubscription
	Outcomes     []InstanceOutcome
}

// Subscribe создаёт подписку и записывает клиента на все уже
// материализованные занятия в [today, EndDate]. Заполненные занятия дают
// заявку в лист ожидания, поэтому частичный успех: нормальный исход.
func (s *SubscriptionManager) Subscribe(ctx context.Context, req SubscribeRequest) (*SubscribeResult, error) {
	logger := componentLogger(ctx, s.logger, "subscription", "subscribe",
		"series_id", req.SeriesID, "client_id", req.ClientID)

	if vErr := validateStruct(req); vErr != nil {
		logOutcome(logger, "subscribe", vErr)
		return nil, vErr
	}

	today := s.referenceDay(req.Today)
	end := calendar.DateOf(req.EndDate)

	series, err := s.store.Series.GetByID(ctx, req.SeriesID)
	if err != nil {
		err = storeErr("subscribe", err)
		logOutcome(logger, "subscribe", err)
		return nil, err
	}

	if end.Before(today) || end.After(time.Time(series.EndDate)) {
		vErr := invalidRange("end_date", "must be between today and the series end date")
		logOutcome(logger, "subscribe", vErr)
		return nil, vErr
	}

	sub, err := s.create(ctx, req.SeriesID, req.ClientID, today, end)
	logOutcome(logger, "subscribe", err)
	if err != nil {
		return nil, err
	}

	instances, err := s.store.Instances.ListBySeries(ctx, req.SeriesID, today, end)
	if err != nil {
		// Подписка уже сохранена; следующие прогоны генерации её подхватят.
		return &SubscribeResult{Subscription: sub}, storeErr("subscribe", err)
	}

	result := &SubscribeResult{Subscription: sub, Outcomes: make([]InstanceOutcome, 0, len(instances))}
	for _, inst := range instances {
		result.Outcomes = append(result.Outcomes, s.enrollOne(ctx, &inst, req.ClientID))
	}

	logger.Info("subscribed", "instances", len(result.Outcomes))
	return result, nil
}

func (s *SubscriptionManager) create(ctx context.Context, seriesID, clientID uuid.UUID, start, end time.Time) (*model.SeriesSubscription, error) {
	if _, err := s.store.Subscriptions.GetActive(ctx, seriesID, clientID); err == nil {
		return nil, ErrDuplicateSubscription
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr("subscribe", err)
	}

	sub := &model.SeriesSubscription{
		SeriesID:  seriesID,
		ClientID:  clientID,
		StartDate: datatypes.Date(start),
		EndDate:   datatypes.Date(end),
		IsActive:  true,
	}
	if err := s.store.Subscriptions.Create(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubscription
		}
		return nil, storeErr("subscribe", err)
	}
	return sub, nil
}

// Unsubscribe выключает подписку. Уже сделанные записи остаются.
func (s *SubscriptionManager) Unsubscribe(ctx context.Context, seriesID, clientID uuid.UUID) error {
	logger := componentLogger(ctx, s.logger, "subscription", "unsubscribe",
		"series_id", seriesID, "client_id", clientID)

	sub, err := s.store.Subscriptions.GetActive(ctx, seriesID, clientID)
	if err != nil {
		err = storeErr("unsubscribe", err)
		logOutcome(logger, "unsubscribe", err)
		return err
	}

	err = storeErr("unsubscribe", s.store.Subscriptions.Deactivate(ctx, sub.ID))
	logOutcome(logger, "unsubscribe", err)
	return err
}

// enrollOne: запись, а при нехватке мест: лист ожидания.
func (s *SubscriptionManager) enrollOne(ctx context.Context, inst *model.SessionInstance, clientID uuid.UUID) InstanceOutcome {
	out := InstanceOutcome{InstanceID: inst.ID, Date: inst.Day()}

	// Две попытки: между "мест нет" и постановкой в очередь место может освободиться.
	for attempt := 0; attempt < 2; attempt++ {
		_, err := s.enrollment.Book(ctx, inst.ID, clientID)
		switch {
		case err == nil:
			out.Outcome = OutcomeBooked
			return out
		case errors.Is(err, ErrAlreadyEnrolled):
			out.Outcome = OutcomeAlreadyEnrolled
			return out
		case !errors.Is(err, ErrCapacityExceeded):
			out.Outcome, out.Err = OutcomeFailed, err
			return out
		}

		_, err = s.waitlist.JoinWaitlist(ctx, inst.ID, clientID)
		switch {
		case err == nil:
			out.Outcome = OutcomeWaitlisted
			return out
		case errors.Is(err, ErrDuplicateWaitlist):
			out.Outcome = OutcomeAlreadyWaitlisted
			return out
		case errors.Is(err, ErrAlreadyEnrolled):
			out.Outcome = OutcomeAlreadyEnrolled
			return out
		case !errors.Is(err, ErrWaitlistNotAllowed):
			out.Outcome, out.Err = OutcomeFailed, err
			return out
		}
	}

	out.Outcome, out.Err = OutcomeFailed, ErrCapacityExceeded
	return out
}

// enrollNewInstances сверяет только что созданные занятия с активными
// подписками и записывает подписчиков.
func (s *SubscriptionManager) enrollNewInstances(ctx context.Context, instances []model.SessionInstance) {
	logger := componentLogger(ctx, s.logger, "subscription", "auto_enroll")

	for i := range instances {
		inst := &instances[i]
		if inst.ParentSeriesID == nil {
			continue
		}

		subs, err := s.store.Subscriptions.ListActiveCovering(ctx, *inst.ParentSeriesID, inst.Day())
		if err != nil {
			logger.Error("list subscriptions failed", "instance_id", inst.ID, "err", err)
			continue
		}

		for _, sub := range subs {
			out := s.enrollOne(ctx, inst, sub.ClientID)
			if out.Outcome == OutcomeFailed {
				logger.Error("auto-enroll failed", "instance_id", inst.ID, "client_id", sub.ClientID, "err", out.Err)
				continue
			}
			logger.Info("auto-enrolled", "instance_id", inst.ID, "client_id", sub.ClientID, "outcome", out.Outcome)
			s.notify(ctx, sub.ClientID.String(), notification.TemplateSubscriptionEnrolled, map[string]string{
				"instance_id": inst.ID.String(),
				"series_id":   inst.ParentSeriesID.String(),
				"date":        calendar.FormatDate(inst.Day()),
				"outcome":     string(out.Outcome),
			})
		}
	}
}
