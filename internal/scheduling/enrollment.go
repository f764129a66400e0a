package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

// EnrollmentManager записывает клиентов на занятия и отменяет записи.
type EnrollmentManager struct {
	deps
	promoter *WaitlistPromoter
}

// CancelRequest: отмена записи. ReferenceDate по умолчанию: сегодня.
type CancelRequest struct {
	InstanceID    uuid.UUID
	ClientID      uuid.UUID
	Cascade       bool
	ReferenceDate time.Time
}

// CancelResult: итог отмены: затронутые занятия и те, кого подняли из листа ожидания.
type CancelResult struct {
	Cancelled []uuid.UUID
	Promoted  []model.WaitlistEntry
}

// Affected: число занятий, где запись была отменена.
func (r *CancelResult) Affected() int {
	return len(r.Cancelled)
}

// requireSeat: у занятия или приёма должно остаться свободное место.
func requireSeat(b model.Bookable) error {
	if !b.HasFreeSeat() {
		return ErrCapacityExceeded
	}
	return nil
}

// Book занимает место на занятии. Проверка ёмкости и вставка записи
// выполняются в одной транзакции через условный UPDATE счётчика.
func (m *EnrollmentManager) Book(ctx context.Context, instanceID, clientID uuid.UUID) (*model.Enrollment, error) {
	logger := componentLogger(ctx, m.logger, "enrollment", "book", "instance_id", instanceID, "client_id", clientID)

	var enrollment *model.Enrollment
	err := m.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		enrollment, err = bookTx(ctx, tx, instanceID, clientID)
		return err
	})
	err = storeErr("book", err)
	logOutcome(logger, "book", err)
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// bookTx: общий шаг записи для Book, промоутера и подписок. Вызывать внутри транзакции.
func bookTx(ctx context.Context, tx *repository.Store, instanceID, clientID uuid.UUID) (*model.Enrollment, error) {
	existing, err := tx.Enrollments.GetByPair(ctx, instanceID, clientID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status == model.EnrollmentStatusActive {
		return nil, ErrAlreadyEnrolled
	}

	reserved, err := tx.Instances.ReserveSeat(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	if !reserved {
		// Ноль строк: либо занятия нет, либо мест нет.
		if _, err := tx.Instances.GetByID(ctx, instanceID); err != nil {
			return nil, err
		}
		return nil, ErrCapacityExceeded
	}

	if existing != nil {
		ok, err := tx.Enrollments.Reactivate(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAlreadyEnrolled
		}
		existing.Status = model.EnrollmentStatusActive
		existing.CancelledAt = nil
		existing.CancelReason = ""
		return existing, nil
	}

	enrollment := &model.Enrollment{
		InstanceID: instanceID,
		ClientID:   clientID,
		Status:     model.EnrollmentStatusActive,
	}
	if err := tx.Enrollments.Create(ctx, enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

// cancelTx отменяет активную запись и освобождает место. false: записи не было.
func cancelTx(ctx context.Context, tx *repository.Store, instanceID, clientID uuid.UUID, reason string, at time.Time) (bool, error) {
	enrollment, err := tx.Enrollments.GetByPair(ctx, instanceID, clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if enrollment.Status != model.EnrollmentStatusActive {
		return false, nil
	}

	ok, err := tx.Enrollments.Cancel(ctx, enrollment.ID, reason, at)
	if err != nil || !ok {
		return false, err
	}
	if err := tx.Instances.ReleaseSeat(ctx, instanceID); err != nil {
		return false, err
	}
	return true, nil
}

// Cancel снимает запись клиента. С Cascade снимает и записи на будущие
// занятия той же серии (тот же день недели, дата >= max(даты занятия, ReferenceDate)).
// Все отмены коммитятся вместе, затем для каждого занятия запускается промоутер.
func (m *EnrollmentManager) Cancel(ctx context.Context, req CancelRequest) (*CancelResult, error) {
	logger := componentLogger(ctx, m.logger, "enrollment", "cancel",
		"instance_id", req.InstanceID, "client_id", req.ClientID, "cascade", req.Cascade)

	reference := m.referenceDay(req.ReferenceDate)
	now := m.now()
	result := &CancelResult{}

	err := m.store.Transaction(ctx, func(tx *repository.Store) error {
		instance, err := tx.Instances.GetByID(ctx, req.InstanceID)
		if err != nil {
			return err
		}

		ok, err := cancelTx(ctx, tx, instance.ID, req.ClientID, model.CancelReasonClient, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotEnrolled
		}
		result.Cancelled = append(result.Cancelled, instance.ID)

		if !req.Cascade || instance.ParentSeriesID == nil {
			return nil
		}

		from := calendar.MaxDate(instance.Day(), reference)
		siblings, err := tx.Instances.ListFutureSiblings(ctx, instance, from, true)
		if err != nil {
			return err
		}
		for _, s := range siblings {
			ok, err := cancelTx(ctx, tx, s.ID, req.ClientID, model.CancelReasonClient, now)
			if err != nil {
				return err
			}
			if ok {
				result.Cancelled = append(result.Cancelled, s.ID)
			}
		}
		return nil
	})
	err = storeErr("cancel", err)
	logOutcome(logger, "cancel", err)
	if err != nil {
		return nil, err
	}

	for _, id := range result.Cancelled {
		promoted, err := m.promoter.Promote(ctx, id)
		result.Promoted = append(result.Promoted, promoted...)
		if err != nil {
			// Отмена уже закоммичена; очередь догонит следующий триггер.
			logger.Error("promote after cancel failed", "instance_id", id, "err", err)
		}
	}

	logger.Info("cancelled", "affected", result.Affected(), "promoted", len(result.Promoted))
	return result, nil
}

// ListClientEnrollments: активные записи клиента начиная с from (по умолчанию сегодня).
func (m *EnrollmentManager) ListClientEnrollments(ctx context.Context, clientID uuid.UUID, from time.Time) ([]model.Enrollment, error) {
	enrollments, err := m.store.Enrollments.ListActiveByClient(ctx, clientID, m.referenceDay(from))
	if err != nil {
		return nil, storeErr("list enrollments", err)
	}
	return enrollments, nil
}
