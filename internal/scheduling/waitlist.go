package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/notification"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

// WaitlistPromoter ведёт лист ожидания и поднимает из него клиентов,
// когда освобождается место.
type WaitlistPromoter struct {
	deps
}

var errEntryWithdrawn = errors.New("waitlist entry withdrawn")

type promoteStep int

const (
	stepBooked promoteStep = iota
	stepSkipped
	stepFull
)

// JoinWaitlist ставит клиента в очередь на заполненное занятие.
func (p *WaitlistPromoter) JoinWaitlist(ctx context.Context, instanceID, clientID uuid.UUID) (*model.WaitlistEntry, error) {
	logger := componentLogger(ctx, p.logger, "waitlist", "join", "instance_id", instanceID, "client_id", clientID)

	var entry *model.WaitlistEntry
	err := p.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		entry, err = joinTx(ctx, tx, instanceID, clientID, p.now())
		return err
	})
	err = storeErr("join waitlist", err)
	logOutcome(logger, "join waitlist", err)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func joinTx(ctx context.Context, tx *repository.Store, instanceID, clientID uuid.UUID, now time.Time) (*model.WaitlistEntry, error) {
	instance, err := tx.Instances.GetByID(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	enrollment, err := tx.Enrollments.GetByPair(ctx, instanceID, clientID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if enrollment != nil && enrollment.Status == model.EnrollmentStatusActive {
		return nil, ErrAlreadyEnrolled
	}

	if instance.HasFreeSeat() {
		return nil, ErrWaitlistNotAllowed
	}

	if _, err := tx.Waitlist.GetOpen(ctx, instanceID, clientID); err == nil {
		return nil, ErrDuplicateWaitlist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &model.WaitlistEntry{
		InstanceID: instanceID,
		ClientID:   clientID,
		Status:     model.WaitlistStatusPending,
		CreatedAt:  now,
	}
	if err := tx.Waitlist.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateWaitlist
		}
		return nil, err
	}
	return entry, nil
}

// LeaveWaitlist: клиент сам снимается из очереди (CANCELLED_BY_USER).
func (p *WaitlistPromoter) LeaveWaitlist(ctx context.Context, instanceID, clientID uuid.UUID) error {
	logger := componentLogger(ctx, p.logger, "waitlist", "leave", "instance_id", instanceID, "client_id", clientID)

	err := p.leave(ctx, instanceID, clientID)
	logOutcome(logger, "leave waitlist", err)
	return err
}

func (p *WaitlistPromoter) leave(ctx context.Context, instanceID, clientID uuid.UUID) error {
	entry, err := p.store.Waitlist.GetOpen(ctx, instanceID, clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrWaitlistNotOpen
	}
	if err != nil {
		return storeErr("leave waitlist", err)
	}

	ok, err := p.store.Waitlist.Transition(ctx, entry.ID, entry.Status, model.WaitlistStatusCancelledByUser, nil)
	if err != nil {
		return storeErr("leave waitlist", err)
	}
	if !ok {
		return ErrWaitlistNotOpen
	}
	return nil
}

// ExpireWaitlistEntry: внешний таймер закрывает открытую заявку (PENDING/NOTIFIED → EXPIRED).
func (p *WaitlistPromoter) ExpireWaitlistEntry(ctx context.Context, entryID uuid.UUID) (*model.WaitlistEntry, error) {
	logger := componentLogger(ctx, p.logger, "waitlist", "expire", "entry_id", entryID)

	entry, err := p.store.Waitlist.GetByID(ctx, entryID)
	if err != nil {
		err = storeErr("expire waitlist entry", err)
		logOutcome(logger, "expire", err)
		return nil, err
	}
	if !entry.Status.IsOpen() {
		logOutcome(logger, "expire", ErrInvalidTransition)
		return nil, ErrInvalidTransition
	}

	ok, err := p.store.Waitlist.Transition(ctx, entry.ID, entry.Status, model.WaitlistStatusExpired, nil)
	if err != nil {
		err = storeErr("expire waitlist entry", err)
		logOutcome(logger, "expire", err)
		return nil, err
	}
	if !ok {
		logOutcome(logger, "expire", ErrInvalidTransition)
		return nil, ErrInvalidTransition
	}

	entry.Status = model.WaitlistStatusExpired
	entry.OpenKey = nil
	logOutcome(logger, "expire", nil)
	return entry, nil
}

// ListWaitlist: все заявки занятия в порядке очереди.
func (p *WaitlistPromoter) ListWaitlist(ctx context.Context, instanceID uuid.UUID) ([]model.WaitlistEntry, error) {
	entries, err := p.store.Waitlist.ListByInstance(ctx, instanceID)
	if err != nil {
		return nil, storeErr("list waitlist", err)
	}
	return entries, nil
}

// Promote заполняет свободные места из очереди строго по FIFO.
// Цикл ограничен длиной очереди: каждый шаг либо занимает место,
// либо выводит заявку из PENDING.
func (p *WaitlistPromoter) Promote(ctx context.Context, instanceID uuid.UUID) ([]model.WaitlistEntry, error) {
	logger := componentLogger(ctx, p.logger, "waitlist", "promote", "instance_id", instanceID)

	var promoted []model.WaitlistEntry
	for {
		instance, err := p.store.Instances.GetByID(ctx, instanceID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return promoted, nil
		}
		if err != nil {
			return promoted, storeErr("promote", err)
		}
		if !instance.HasFreeSeat() {
			break
		}

		entry, err := p.store.Waitlist.OldestPending(ctx, instanceID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return promoted, storeErr("promote", err)
		}

		notifiedAt := p.now()
		ok, err := p.store.Waitlist.Transition(ctx, entry.ID,
			model.WaitlistStatusPending, model.WaitlistStatusNotified,
			map[string]any{"notified_at": notifiedAt})
		if err != nil {
			return promoted, storeErr("promote", err)
		}
		if !ok {
			continue
		}
		entry.Status = model.WaitlistStatusNotified
		entry.NotifiedAt = &notifiedAt

		step, err := p.bookNotified(ctx, entry)
		if err != nil {
			p.revertToPending(ctx, logger, entry.ID)
			return promoted, storeErr("promote", err)
		}

		switch step {
		case stepBooked:
			entry.Status = model.WaitlistStatusBooked
			entry.OpenKey = nil
			promoted = append(promoted, *entry)
			logger.Info("promoted", "entry_id", entry.ID, "client_id", entry.ClientID)
			p.notify(ctx, entry.ClientID.String(), notification.TemplateWaitlistPromoted, map[string]string{
				"instance_id": instanceID.String(),
				"entry_id":    entry.ID.String(),
			})
		case stepSkipped:
			logger.Debug("entry withdrawn during promotion", "entry_id", entry.ID)
		case stepFull:
			p.revertToPending(ctx, logger, entry.ID)
			return promoted, nil
		}
	}
	return promoted, nil
}

// bookNotified записывает клиента и закрывает заявку как BOOKED одной транзакцией.
func (p *WaitlistPromoter) bookNotified(ctx context.Context, entry *model.WaitlistEntry) (promoteStep, error) {
	err := p.store.Transaction(ctx, func(tx *repository.Store) error {
		_, err := bookTx(ctx, tx, entry.InstanceID, entry.ClientID)
		if err != nil && !errors.Is(err, ErrAlreadyEnrolled) {
			return err
		}

		ok, err := tx.Waitlist.Transition(ctx, entry.ID,
			model.WaitlistStatusNotified, model.WaitlistStatusBooked, nil)
		if err != nil {
			return err
		}
		if !ok {
			return errEntryWithdrawn
		}
		return nil
	})

	switch {
	case err == nil:
		return stepBooked, nil
	case errors.Is(err, errEntryWithdrawn):
		return stepSkipped, nil
	case errors.Is(err, ErrCapacityExceeded):
		return stepFull, nil
	default:
		return stepSkipped, err
	}
}

func (p *WaitlistPromoter) revertToPending(ctx context.Context, logger *log.Logger, entryID uuid.UUID) {
	if _, err := p.store.Waitlist.Transition(ctx, entryID,
		model.WaitlistStatusNotified, model.WaitlistStatusPending, nil); err != nil {
		logger.Warn("revert to pending failed", "entry_id", entryID, "err", err)
	}
}
