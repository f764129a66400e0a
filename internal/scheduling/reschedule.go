package scheduling

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/notification"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

// tokenBytes: 256 бит случайности на токен.
const tokenBytes = 32

// RescheduleFlow выдаёт и гасит одноразовые токены переноса гостевой записи.
type RescheduleFlow struct {
	deps
	ttl    time.Duration
	random io.Reader
}

type GuestSignupInput struct {
	InstanceID uuid.UUID `json:"instance_id" validate:"required"`
	GuestName  string    `json:"guest_name" validate:"required,max=255"`
	GuestEmail string    `json:"guest_email" validate:"required,email,max=255"`
}

// CreateGuestSignup заводит гостевую запись в статусе pending на занятие.
func (f *RescheduleFlow) CreateGuestSignup(ctx context.Context, in GuestSignupInput) (*model.GuestSignup, error) {
	logger := componentLogger(ctx, f.logger, "reschedule", "create_signup", "instance_id", in.InstanceID)

	if vErr := validateStruct(in); vErr != nil {
		logOutcome(logger, "create signup", vErr)
		return nil, vErr
	}
	if _, err := f.store.Instances.GetByID(ctx, in.InstanceID); err != nil {
		err = storeErr("create signup", err)
		logOutcome(logger, "create signup", err)
		return nil, err
	}

	signup := &model.GuestSignup{
		InstanceID: in.InstanceID,
		GuestName:  in.GuestName,
		GuestEmail: in.GuestEmail,
		Status:     model.GuestSignupStatusPending,
	}
	err := storeErr("create signup", f.store.Reschedules.CreateSignup(ctx, signup))
	logOutcome(logger, "create signup", err)
	if err != nil {
		return nil, err
	}
	return signup, nil
}

// ProposeReschedule создаёт предложение переноса с токеном, живущим ttl,
// и отдаёт его службе уведомлений для доставки гостю.
func (f *RescheduleFlow) ProposeReschedule(ctx context.Context, signupID, proposedInstanceID uuid.UUID) (*model.RescheduleProposal, error) {
	logger := componentLogger(ctx, f.logger, "reschedule", "propose",
		"signup_id", signupID, "proposed_instance_id", proposedInstanceID)

	proposal, signup, err := f.propose(ctx, signupID, proposedInstanceID)
	logOutcome(logger, "propose reschedule", err)
	if err != nil {
		return nil, err
	}

	f.notify(ctx, signup.GuestEmail, notification.TemplateGuestRescheduleProposed, map[string]string{
		"signup_id":   signup.ID.String(),
		"guest_name":  signup.GuestName,
		"instance_id": proposedInstanceID.String(),
		"token":       proposal.Token,
		"expires_at":  proposal.ExpiresAt.Format(time.RFC3339),
	})
	return proposal, nil
}

func (f *RescheduleFlow) propose(ctx context.Context, signupID, proposedInstanceID uuid.UUID) (*model.RescheduleProposal, *model.GuestSignup, error) {
	signup, err := f.store.Reschedules.GetSignup(ctx, signupID)
	if err != nil {
		return nil, nil, storeErr("propose reschedule", err)
	}
	if signup.Status != model.GuestSignupStatusPending {
		return nil, nil, ErrSignupNotPending
	}
	if signup.InstanceID == proposedInstanceID {
		return nil, nil, invalidRange("proposed_instance_id", "must differ from the current instance")
	}

	target, err := f.store.Instances.GetByID(ctx, proposedInstanceID)
	if err != nil {
		return nil, nil, storeErr("propose reschedule", err)
	}
	if err := requireSeat(target); err != nil {
		return nil, nil, err
	}

	token, err := f.newToken()
	if err != nil {
		return nil, nil, &UnavailableError{Op: "generate token", Err: err}
	}

	proposal := &model.RescheduleProposal{
		SignupID:           signup.ID,
		ProposedInstanceID: proposedInstanceID,
		Token:              token,
		ExpiresAt:          f.now().Add(f.ttl),
	}
	if err := f.store.Reschedules.CreateProposal(ctx, proposal); err != nil {
		return nil, nil, storeErr("propose reschedule", err)
	}
	return proposal, signup, nil
}

func (f *RescheduleFlow) newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(f.random, buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Confirm гасит токен и переносит гостевую запись. Токен срабатывает
// ровно один раз: used_at выставляется через CAS в той же транзакции,
// что и перенос.
func (f *RescheduleFlow) Confirm(ctx context.Context, token string) (*model.GuestSignup, error) {
	logger := componentLogger(ctx, f.logger, "reschedule", "confirm")

	var signup *model.GuestSignup
	err := f.store.Transaction(ctx, func(tx *repository.Store) error {
		proposal, err := tx.Reschedules.GetProposalByToken(ctx, token)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenNotFound
		}
		if err != nil {
			return err
		}

		now := f.now()
		if now.After(proposal.ExpiresAt) {
			return ErrTokenExpired
		}
		if proposal.UsedAt != nil {
			return ErrTokenAlreadyUsed
		}

		ok, err := tx.Reschedules.MarkProposalUsed(ctx, proposal.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTokenAlreadyUsed
		}

		// Занятие могли удалить после выдачи токена; откат вернёт used_at.
		if _, err := tx.Instances.GetByID(ctx, proposal.ProposedInstanceID); err != nil {
			return err
		}

		moved, err := tx.Reschedules.MoveSignup(ctx, proposal.SignupID, proposal.ProposedInstanceID)
		if err != nil {
			return err
		}
		if !moved {
			return ErrSignupNotPending
		}

		signup, err = tx.Reschedules.GetSignup(ctx, proposal.SignupID)
		return err
	})
	err = storeErr("confirm reschedule", err)
	logOutcome(logger, "confirm reschedule", err)
	if err != nil {
		return nil, err
	}
	return signup, nil
}
