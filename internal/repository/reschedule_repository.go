package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
)

type RescheduleRepository interface {
	CreateSignup(ctx context.Context, signup *model.GuestSignup) error
	GetSignup(ctx context.Context, id uuid.UUID) (*model.GuestSignup, error)
	// Перенести гостевую запись на другое занятие, если она ещё pending.
	MoveSignup(ctx context.Context, id, instanceID uuid.UUID) (bool, error)
	CreateProposal(ctx context.Context, proposal *model.RescheduleProposal) error
	GetProposalByToken(ctx context.Context, token string) (*model.RescheduleProposal, error)
	// Погасить токен: срабатывает ровно один раз.
	MarkProposalUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// Отменить все ещё pending гостевые записи занятия.
	CancelSignupsByInstance(ctx context.Context, instanceID uuid.UUID) (int64, error)
	// Закрыть непогашенные предложения переноса на занятие: expires_at = at.
	ExpireProposalsForInstance(ctx context.Context, instanceID uuid.UUID, at time.Time) (int64, error)
}

type GormRescheduleRepository struct {
	db *gorm.DB
}

func NewGormRescheduleRepository(db *gorm.DB) *GormRescheduleRepository {
	return &GormRescheduleRepository{db: db}
}

func (r *GormRescheduleRepository) CreateSignup(ctx context.Context, signup *model.GuestSignup) error {
	return r.db.WithContext(ctx).Create(signup).Error
}

func (r *GormRescheduleRepository) GetSignup(ctx context.Context, id uuid.UUID) (*model.GuestSignup, error) {
	var s model.GuestSignup
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormRescheduleRepository) MoveSignup(ctx context.Context, id, instanceID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.GuestSignup{}).
		Where("id = ? AND status = ?", id, model.GuestSignupStatusPending).
		Update("instance_id", instanceID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormRescheduleRepository) CreateProposal(ctx context.Context, proposal *model.RescheduleProposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

func (r *GormRescheduleRepository) GetProposalByToken(ctx context.Context, token string) (*model.RescheduleProposal, error) {
	var p model.RescheduleProposal
	if err := r.db.WithContext(ctx).First(&p, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRescheduleRepository) MarkProposalUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.RescheduleProposal{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormRescheduleRepository) CancelSignupsByInstance(ctx context.Context, instanceID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.GuestSignup{}).
		Where("instance_id = ? AND status = ?", instanceID, model.GuestSignupStatusPending).
		Update("status", model.GuestSignupStatusCancelled)
	return res.RowsAffected, res.Error
}

func (r *GormRescheduleRepository) ExpireProposalsForInstance(ctx context.Context, instanceID uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.RescheduleProposal{}).
		Where("proposed_instance_id = ? AND used_at IS NULL AND expires_at > ?", instanceID, at).
		Update("expires_at", at)
	return res.RowsAffected, res.Error
}
