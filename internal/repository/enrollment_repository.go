package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	// Запись клиента на занятие в любом статусе.
	GetByPair(ctx context.Context, instanceID, clientID uuid.UUID) (*model.Enrollment, error)
	// Вернуть отменённую запись в active. false: запись уже активна.
	Reactivate(ctx context.Context, id uuid.UUID) (bool, error)
	// Отменить активную запись. false: запись уже не активна.
	Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error)
	ListActiveByInstance(ctx context.Context, instanceID uuid.UUID) ([]model.Enrollment, error)
	ListActiveByClient(ctx context.Context, clientID uuid.UUID, from time.Time) ([]model.Enrollment, error)
}

type GormEnrollmentRepository struct {
	db *gorm.DB
}

func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

func (r *GormEnrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *GormEnrollmentRepository) GetByPair(ctx context.Context, instanceID, clientID uuid.UUID) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.db.WithContext(ctx).
		Where("instance_id = ? AND client_id = ?", instanceID, clientID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormEnrollmentRepository) Reactivate(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("id = ? AND status = ?", id, model.EnrollmentStatusCancelled).
		Updates(map[string]any{
			"status":        model.EnrollmentStatusActive,
			"cancelled_at":  nil,
			"cancel_reason": "",
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormEnrollmentRepository) Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("id = ? AND status = ?", id, model.EnrollmentStatusActive).
		Updates(map[string]any{
			"status":        model.EnrollmentStatusCancelled,
			"cancelled_at":  at,
			"cancel_reason": reason,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormEnrollmentRepository) ListActiveByInstance(ctx context.Context, instanceID uuid.UUID) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Where("instance_id = ? AND status = ?", instanceID, model.EnrollmentStatusActive).
		Order("created_at ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListActiveByClient: активные записи клиента на занятия с датой не раньше from.
func (r *GormEnrollmentRepository) ListActiveByClient(ctx context.Context, clientID uuid.UUID, from time.Time) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Joins("JOIN session_instances si ON si.id = enrollments.instance_id AND si.deleted_at IS NULL").
		Where("enrollments.client_id = ? AND enrollments.status = ?", clientID, model.EnrollmentStatusActive).
		Where("si.date >= ?", from).
		Order("si.date ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
