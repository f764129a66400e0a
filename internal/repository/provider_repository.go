package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *model.Provider) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Provider, error)
	ListWorkingHours(ctx context.Context, providerID uuid.UUID, dayOfWeek int) ([]model.WorkingHours, error)
	AddWorkingHours(ctx context.Context, wh *model.WorkingHours) error
	// Lock увеличивает lock_version провайдера. Внутри транзакции это
	// блокирует строку до коммита и упорядочивает конкурентные брони.
	Lock(ctx context.Context, id uuid.UUID) error
}

type GormProviderRepository struct {
	db *gorm.DB
}

func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

func (r *GormProviderRepository) Create(ctx context.Context, provider *model.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *GormProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	var p model.Provider
	err := r.db.WithContext(ctx).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC, start_time ASC")
		}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProviderRepository) ListWorkingHours(ctx context.Context, providerID uuid.UUID, dayOfWeek int) ([]model.WorkingHours, error) {
	var hours []model.WorkingHours
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND day_of_week = ?", providerID, dayOfWeek).
		Order("start_time ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *GormProviderRepository) AddWorkingHours(ctx context.Context, wh *model.WorkingHours) error {
	return r.db.WithContext(ctx).Create(wh).Error
}

func (r *GormProviderRepository) Lock(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&model.Provider{}).
		Where("id = ?", id).
		UpdateColumn("lock_version", gorm.Expr("lock_version + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
