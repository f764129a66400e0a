package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *model.SeriesSubscription) error
	GetActive(ctx context.Context, seriesID, clientID uuid.UUID) (*model.SeriesSubscription, error)
	// Активные подписки серии, чьё окно покрывает day.
	ListActiveCovering(ctx context.Context, seriesID uuid.UUID, day time.Time) ([]model.SeriesSubscription, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	DeactivateBySeries(ctx context.Context, seriesID uuid.UUID) (int64, error)
}

type GormSubscriptionRepository struct {
	db *gorm.DB
}

func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

func (r *GormSubscriptionRepository) Create(ctx context.Context, sub *model.SeriesSubscription) error {
	if sub.IsActive && sub.ActiveKey == nil {
		sub.ActiveKey = model.PairKey(sub.SeriesID, sub.ClientID)
	}
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *GormSubscriptionRepository) GetActive(ctx context.Context, seriesID, clientID uuid.UUID) (*model.SeriesSubscription, error) {
	var s model.SeriesSubscription
	err := r.db.WithContext(ctx).
		Where("series_id = ? AND client_id = ? AND is_active = ?", seriesID, clientID, true).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSubscriptionRepository) ListActiveCovering(ctx context.Context, seriesID uuid.UUID, day time.Time) ([]model.SeriesSubscription, error) {
	var subs []model.SeriesSubscription
	err := r.db.WithContext(ctx).
		Where("series_id = ? AND is_active = ?", seriesID, true).
		Where("start_date <= ? AND end_date >= ?", day, day).
		Order("created_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *GormSubscriptionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.SeriesSubscription{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "active_key": nil}).
		Error
}

func (r *GormSubscriptionRepository) DeactivateBySeries(ctx context.Context, seriesID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.SeriesSubscription{}).
		Where("series_id = ? AND is_active = ?", seriesID, true).
		Updates(map[string]any{"is_active": false, "active_key": nil})
	return res.RowsAffected, res.Error
}
