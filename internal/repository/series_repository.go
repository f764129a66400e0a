package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/google/uuid"
)

type SeriesRepository interface {
	Create(ctx context.Context, series *model.RecurringSeries) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.RecurringSeries, error)
	// Серии, у которых ещё остались даты не раньше asOf.
	ListEndingOnOrAfter(ctx context.Context, asOf time.Time) ([]model.RecurringSeries, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormSeriesRepository struct {
	db *gorm.DB
}

func NewGormSeriesRepository(db *gorm.DB) *GormSeriesRepository {
	return &GormSeriesRepository{db: db}
}

func (r *GormSeriesRepository) Create(ctx context.Context, series *model.RecurringSeries) error {
	return r.db.WithContext(ctx).Create(series).Error
}

func (r *GormSeriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.RecurringSeries, error) {
	var s model.RecurringSeries
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSeriesRepository) ListEndingOnOrAfter(ctx context.Context, asOf time.Time) ([]model.RecurringSeries, error) {
	var series []model.RecurringSeries
	err := r.db.WithContext(ctx).
		Where("end_date >= ?", asOf).
		Order("created_at ASC").
		Find(&series).Error
	if err != nil {
		return nil, err
	}
	return series, nil
}

func (r *GormSeriesRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.RecurringSeries{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

// Delete: мягкое удаление.
func (r *GormSeriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RecurringSeries{}, "id = ?", id).Error
}
