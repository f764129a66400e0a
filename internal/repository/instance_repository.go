package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/session-scheduler/internal/model"
)

type InstanceRepository interface {
	// Вставить занятие серии, если на (series_id, date) ещё ничего нет
	// (в том числе удалённого). Возвращает true, если строка создана.
	CreateIfAbsent(ctx context.Context, instance *model.SessionInstance) (bool, error)
	Create(ctx context.Context, instance *model.SessionInstance) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.SessionInstance, error)
	// Занятия серии в [from, to] по возрастанию даты.
	ListBySeries(ctx context.Context, seriesID uuid.UUID, from, to time.Time) ([]model.SessionInstance, error)
	// Будущие занятия той же серии начиная с ref.Date (сама ref не входит).
	ListFutureSiblings(ctx context.Context, ref *model.SessionInstance, from time.Time, includeOverridden bool) ([]model.SessionInstance, error)
	// Занятия, которые ведёт instructorID в этот день.
	ListByInstructorDate(ctx context.Context, instructorID uuid.UUID, date time.Time) ([]model.SessionInstance, error)
	// Условная запись: +1 участник, только если есть место.
	ReserveSeat(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseSeat(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	// Обновить, только если participant_count <= capacity. false: не влезает.
	UpdateIfFits(ctx context.Context, id uuid.UUID, fields map[string]any, capacity int) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormInstanceRepository struct {
	db *gorm.DB
}

func NewGormInstanceRepository(db *gorm.DB) *GormInstanceRepository {
	return &GormInstanceRepository{db: db}
}

func (r *GormInstanceRepository) CreateIfAbsent(ctx context.Context, instance *model.SessionInstance) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(instance)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormInstanceRepository) Create(ctx context.Context, instance *model.SessionInstance) error {
	return r.db.WithContext(ctx).Create(instance).Error
}

func (r *GormInstanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SessionInstance, error) {
	var inst model.SessionInstance
	if err := r.db.WithContext(ctx).First(&inst, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *GormInstanceRepository) ListBySeries(ctx context.Context, seriesID uuid.UUID, from, to time.Time) ([]model.SessionInstance, error) {
	var instances []model.SessionInstance
	err := r.db.WithContext(ctx).
		Where("parent_series_id = ?", seriesID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *GormInstanceRepository) ListFutureSiblings(
	ctx context.Context,
	ref *model.SessionInstance,
	from time.Time,
	includeOverridden bool,
) ([]model.SessionInstance, error) {
	if ref.ParentSeriesID == nil {
		return []model.SessionInstance{}, nil
	}

	q := r.db.WithContext(ctx).
		Where("parent_series_id = ?", *ref.ParentSeriesID).
		Where("id <> ?", ref.ID).
		Where("date >= ?", from)
	if !includeOverridden {
		q = q.Where("is_overridden = ?", false)
	}

	var candidates []model.SessionInstance
	if err := q.Order("date ASC").Find(&candidates).Error; err != nil {
		return nil, err
	}

	// День недели считаем в Go: у SQLite и Postgres разные функции для этого.
	weekday := ref.Day().Weekday()
	siblings := make([]model.SessionInstance, 0, len(candidates))
	for _, c := range candidates {
		if c.Day().Weekday() == weekday {
			siblings = append(siblings, c)
		}
	}
	return siblings, nil
}

func (r *GormInstanceRepository) ListByInstructorDate(ctx context.Context, instructorID uuid.UUID, date time.Time) ([]model.SessionInstance, error) {
	var instances []model.SessionInstance
	err := r.db.WithContext(ctx).
		Where("instructor_id = ? AND date = ?", instructorID, date).
		Order("start_time ASC").
		Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *GormInstanceRepository) ReserveSeat(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.SessionInstance{}).
		Where("id = ? AND participant_count < capacity", id).
		UpdateColumn("participant_count", gorm.Expr("participant_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormInstanceRepository) ReleaseSeat(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.SessionInstance{}).
		Where("id = ? AND participant_count > 0", id).
		UpdateColumn("participant_count", gorm.Expr("participant_count - 1")).
		Error
}

func (r *GormInstanceRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.SessionInstance{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

func (r *GormInstanceRepository) UpdateIfFits(ctx context.Context, id uuid.UUID, fields map[string]any, capacity int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.SessionInstance{}).
		Where("id = ? AND participant_count <= ?", id, capacity).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete: мягкое удаление: строка остаётся и держит ключ (series_id, date).
func (r *GormInstanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SessionInstance{}, "id = ?", id).Error
}
