package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
)

type WaitlistRepository interface {
	Create(ctx context.Context, entry *model.WaitlistEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.WaitlistEntry, error)
	// Открытая (PENDING/NOTIFIED) заявка клиента на занятие.
	GetOpen(ctx context.Context, instanceID, clientID uuid.UUID) (*model.WaitlistEntry, error)
	// Самая старая PENDING-заявка: created_at, затем id.
	OldestPending(ctx context.Context, instanceID uuid.UUID) (*model.WaitlistEntry, error)
	// Переход статуса по CAS: срабатывает, только если текущий статус == from.
	Transition(ctx context.Context, id uuid.UUID, from, to model.WaitlistStatus, fields map[string]any) (bool, error)
	// Перевести все открытые заявки занятия в to. Возвращает затронутые заявки.
	CloseAllOpen(ctx context.Context, instanceID uuid.UUID, to model.WaitlistStatus) ([]model.WaitlistEntry, error)
	ListByInstance(ctx context.Context, instanceID uuid.UUID) ([]model.WaitlistEntry, error)
}

type GormWaitlistRepository struct {
	db *gorm.DB
}

func NewGormWaitlistRepository(db *gorm.DB) *GormWaitlistRepository {
	return &GormWaitlistRepository{db: db}
}

func (r *GormWaitlistRepository) Create(ctx context.Context, entry *model.WaitlistEntry) error {
	if entry.Status.IsOpen() && entry.OpenKey == nil {
		entry.OpenKey = model.PairKey(entry.InstanceID, entry.ClientID)
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormWaitlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.WaitlistEntry, error) {
	var e model.WaitlistEntry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormWaitlistRepository) GetOpen(ctx context.Context, instanceID, clientID uuid.UUID) (*model.WaitlistEntry, error) {
	var e model.WaitlistEntry
	err := r.db.WithContext(ctx).
		Where("instance_id = ? AND client_id = ?", instanceID, clientID).
		Where("status IN ?", []model.WaitlistStatus{model.WaitlistStatusPending, model.WaitlistStatusNotified}).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormWaitlistRepository) OldestPending(ctx context.Context, instanceID uuid.UUID) (*model.WaitlistEntry, error) {
	var e model.WaitlistEntry
	err := r.db.WithContext(ctx).
		Where("instance_id = ? AND status = ?", instanceID, model.WaitlistStatusPending).
		Order("created_at ASC").
		Order("id ASC").
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormWaitlistRepository) Transition(
	ctx context.Context,
	id uuid.UUID,
	from, to model.WaitlistStatus,
	fields map[string]any,
) (bool, error) {
	updates := map[string]any{"status": to}
	for k, v := range fields {
		updates[k] = v
	}
	if !to.IsOpen() {
		updates["open_key"] = nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.WaitlistEntry{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormWaitlistRepository) CloseAllOpen(ctx context.Context, instanceID uuid.UUID, to model.WaitlistStatus) ([]model.WaitlistEntry, error) {
	open := []model.WaitlistStatus{model.WaitlistStatusPending, model.WaitlistStatusNotified}

	var entries []model.WaitlistEntry
	err := r.db.WithContext(ctx).
		Where("instance_id = ? AND status IN ?", instanceID, open).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	err = r.db.WithContext(ctx).
		Model(&model.WaitlistEntry{}).
		Where("instance_id = ? AND status IN ?", instanceID, open).
		Updates(map[string]any{"status": to, "open_key": nil}).Error
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Status = to
		entries[i].OpenKey = nil
	}
	return entries, nil
}

func (r *GormWaitlistRepository) ListByInstance(ctx context.Context, instanceID uuid.UUID) ([]model.WaitlistEntry, error) {
	var entries []model.WaitlistEntry
	err := r.db.WithContext(ctx).
		Where("instance_id = ?", instanceID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
