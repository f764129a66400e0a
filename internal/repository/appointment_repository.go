package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/model"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	// Неотменённые встречи провайдера на дату.
	ListActiveByProviderDate(ctx context.Context, providerID uuid.UUID, date time.Time) ([]model.Appointment, error)
	// Сменить статус, если текущий совпадает с from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.AppointmentStatus, paymentPending bool) (bool, error)
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	var a model.Appointment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAppointmentRepository) ListActiveByProviderDate(ctx context.Context, providerID uuid.UUID, date time.Time) ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND date = ?", providerID, date).
		Where("status <> ?", model.AppointmentStatusCancelled).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to model.AppointmentStatus,
	paymentPending bool,
) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "payment_pending": paymentPending})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
