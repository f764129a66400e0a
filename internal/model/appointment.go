package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentStatusRequested AppointmentStatus = "requested"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// appointments: индивидуальный приём у специалиста.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	ProviderID uuid.UUID `gorm:"type:uuid;not null;index:idx_appointment_provider_date"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index"`

	Date            datatypes.Date `gorm:"not null;index:idx_appointment_provider_date"`
	StartTime       datatypes.Time `gorm:"not null"`
	DurationMinutes int            `gorm:"not null"`

	Status AppointmentStatus `gorm:"type:varchar(32);not null;index"`
	// Подтверждён, но ждёт оплаты (решение принимает внешний платёжный модуль).
	PaymentPending bool `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

func (a *Appointment) BookableID() uuid.UUID { return a.ID }

// У приёма одно место.
func (a *Appointment) SeatCapacity() int { return 1 }

func (a *Appointment) SeatsTaken() int {
	if a.Status == AppointmentStatusCancelled {
		return 0
	}
	return 1
}

func (a *Appointment) HasFreeSeat() bool {
	return a.SeatsTaken() < a.SeatCapacity()
}
