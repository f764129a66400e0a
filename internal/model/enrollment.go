package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// Причины отмены записи.
const (
	CancelReasonClient          = "client"
	CancelReasonInstanceDeleted = "instance_deleted"
)

// enrollments: место клиента на занятии. Пара (instance, client) уникальна:
// повторная запись после отмены реактивирует ту же строку, история отмен
// при этом не теряется до её реактивации.
type Enrollment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	InstanceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_instance_client"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_instance_client;index"`

	Status       EnrollmentStatus `gorm:"type:varchar(32);not null;index"`
	CancelledAt  *time.Time
	CancelReason string `gorm:"type:varchar(64)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Enrollment) BeforeCreate(*gorm.DB) error {
	ensureID(&e.ID)
	return nil
}
