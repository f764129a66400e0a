package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestSignupStatus string

const (
	GuestSignupStatusPending   GuestSignupStatus = "pending"
	GuestSignupStatusConfirmed GuestSignupStatus = "confirmed"
	GuestSignupStatusCancelled GuestSignupStatus = "cancelled"
)

// guest_signups: заявка гостя без аккаунта на конкретное занятие.
type GuestSignup struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	InstanceID uuid.UUID `gorm:"type:uuid;not null;index"`

	GuestName  string `gorm:"type:varchar(255);not null"`
	GuestEmail string `gorm:"type:varchar(255);not null"`

	Status GuestSignupStatus `gorm:"type:varchar(32);not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GuestSignup) BeforeCreate(*gorm.DB) error {
	ensureID(&g.ID)
	return nil
}

// reschedule_proposals: одноразовое предложение перенести заявку гостя.
type RescheduleProposal struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	SignupID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ProposedInstanceID uuid.UUID `gorm:"type:uuid;not null"`

	Token string `gorm:"type:varchar(64);not null;uniqueIndex"`

	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time

	CreatedAt time.Time
}

func (p *RescheduleProposal) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
