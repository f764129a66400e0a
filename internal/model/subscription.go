package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// series_subscriptions: постоянная запись клиента на все занятия серии
// в окне [StartDate, EndDate].
type SeriesSubscription struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	SeriesID uuid.UUID `gorm:"type:uuid;not null;index"`

	StartDate datatypes.Date `gorm:"not null"`
	EndDate   datatypes.Date `gorm:"not null"`

	IsActive bool `gorm:"not null;index"`
	// Та же схема, что WaitlistEntry.OpenKey: одна активная подписка на пару.
	ActiveKey *string `gorm:"type:varchar(80);uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *SeriesSubscription) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// Covers сообщает, попадает ли дата в окно подписки.
func (s *SeriesSubscription) Covers(day time.Time) bool {
	return !day.Before(time.Time(s.StartDate)) && !day.After(time.Time(s.EndDate))
}
