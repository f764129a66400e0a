package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Provider: специалист, к которому записываются на индивидуальные приёмы
// (консультант, тренер и т.п.). Учётные данные живут во внешнем сервисе,
// здесь только то, что нужно календарю.
type Provider struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	DisplayName string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	// Счётчик, который трогается в начале каждой транзакции записи на приём,
	// чтобы сериализовать конкурентные записи к одному специалисту.
	LockVersion int64 `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	WorkingHours []WorkingHours `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (p *Provider) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// WorkingHours: рабочий интервал специалиста в конкретный день недели.
// На один день может приходиться несколько интервалов (перерывы).
type WorkingHours struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	ProviderID uuid.UUID `gorm:"type:uuid;not null;index:idx_working_hours_provider_day"`
	// 0 = воскресенье, как time.Weekday.
	DayOfWeek int `gorm:"not null;index:idx_working_hours_provider_day"`

	StartTime datatypes.Time `gorm:"not null"`
	EndTime   datatypes.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *WorkingHours) BeforeCreate(*gorm.DB) error {
	ensureID(&w.ID)
	return nil
}
