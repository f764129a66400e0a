package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SessionInstance: конкретное занятие на дату, на которое можно записаться.
// Либо сгенерировано из серии (SeriesID != nil), либо создано вручную.
type SessionInstance struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Одна дата серии: одно занятие. Удалённые (soft delete) строки тоже
	// держат ключ, поэтому sweep их не воскрешает.
	SeriesID *uuid.UUID     `gorm:"type:uuid;uniqueIndex:idx_instance_series_date"`
	Date     datatypes.Date `gorm:"not null;uniqueIndex:idx_instance_series_date;index"`

	StartTime       datatypes.Time `gorm:"not null"`
	DurationMinutes int            `gorm:"not null"`

	Capacity int `gorm:"not null"`
	// Денормализованное число активных записей; меняется только условным
	// UPDATE ... WHERE participant_count < capacity.
	ParticipantCount int `gorm:"not null"`

	InstructorID uuid.UUID `gorm:"type:uuid;index"`

	IsGeneratedInstance bool       `gorm:"not null"`
	ParentSeriesID      *uuid.UUID `gorm:"type:uuid;index"`
	// Выставляется при правке одного занятия без каскада.
	IsOverridden bool `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (i *SessionInstance) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	return nil
}

// Day: дата занятия как time.Time (полночь).
func (i *SessionInstance) Day() time.Time {
	return time.Time(i.Date)
}

// StartsAt и EndsAt: наивное локальное время занятия.
func (i *SessionInstance) StartsAt() time.Time {
	return i.Day().Add(time.Duration(i.StartTime))
}

func (i *SessionInstance) EndsAt() time.Time {
	return i.StartsAt().Add(time.Duration(i.DurationMinutes) * time.Minute)
}

func (i *SessionInstance) BookableID() uuid.UUID { return i.ID }
func (i *SessionInstance) SeatCapacity() int     { return i.Capacity }
func (i *SessionInstance) SeatsTaken() int       { return i.ParticipantCount }

// HasFreeSeat сообщает, есть ли свободное место.
func (i *SessionInstance) HasFreeSeat() bool {
	return i.ParticipantCount < i.Capacity
}
