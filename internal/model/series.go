package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecurringSeries: еженедельное правило, из которого генерируются занятия.
// Сама серия не хранит ссылок на занятия: они находятся по parent_series_id.
type RecurringSeries struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Title string `gorm:"type:varchar(255)"`

	// 0 = воскресенье, как time.Weekday.
	DayOfWeek int `gorm:"not null"`

	StartTime datatypes.Time `gorm:"not null"`
	EndTime   datatypes.Time `gorm:"not null"`

	StartDate datatypes.Date `gorm:"not null;index"`
	EndDate   datatypes.Date `gorm:"not null;index"`

	Capacity     int       `gorm:"not null"`
	InstructorID uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (s *RecurringSeries) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// Weekday возвращает день недели серии.
func (s *RecurringSeries) Weekday() time.Weekday {
	return time.Weekday(s.DayOfWeek)
}

// DurationMinutes: длительность одного занятия серии.
func (s *RecurringSeries) DurationMinutes() int {
	return int(time.Duration(s.EndTime-s.StartTime) / time.Minute)
}
