package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaitlistStatus string

const (
	WaitlistStatusPending         WaitlistStatus = "PENDING"
	WaitlistStatusNotified        WaitlistStatus = "NOTIFIED"
	WaitlistStatusBooked          WaitlistStatus = "BOOKED"
	WaitlistStatusExpired         WaitlistStatus = "EXPIRED"
	WaitlistStatusCancelledByUser WaitlistStatus = "CANCELLED_BY_USER"
)

// IsOpen: статус, при котором запись ещё участвует в очереди.
func (s WaitlistStatus) IsOpen() bool {
	return s == WaitlistStatusPending || s == WaitlistStatusNotified
}

// waitlist_entries: очередь ожидания на заполненное занятие.
type WaitlistEntry struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	InstanceID uuid.UUID `gorm:"type:uuid;not null;index:idx_waitlist_instance_status"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index"`

	Status WaitlistStatus `gorm:"type:varchar(32);not null;index:idx_waitlist_instance_status"`

	// Заполнен, пока запись PENDING/NOTIFIED, и обнуляется при любом
	// терминальном статусе: уникальный индекс по nullable-колонке даёт
	// "не больше одной открытой записи на пару" и в Postgres, и в SQLite.
	OpenKey *string `gorm:"type:varchar(80);uniqueIndex"`

	CreatedAt  time.Time `gorm:"not null;index"`
	NotifiedAt *time.Time
	UpdatedAt  time.Time
}

func (w *WaitlistEntry) BeforeCreate(*gorm.DB) error {
	ensureID(&w.ID)
	return nil
}

// PairKey строит значение OpenKey/ActiveKey для пары идентификаторов.
func PairKey(a, b uuid.UUID) *string {
	k := strings.Join([]string{a.String(), b.String()}, ":")
	return &k
}
