package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookable: общее для групповых занятий и индивидуальных приёмов:
// у обоих есть вместимость и занятые места.
type Bookable interface {
	BookableID() uuid.UUID
	SeatCapacity() int
	SeatsTaken() int
	HasFreeSeat() bool
}

var (
	_ Bookable = (*SessionInstance)(nil)
	_ Bookable = (*Appointment)(nil)
)

// AutoMigrate выполняет миграцию всех сущностей движка записи.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Provider{},
		&WorkingHours{},
		&RecurringSeries{},
		&SessionInstance{},
		&Enrollment{},
		&WaitlistEntry{},
		&SeriesSubscription{},
		&GuestSignup{},
		&RescheduleProposal{},
		&Appointment{},
	)
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
