package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store собирает все репозитории поверх одного *gorm.DB (или транзакции).
type Store struct {
	db *gorm.DB

	Series        SeriesRepository
	Instances     InstanceRepository
	Enrollments   EnrollmentRepository
	Waitlist      WaitlistRepository
	Subscriptions SubscriptionRepository
	Reschedules   RescheduleRepository
	Providers     ProviderRepository
	Appointments  AppointmentRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Series:        NewGormSeriesRepository(db),
		Instances:     NewGormInstanceRepository(db),
		Enrollments:   NewGormEnrollmentRepository(db),
		Waitlist:      NewGormWaitlistRepository(db),
		Subscriptions: NewGormSubscriptionRepository(db),
		Reschedules:   NewGormRescheduleRepository(db),
		Providers:     NewGormProviderRepository(db),
		Appointments:  NewGormAppointmentRepository(db),
	}
}

// DB отдаёт нижележащее подключение (для миграций и health-check).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction выполняет fn в одной транзакции: всё или ничего.
// Внутри fn нужно пользоваться только переданным tx.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
