package scheduling

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/model"
	"github.com/Leganyst/session-scheduler/internal/notification"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

// AvailabilityService считает свободные окна специалиста. Ничего не кэширует:
// брони конкурируют с запросами.
type AvailabilityService struct {
	deps
	stepMinutes int
}

// FreeSlots возвращает начала свободных окон длиной DurationMinutes.
func (a *AvailabilityService) FreeSlots(ctx context.Context, req calendar.SlotRequest) ([]time.Duration, error) {
	logger := componentLogger(ctx, a.logger, "availability", "free_slots", "staff_id", req.StaffID)

	if vErr := validateSlotRequest(req); vErr != nil {
		logOutcome(logger, "free slots", vErr)
		return nil, vErr
	}

	if _, err := a.store.Providers.GetByID(ctx, req.StaffID); err != nil {
		err = storeErr("free slots", err)
		logOutcome(logger, "free slots", err)
		return nil, err
	}

	slots, err := freeSlotsTx(ctx, a.store, req, a.stepMinutes)
	err = storeErr("free slots", err)
	logOutcome(logger, "free slots", err)
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func validateSlotRequest(req calendar.SlotRequest) *ValidationError {
	vErr := &ValidationError{}
	if req.StaffID == uuid.Nil {
		vErr.add("staff_id", "is required")
	}
	if req.Date.IsZero() {
		vErr.add("date", "is required")
	}
	if req.DurationMinutes <= 0 {
		vErr.add("duration_minutes", "must be greater than 0")
	}
	if !vErr.HasErrors() {
		return nil
	}
	return vErr
}

// freeSlotsTx собирает рабочие часы и занятость на дату и вызывает калькулятор.
// Занятость: неотменённые приёмы и групповые занятия, которые ведёт специалист.
func freeSlotsTx(ctx context.Context, tx *repository.Store, req calendar.SlotRequest, stepMinutes int) ([]time.Duration, error) {
	day := calendar.DateOf(req.Date)

	hours, err := tx.Providers.ListWorkingHours(ctx, req.StaffID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	working := make([]calendar.ClockRange, 0, len(hours))
	for _, h := range hours {
		r, err := calendar.BetweenClocks(h.StartTime, h.EndTime)
		if err != nil {
			continue
		}
		working = append(working, r)
	}

	appointments, err := tx.Appointments.ListActiveByProviderDate(ctx, req.StaffID, day)
	if err != nil {
		return nil, err
	}
	sessions, err := tx.Instances.ListByInstructorDate(ctx, req.StaffID, day)
	if err != nil {
		return nil, err
	}

	busy := make([]calendar.ClockRange, 0, len(appointments)+len(sessions))
	for _, a := range appointments {
		busy = append(busy, calendar.NewClockRange(a.StartTime, a.DurationMinutes))
	}
	for _, s := range sessions {
		busy = append(busy, calendar.NewClockRange(s.StartTime, s.DurationMinutes))
	}

	slots, err := calendar.ComputeFreeSlots(working, busy, req.DurationMinutes, stepMinutes)
	if err != nil {
		return nil, &ValidationError{Cause: err}
	}
	return slots, nil
}

// PaymentPolicy решает, нужен ли сигнал оплаты при подтверждении приёма.
type PaymentPolicy interface {
	RequiresPayment(ctx context.Context, appointment *model.Appointment) (bool, error)
}

// StaticPaymentPolicy: одно решение для всех приёмов (из конфига).
type StaticPaymentPolicy bool

func (p StaticPaymentPolicy) RequiresPayment(context.Context, *model.Appointment) (bool, error) {
	return bool(p), nil
}

// AppointmentService бронирует индивидуальные приёмы у специалиста.
type AppointmentService struct {
	deps
	availability *AvailabilityService
	payment      PaymentPolicy
}

type AppointmentRequest struct {
	ProviderID      uuid.UUID      `json:"provider_id" validate:"required"`
	ClientID        uuid.UUID      `json:"client_id" validate:"required"`
	Date            time.Time      `json:"date" validate:"required"`
	StartTime       datatypes.Time `json:"start_time"`
	DurationMinutes int            `json:"duration_minutes" validate:"gt=0,lte=1440"`
}

// Request создаёт приём в статусе requested. Записи одного специалиста
// упорядочены блокировкой его строки, а окно перепроверяется внутри транзакции.
func (s *AppointmentService) Request(ctx context.Context, req AppointmentRequest) (*model.Appointment, error) {
	logger := componentLogger(ctx, s.logger, "appointments", "request",
		"provider_id", req.ProviderID, "client_id", req.ClientID)

	if vErr := validateStruct(req); vErr != nil {
		logOutcome(logger, "request appointment", vErr)
		return nil, vErr
	}

	day := calendar.DateOf(req.Date)
	var appointment *model.Appointment
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Providers.Lock(ctx, req.ProviderID); err != nil {
			return err
		}

		slots, err := freeSlotsTx(ctx, tx, calendar.SlotRequest{
			StaffID:         req.ProviderID,
			Date:            day,
			DurationMinutes: req.DurationMinutes,
		}, s.availability.stepMinutes)
		if err != nil {
			return err
		}
		if !containsStart(slots, time.Duration(req.StartTime)) {
			return ErrSlotUnavailable
		}

		appointment = &model.Appointment{
			ProviderID:      req.ProviderID,
			ClientID:        req.ClientID,
			Date:            datatypes.Date(day),
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          model.AppointmentStatusRequested,
		}
		return tx.Appointments.Create(ctx, appointment)
	})
	err = storeErr("request appointment", err)
	logOutcome(logger, "request appointment", err)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func containsStart(slots []time.Duration, start time.Duration) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}

// Accept подтверждает приём; флаг ожидания оплаты решает PaymentPolicy.
func (s *AppointmentService) Accept(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	logger := componentLogger(ctx, s.logger, "appointments", "accept", "appointment_id", id)

	appointment, err := s.store.Appointments.GetByID(ctx, id)
	if err != nil {
		err = storeErr("accept appointment", err)
		logOutcome(logger, "accept appointment", err)
		return nil, err
	}
	if appointment.Status != model.AppointmentStatusRequested {
		logOutcome(logger, "accept appointment", ErrInvalidTransition)
		return nil, ErrInvalidTransition
	}

	pending, err := s.payment.RequiresPayment(ctx, appointment)
	if err != nil {
		err = &UnavailableError{Op: "payment policy", Err: err}
		logOutcome(logger, "accept appointment", err)
		return nil, err
	}

	ok, err := s.store.Appointments.UpdateStatus(ctx, id,
		model.AppointmentStatusRequested, model.AppointmentStatusConfirmed, pending)
	if err != nil {
		err = storeErr("accept appointment", err)
		logOutcome(logger, "accept appointment", err)
		return nil, err
	}
	if !ok {
		logOutcome(logger, "accept appointment", ErrInvalidTransition)
		return nil, ErrInvalidTransition
	}

	appointment.Status = model.AppointmentStatusConfirmed
	appointment.PaymentPending = pending
	logOutcome(logger, "accept appointment", nil)

	s.notify(ctx, appointment.ClientID.String(), notification.TemplateAppointmentConfirmed, map[string]string{
		"appointment_id":  appointment.ID.String(),
		"date":            calendar.FormatDate(time.Time(appointment.Date)),
		"start_time":      calendar.FormatClock(appointment.StartTime),
		"payment_pending": strconv.FormatBool(pending),
	})
	return appointment, nil
}

// Cancel отменяет запрошенный или подтверждённый приём.
func (s *AppointmentService) Cancel(ctx context.Context, id uuid.UUID) error {
	logger := componentLogger(ctx, s.logger, "appointments", "cancel", "appointment_id", id)

	appointment, err := s.store.Appointments.GetByID(ctx, id)
	if err != nil {
		err = storeErr("cancel appointment", err)
		logOutcome(logger, "cancel appointment", err)
		return err
	}
	if appointment.Status == model.AppointmentStatusCancelled {
		logOutcome(logger, "cancel appointment", ErrInvalidTransition)
		return ErrInvalidTransition
	}

	ok, err := s.store.Appointments.UpdateStatus(ctx, id,
		appointment.Status, model.AppointmentStatusCancelled, false)
	if err != nil {
		err = storeErr("cancel appointment", err)
	} else if !ok {
		err = ErrInvalidTransition
	}
	logOutcome(logger, "cancel appointment", err)
	return err
}
