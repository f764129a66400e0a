package scheduling

import (
	"context"
	"crypto/rand"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/notification"
	"github.com/Leganyst/session-scheduler/internal/repository"
)

const (
	DefaultSlotStepMinutes = 15
	DefaultRescheduleTTL   = 72 * time.Hour
)

// Notifier принимает уведомления после коммита. Не должен блокировать.
type Notifier interface {
	Dispatch(ctx context.Context, msg notification.Message) bool
}

type discardNotifier struct{}

func (discardNotifier) Dispatch(context.Context, notification.Message) bool { return true }

// Options: зависимости движка. Store обязателен, остальное имеет значения по умолчанию.
type Options struct {
	Store    *repository.Store
	Notifier Notifier
	Logger   *log.Logger
	// Now: локальные часы площадки.
	Now func() time.Time

	SlotStepMinutes int
	RescheduleTTL   time.Duration
	Payment         PaymentPolicy
	// Источник случайных байт для токенов переноса.
	Random io.Reader
}

// deps: общее окружение компонентов.
type deps struct {
	store    *repository.Store
	notifier Notifier
	logger   *log.Logger
	now      func() time.Time
}

func (d deps) today() time.Time {
	return calendar.DateOf(d.now())
}

// referenceDay возвращает day, а для нулевого значения: сегодняшнюю дату.
func (d deps) referenceDay(day time.Time) time.Time {
	if day.IsZero() {
		return d.today()
	}
	return calendar.DateOf(day)
}

func (d deps) notify(ctx context.Context, recipient, template string, payload map[string]string) {
	d.notifier.Dispatch(ctx, notification.Message{
		Recipient: recipient,
		Template:  template,
		Payload:   payload,
	})
}

func (d deps) notifyCancelled(ctx context.Context, instanceID uuid.UUID, clientIDs []uuid.UUID, reason string) {
	for _, c := range clientIDs {
		d.notify(ctx, c.String(), notification.TemplateEnrollmentCancelled, map[string]string{
			"instance_id": instanceID.String(),
			"reason":      reason,
		})
	}
}

// Engine связывает все компоненты поверх одного хранилища и одних часов.
type Engine struct {
	Expander      *Expander
	Enrollment    *EnrollmentManager
	Waitlist      *WaitlistPromoter
	Cascade       *CascadeEditor
	Subscriptions *SubscriptionManager
	Availability  *AvailabilityService
	Appointments  *AppointmentService
	Reschedule    *RescheduleFlow

	store *repository.Store
}

func NewEngine(opts Options) *Engine {
	if opts.Notifier == nil {
		opts.Notifier = discardNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SlotStepMinutes <= 0 {
		opts.SlotStepMinutes = DefaultSlotStepMinutes
	}
	if opts.RescheduleTTL <= 0 {
		opts.RescheduleTTL = DefaultRescheduleTTL
	}
	if opts.Payment == nil {
		opts.Payment = StaticPaymentPolicy(false)
	}
	if opts.Random == nil {
		opts.Random = rand.Reader
	}

	d := deps{
		store:    opts.Store,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		now:      opts.Now,
	}

	promoter := &WaitlistPromoter{deps: d}
	enrollment := &EnrollmentManager{deps: d, promoter: promoter}
	subscriptions := &SubscriptionManager{deps: d, enrollment: enrollment, waitlist: promoter}
	expander := &Expander{deps: d, subscriptions: subscriptions}
	availability := &AvailabilityService{deps: d, stepMinutes: opts.SlotStepMinutes}

	return &Engine{
		Expander:      expander,
		Enrollment:    enrollment,
		Waitlist:      promoter,
		Cascade:       &CascadeEditor{deps: d, promoter: promoter},
		Subscriptions: subscriptions,
		Availability:  availability,
		Appointments:  &AppointmentService{deps: d, availability: availability, payment: opts.Payment},
		Reschedule:    &RescheduleFlow{deps: d, ttl: opts.RescheduleTTL, random: opts.Random},
		store:         opts.Store,
	}
}

// Store отдаёт хранилище движка (для чтения в транспортном слое).
func (e *Engine) Store() *repository.Store {
	return e.store
}
