package notification

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Шаблоны уведомлений, которые отправляет движок.
const (
	TemplateWaitlistPromoted        = "waitlist_promoted"
	TemplateEnrollmentCancelled     = "enrollment_cancelled"
	TemplateSubscriptionEnrolled    = "subscription_enrolled"
	TemplateGuestRescheduleProposed = "guest_reschedule_proposed"
	TemplateAppointmentConfirmed    = "appointment_confirmed"
)

// Message: то, что уходит внешней службе доставки.
type Message struct {
	Recipient string
	Template  string
	Payload   map[string]string
}

// Sender доставляет одно сообщение (почта, push, очередь: снаружи движка).
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender только пишет сообщение в лог. Используется по умолчанию.
type LogSender struct {
	Logger *log.Logger
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Info("notification", "recipient", msg.Recipient, "template", msg.Template, "payload", redact(msg.Payload))
	return nil
}

// secretKeys: ключи payload, которые нельзя писать в лог (токен переноса
// сам по себе даёт право подтвердить перенос).
var secretKeys = map[string]struct{}{
	"token": {},
}

const redacted = "[redacted]"

func redact(payload map[string]string) map[string]string {
	out := make(map[string]string, len(payload))
	for k, v := range payload {
		if _, ok := secretKeys[k]; ok {
			v = redacted
		}
		out[k] = v
	}
	return out
}

// WorkerPool рассылает уведомления в фоне после коммита.
type WorkerPool struct {
	size   int
	jobs   chan Message
	sender Sender
	logger *log.Logger
	wg     sync.WaitGroup
}

// NewWorkerPool создаёт пул из size воркеров с очередью queueSize.
func NewWorkerPool(size, queueSize int, sender Sender, logger *log.Logger) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	if queueSize <= 0 {
		queueSize = size
	}
	if sender == nil {
		sender = &LogSender{Logger: logger}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &WorkerPool{
		size:   size,
		jobs:   make(chan Message, queueSize),
		sender: sender,
		logger: logger.With("component", "notification"),
	}
}

// Start запускает воркеров; они завершаются по ctx.Done().
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()
	wp.logger.Debug("worker started", "worker", id)
	for {
		select {
		case msg := <-wp.jobs:
			if err := wp.sender.Send(ctx, msg); err != nil {
				wp.logger.Warn("send failed", "worker", id, "template", msg.Template, "recipient", msg.Recipient, "err", err)
			}
		case <-ctx.Done():
			wp.logger.Debug("worker shutting down", "worker", id)
			return
		}
	}
}

// Dispatch ставит сообщение в очередь и никогда не блокирует вызывающего:
// при переполнении сообщение отбрасывается.
func (wp *WorkerPool) Dispatch(_ context.Context, msg Message) bool {
	select {
	case wp.jobs <- msg:
		return true
	default:
		wp.logger.Warn("queue full, notification dropped", "template", msg.Template, "recipient", msg.Recipient)
		return false
	}
}

// Wait ждёт завершения воркеров после отмены контекста Start.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}
