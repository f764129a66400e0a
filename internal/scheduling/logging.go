package scheduling

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/Leganyst/session-scheduler/internal/logging"
)

// Стабильные метки ошибок для логов и транспорта.
const (
	KindValidation            = "validation"
	KindCapacityExceeded      = "capacity_exceeded"
	KindAlreadyEnrolled       = "already_enrolled"
	KindNotEnrolled           = "not_enrolled"
	KindDuplicateWaitlist     = "duplicate_waitlist"
	KindWaitlistNotAllowed    = "waitlist_not_allowed"
	KindWaitlistNotOpen       = "waitlist_not_open"
	KindDuplicateSubscription = "duplicate_subscription"
	KindNotFound              = "not_found"
	KindSlotUnavailable       = "slot_unavailable"
	KindSignupNotPending      = "signup_not_pending"
	KindInvalidTransition     = "invalid_transition"
	KindTokenNotFound         = "token_not_found"
	KindTokenExpired          = "token_expired"
	KindTokenAlreadyUsed      = "token_already_used"
	KindCascadeConflict       = "cascade_conflict"
	KindUnavailable           = "unavailable"
	KindUnexpected            = "unexpected"
)

var sentinelKinds = []struct {
	err  error
	kind string
}{
	{ErrCapacityExceeded, KindCapacityExceeded},
	{ErrAlreadyEnrolled, KindAlreadyEnrolled},
	{ErrNotEnrolled, KindNotEnrolled},
	{ErrDuplicateWaitlist, KindDuplicateWaitlist},
	{ErrWaitlistNotAllowed, KindWaitlistNotAllowed},
	{ErrWaitlistNotOpen, KindWaitlistNotOpen},
	{ErrDuplicateSubscription, KindDuplicateSubscription},
	{ErrNotFound, KindNotFound},
	{ErrSlotUnavailable, KindSlotUnavailable},
	{ErrSignupNotPending, KindSignupNotPending},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrTokenNotFound, KindTokenNotFound},
	{ErrTokenExpired, KindTokenExpired},
	{ErrTokenAlreadyUsed, KindTokenAlreadyUsed},
}

// ErrorKind сопоставляет ошибке движка стабильную метку.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return KindValidation
	}
	var cErr *CascadeConflictError
	if errors.As(err, &cErr) {
		return KindCascadeConflict
	}
	var uErr *UnavailableError
	if errors.As(err, &uErr) {
		return KindUnavailable
	}

	for _, sk := range sentinelKinds {
		if errors.Is(err, sk.err) {
			return sk.kind
		}
	}
	return KindUnexpected
}

// IsBusinessOutcome: ожидаемый исход, который не логируется как сбой.
func IsBusinessOutcome(err error) bool {
	switch ErrorKind(err) {
	case "", KindUnavailable, KindUnexpected:
		return false
	}
	return true
}

func componentLogger(ctx context.Context, base *log.Logger, component, operation string, kv ...any) *log.Logger {
	logger := logging.FromContext(ctx, base)
	pairs := []any{"component", component}
	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}
	pairs = append(pairs, kv...)
	return logger.With(pairs...)
}

// logOutcome: бизнес-исходы на info, сбои хранилища на error.
func logOutcome(logger *log.Logger, msg string, err error) {
	if err == nil {
		logger.Debug(msg)
		return
	}
	if IsBusinessOutcome(err) {
		logger.Info(msg, "outcome", ErrorKind(err))
		return
	}
	logger.Error(msg, "err", err, "error_kind", ErrorKind(err))
}
