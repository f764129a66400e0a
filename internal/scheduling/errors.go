package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrInvalidRange: дата окончания раньше даты начала (или пустой интервал времени).
	ErrInvalidRange = errors.New("scheduling: invalid range")

	ErrCapacityExceeded      = errors.New("scheduling: capacity exceeded")
	ErrAlreadyEnrolled       = errors.New("scheduling: already enrolled")
	ErrNotEnrolled           = errors.New("scheduling: not enrolled")
	ErrDuplicateWaitlist     = errors.New("scheduling: already on waitlist")
	ErrWaitlistNotAllowed    = errors.New("scheduling: instance has free seats")
	ErrWaitlistNotOpen       = errors.New("scheduling: waitlist entry is not open")
	ErrDuplicateSubscription = errors.New("scheduling: active subscription exists")
	ErrNotFound              = errors.New("scheduling: not found")
	ErrSlotUnavailable       = errors.New("scheduling: slot unavailable")
	ErrSignupNotPending      = errors.New("scheduling: signup is not pending")
	ErrInvalidTransition     = errors.New("scheduling: invalid status transition")

	// Терминальные для токена: повтор не поможет.
	ErrTokenNotFound    = errors.New("scheduling: token not found")
	ErrTokenExpired     = errors.New("scheduling: token expired")
	ErrTokenAlreadyUsed = errors.New("scheduling: token already used")
)

// ValidationError: ошибки входных данных, обнаруженные до любой записи.
type ValidationError struct {
	FieldErrors map[string]string
	Cause       error
}

func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	if len(v.FieldErrors) == 0 {
		if v.Cause != nil {
			return "validation failed: " + v.Cause.Error()
		}
		return "validation failed"
	}

	fields := make([]string, 0, len(v.FieldErrors))
	for f := range v.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v.FieldErrors[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Unwrap() error {
	if v == nil {
		return nil
	}
	return v.Cause
}

// HasErrors сообщает, записана ли хоть одна ошибка поля.
func (v *ValidationError) HasErrors() bool {
	return v != nil && (len(v.FieldErrors) > 0 || v.Cause != nil)
}

func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

func (v *ValidationError) merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, msg := range other.FieldErrors {
		v.add(field, msg)
	}
	if v.Cause == nil {
		v.Cause = other.Cause
	}
}

func invalidRange(field, message string) *ValidationError {
	v := &ValidationError{Cause: ErrInvalidRange}
	v.add(field, message)
	return v
}

// CascadeConflictError: каскад отменён: у InstanceID ёмкость стала бы
// меньше числа записанных.
type CascadeConflictError struct {
	InstanceID uuid.UUID
	Reason     string
}

func (e *CascadeConflictError) Error() string {
	return fmt.Sprintf("scheduling: cascade conflict on instance %s: %s", e.InstanceID, e.Reason)
}

// UnavailableError: сбой хранилища. Операцию можно повторить.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("scheduling: %s: store unavailable: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// storeErr переводит ошибку репозитория в таксономию движка.
// Уже классифицированные ошибки проходят как есть.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if ErrorKind(err) != KindUnexpected {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return &UnavailableError{Op: op, Err: err}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound)
}
