package service

import (
	"errors"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/Leganyst/session-scheduler/internal/scheduling"
)

// ErrorDomain: домен ErrorInfo в деталях gRPC-статуса.
const ErrorDomain = "calendar.v1"

var kindCodes = map[string]codes.Code{
	scheduling.KindValidation:            codes.InvalidArgument,
	scheduling.KindCapacityExceeded:      codes.ResourceExhausted,
	scheduling.KindAlreadyEnrolled:       codes.AlreadyExists,
	scheduling.KindDuplicateWaitlist:     codes.AlreadyExists,
	scheduling.KindDuplicateSubscription: codes.AlreadyExists,
	scheduling.KindNotEnrolled:           codes.FailedPrecondition,
	scheduling.KindWaitlistNotAllowed:    codes.FailedPrecondition,
	scheduling.KindWaitlistNotOpen:       codes.FailedPrecondition,
	scheduling.KindSlotUnavailable:       codes.FailedPrecondition,
	scheduling.KindSignupNotPending:      codes.FailedPrecondition,
	scheduling.KindInvalidTransition:     codes.FailedPrecondition,
	scheduling.KindTokenExpired:          codes.FailedPrecondition,
	scheduling.KindTokenAlreadyUsed:      codes.FailedPrecondition,
	scheduling.KindNotFound:              codes.NotFound,
	scheduling.KindTokenNotFound:         codes.NotFound,
	scheduling.KindCascadeConflict:       codes.Aborted,
	scheduling.KindUnavailable:           codes.Unavailable,
}

// toStatus переводит ошибку движка в gRPC-статус. Метка ErrorKind
// передаётся в ErrorInfo.Reason, ошибки полей: в BadRequest.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	kind := scheduling.ErrorKind(err)
	code, ok := kindCodes[kind]
	if !ok {
		code = codes.Internal
	}

	msg := err.Error()
	if code == codes.Internal {
		msg = "internal error"
	}

	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{Reason: kind, Domain: ErrorDomain}}

	var vErr *scheduling.ValidationError
	if errors.As(err, &vErr) && len(vErr.FieldErrors) > 0 {
		fields := make([]string, 0, len(vErr.FieldErrors))
		for f := range vErr.FieldErrors {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		br := &errdetails.BadRequest{}
		for _, f := range fields {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       f,
				Description: vErr.FieldErrors[f],
			})
		}
		details = append(details, br)
	}

	st, dErr := status.New(code, msg).WithDetails(details...)
	if dErr != nil {
		return status.Error(code, msg)
	}
	return st.Err()
}

// ErrorReason достаёт метку ErrorKind из деталей статуса; пусто, если её нет.
func ErrorReason(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return ""
}

// FieldViolations: ошибки полей из деталей статуса.
func FieldViolations(err error) map[string]string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			out := make(map[string]string, len(br.GetFieldViolations()))
			for _, v := range br.GetFieldViolations() {
				out[v.GetField()] = v.GetDescription()
			}
			return out
		}
	}
	return nil
}
