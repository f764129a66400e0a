// Package calendarv1 содержит сгенерированные типы и gRPC-стабы calendar.v1.
package calendarv1

//go:generate protoc -I ../../../../proto --go_out=. --go_opt=module=github.com/Leganyst/session-scheduler/internal/api/calendar/v1 --go-grpc_out=. --go-grpc_opt=module=github.com/Leganyst/session-scheduler/internal/api/calendar/v1 calendar/v1/calendar.proto
