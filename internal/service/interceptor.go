package service

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Leganyst/session-scheduler/internal/logging"
)

// LoggingInterceptor кладёт в контекст логгер запроса с request_id и методом
// и пишет итог вызова: бизнес-отказы на info, остальное на error.
func LoggingInterceptor(base *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		logger := base.With("request_id", uuid.NewString(), "method", info.FullMethod)
		ctx = logging.WithContext(ctx, logger)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		switch code {
		case codes.OK:
			logger.Debug("rpc done", "duration", elapsed)
		case codes.Internal, codes.Unavailable, codes.Unknown:
			logger.Error("rpc failed", "code", code.String(), "reason", ErrorReason(err), "duration", elapsed, "err", err)
		default:
			logger.Info("rpc rejected", "code", code.String(), "reason", ErrorReason(err), "duration", elapsed)
		}
		return resp, err
	}
}
