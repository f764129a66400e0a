package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Leganyst/session-scheduler/internal/config"
)

// New собирает логгер сервиса: stderr и, если задан файл, ротируемый файл.
func New(cfg config.LogConfig) (*log.Logger, error) {
	var writer io.Writer = os.Stderr

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, err
		}
		writer = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "scheduler",
	}), nil
}

// Discard: логгер для тестов.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// WithContext кладёт логгер в контекст.
func WithContext(ctx context.Context, logger *log.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return log.WithContext(ctx, logger)
}

// FromContext достаёт логгер запроса, а без него возвращает base.
func FromContext(ctx context.Context, base *log.Logger) *log.Logger {
	if l, ok := ctx.Value(log.ContextKey).(*log.Logger); ok && l != nil {
		return l
	}
	if base != nil {
		return base
	}
	return log.Default()
}
