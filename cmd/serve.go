package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	calendarpb "github.com/Leganyst/session-scheduler/internal/api/calendar/v1"
	"github.com/Leganyst/session-scheduler/internal/httpapi"
	"github.com/Leganyst/session-scheduler/internal/notification"
	"github.com/Leganyst/session-scheduler/internal/repository"
	"github.com/Leganyst/session-scheduler/internal/scheduling"
	"github.com/Leganyst/session-scheduler/internal/service"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	NoSweep bool `help:"Disable the background instance sweep." name:"no-sweep"`
}

func (c *ServeCmd) Run(app *App) error {
	cfg := app.Config
	logger := app.Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := app.openDB()
	if err != nil {
		return err
	}
	defer closeDB(gormDB)

	// Воркеры уведомлений живут дольше серверов: отменяем их последними.
	poolCtx, cancelPool := context.WithCancel(context.Background())
	pool := notification.NewWorkerPool(cfg.Notification.Workers, cfg.Notification.QueueSize,
		&notification.LogSender{Logger: logger}, logger)
	pool.Start(poolCtx)
	defer func() {
		cancelPool()
		pool.Wait()
	}()

	engine := scheduling.NewEngine(scheduling.Options{
		Store:           repository.NewStore(gormDB),
		Notifier:        pool,
		Logger:          logger,
		SlotStepMinutes: cfg.Scheduling.SlotStepMinutes,
		RescheduleTTL:   cfg.Scheduling.RescheduleTTL(),
		Payment:         scheduling.StaticPaymentPolicy(cfg.Scheduling.RequirePaymentSignal),
	})
	calendarSvc := service.NewCalendarService(engine)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(service.LoggingInterceptor(logger)))
	calendarpb.RegisterCalendarServiceServer(grpcServer, calendarSvc)
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus(calendarpb.CalendarService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.GRPCAddr, err)
	}

	httpServer := &http.Server{
		Addr: cfg.Server.HTTPAddr,
		Handler: httpapi.NewRouter(calendarSvc, httpapi.RouterOptions{
			RateLimitPerSec: cfg.Server.RateLimitPerSec,
			RateLimitBurst:  cfg.Server.RateLimitBurst,
			Logger:          logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("gRPC server listening", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http serve: %w", err)
		}
	}()

	if !c.NoSweep {
		go runSweep(ctx, engine, cfg.Scheduling.SweepInterval(), logger)
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-errCh:
		logger.Error("server failed, shutting down", "err", err)
	}

	healthSrv.SetServingStatus(calendarpb.CalendarService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if sErr := httpServer.Shutdown(shutdownCtx); sErr != nil {
		logger.Warn("http shutdown", "err", sErr)
	}
	grpcServer.GracefulStop()

	return err
}

// runSweep досоздаёт занятия сразу при старте и затем раз в interval.
func runSweep(ctx context.Context, engine *scheduling.Engine, interval time.Duration, logger *log.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	logger = logger.With("component", "sweep")

	sweep := func() {
		res, err := engine.Expander.Sweep(ctx, time.Now())
		if err != nil {
			logger.Error("sweep failed", "err", err)
		}
		if res != nil {
			logger.Info("sweep done", "series", res.Series, "created", res.Created)
		}
	}

	sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
