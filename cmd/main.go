package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/Leganyst/session-scheduler/internal/config"
	"github.com/Leganyst/session-scheduler/internal/db"
	"github.com/Leganyst/session-scheduler/internal/logging"
	"github.com/Leganyst/session-scheduler/internal/model"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Path to the YAML config file." env:"CONFIG_PATH" type:"path"`

	Serve   ServeCmd   `cmd:"" help:"Run gRPC and HTTP servers with the background sweep." default:"1"`
	Migrate MigrateCmd `cmd:"" help:"Apply database migrations."`
	Sweep   SweepCmd   `cmd:"" help:"Materialize missing instances for all active series once."`
}

// App: общие зависимости команд.
type App struct {
	Config *config.Config
	Logger *log.Logger
}

// openDB подключается к БД и накатывает миграции.
func (a *App) openDB() (*gorm.DB, error) {
	gormDB, err := db.NewGormDB(&a.Config.Database)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return gormDB, nil
}

func closeDB(gormDB *gorm.DB) {
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("scheduler"),
		kong.Description("Session scheduling and enrollment service"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Run(&App{Config: cfg, Logger: logger}); err != nil {
		logger.Error("command failed", "command", ctx.Command(), "err", err)
		os.Exit(1)
	}
}
