package main

import (
	"context"
	"time"

	"github.com/Leganyst/session-scheduler/internal/calendar"
	"github.com/Leganyst/session-scheduler/internal/repository"
	"github.com/Leganyst/session-scheduler/internal/scheduling"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(app *App) error {
	gormDB, err := app.openDB()
	if err != nil {
		return err
	}
	defer closeDB(gormDB)

	app.Logger.Info("migrations applied", "driver", app.Config.Database.Driver)
	return nil
}

type SweepCmd struct {
	AsOf string `help:"Materialize from this date (YYYY-MM-DD); defaults to today." name:"as-of"`
}

func (c *SweepCmd) Run(app *App) error {
	asOf := time.Now()
	if c.AsOf != "" {
		d, err := calendar.ParseDate(c.AsOf)
		if err != nil {
			return err
		}
		asOf = d
	}

	gormDB, err := app.openDB()
	if err != nil {
		return err
	}
	defer closeDB(gormDB)

	engine := scheduling.NewEngine(scheduling.Options{
		Store:  repository.NewStore(gormDB),
		Logger: app.Logger,
	})
	res, err := engine.Expander.Sweep(context.Background(), asOf)
	if res != nil {
		app.Logger.Info("sweep finished", "series", res.Series, "created", res.Created)
	}
	return err
}
