package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gradebook/internal/config"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/phrazzld/gradebook/internal/platform/memory"
	"github.com/phrazzld/gradebook/internal/service"
	"github.com/phrazzld/gradebook/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	studentStore store.StudentStore

	statsEngine    stats.Service
	studentService service.StudentService
	statsService   service.StatsService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.studentStore = memory.NewStudentStore(logger)

	threshold := cfg.Stats.AttendanceThreshold
	params, err := stats.NewParams(stats.ParamsConfig{
		AttendanceThreshold: &threshold,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create statistics params: %w", err)
	}

	app.statsEngine, err = stats.NewServiceWithParams(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create statistics engine: %w", err)
	}

	app.studentService, err = service.NewStudentService(app.studentStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create student service: %w", err)
	}

	app.statsService, err = service.NewStatsService(app.studentStore, app.statsEngine, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
