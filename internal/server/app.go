// Package server wires configuration, storage, services and transports
// into a runnable application.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/feedbackhub/internal/logging"
	"github.com/dmitrijs2005/feedbackhub/internal/server/config"
	"github.com/dmitrijs2005/feedbackhub/internal/server/health"
	"github.com/dmitrijs2005/feedbackhub/internal/server/httpapi"
	"github.com/dmitrijs2005/feedbackhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/feedbackhub/internal/server/services"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *httpapi.Server
	health *health.Server
}

// NewApp opens the database, applies migrations when enabled and builds
// both servers.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, os.Stdout)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if c.RunMigrations {
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		logger.Info(ctx, "Migrations applied")
	}

	return newApp(c, logger, db, rm), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) *App {
	identity := services.NewIdentityService(db, rm, c)
	guard := services.NewGuard(db, rm, c)
	feedback := services.NewFeedbackService(db, rm, guard)
	dashboard := services.NewDashboardService(db, rm)

	h := httpapi.NewHandler(logger, identity, guard, feedback, dashboard)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		http:   httpapi.NewServer(c.EndpointAddrHTTP, logger, h.Routes(c.RequestTimeout), c.ShutdownTimeout),
		health: health.NewServer(c.EndpointAddrHealth, logger),
	}
}

// Run serves until ctx is cancelled, SIGINT/SIGTERM arrives or one of the
// servers fails. The database is closed before returning.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.http.Run(gctx) })
	g.Go(func() error { return app.health.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		app.health.SetServing(false)
		return nil
	})

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close", "error", cerr)
	}
	if z, ok := app.logger.(*logging.ZapLogger); ok {
		_ = z.Sync()
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
