// Package server initializes and runs the application: it opens the store,
// applies migrations, wires the services and runs the REST and gRPC health
// servers until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/starwars/internal/dbx"
	"github.com/dmitrijs2005/starwars/internal/logging"
	"github.com/dmitrijs2005/starwars/internal/server/config"
	"github.com/dmitrijs2005/starwars/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/starwars/internal/server/rest"
	"github.com/dmitrijs2005/starwars/internal/server/services"

	gs "github.com/dmitrijs2005/starwars/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	restServer *rest.Server
	grpcServer *gs.HealthServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, dialect, err := dbx.Open(ctx, c.DatabaseDSN, c.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewSQLRepositoryManager(dialect)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repository manager init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	logger.Info(ctx, "store ready", "dialect", string(dialect))

	svc := rest.Services{
		Users:     services.NewUserService(db, rm, c),
		People:    services.NewPeopleService(db, rm),
		Planets:   services.NewPlanetService(db, rm),
		Favorites: services.NewFavoriteService(db, rm),
	}

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		restServer: rest.NewServer(c, logger, svc),
		grpcServer: gs.NewHealthServer(c.EndpointAddrGRPC, logger, db),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// startServer runs one server and cancels the whole app if it fails.
func (app *App) startServer(ctx context.Context, cancelFunc context.CancelFunc, name string, run func(context.Context) error) {
	if err := run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped with error", "server", name, "error", err)
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a server fails.
// The store is closed before returning.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startServer(ctx, cancelFunc, "rest", app.restServer.Run)
	}()
	go func() {
		defer wg.Done()
		app.startServer(ctx, cancelFunc, "grpc", app.grpcServer.Run)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing store", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
