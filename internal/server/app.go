// Package server wires configuration, storage, services and the HTTP and
// gRPC front ends into one runnable application.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/dbx"
	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"github.com/dmitrijs2005/scriptoria/internal/server/config"
	"github.com/dmitrijs2005/scriptoria/internal/server/export"
	"github.com/dmitrijs2005/scriptoria/internal/server/generator"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/scriptoria/internal/server/services"
	"github.com/dmitrijs2005/scriptoria/internal/server/web"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/scriptoria/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	users       *services.UserService
	generations *services.GenerationService
	history     *services.HistoryService
	exports     *services.ExportService
}

// connectAttempts bounds how long startup waits for the database.
const connectAttempts = 5

func openDB(ctx context.Context, dsn string, logger logging.Logger) (*sql.DB, dbx.Dialect, error) {
	var (
		db      *sql.DB
		dialect dbx.Dialect
	)

	backoff := retry.WithMaxRetries(connectAttempts, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		db, dialect, err = dbx.Open(ctx, dsn)
		if err != nil {
			logger.Warn(ctx, "database not ready", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	return db, dialect, err
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, os.Stdout)
	if err != nil {
		return nil, err
	}

	db, dialect, err := openDB(ctx, c.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewSQLRepositoryManager(dialect)
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	var gen generator.Generator = generator.Unconfigured{}
	if c.GeminiAPIKey != "" {
		g, err := generator.NewGenAI(ctx, c.GeminiAPIKey, c.GeminiModel)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("generation client: %w", err)
		}
		gen = g
	} else {
		logger.Warn(ctx, "no generation API key configured, generation requests will fail")
	}

	var archive export.Archive
	if c.S3Enabled() {
		a, err := export.NewS3Archive(ctx, export.S3Config{
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("export archive: %w", err)
		}
		archive = a
	}

	users := services.NewUserService(db, rm, c, logger)
	history := services.NewHistoryService(db, rm, logger)
	generations := services.NewGenerationService(gen, history, c.GenerationTimeout, logger)
	exports := services.NewExportService(history, archive, logger)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		users:       users,
		generations: generations,
		history:     history,
		exports:     exports,
	}, nil
}

// Run serves the web UI and the gRPC API until ctx is cancelled, a
// termination signal arrives or either server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	webServer, err := web.NewServer(app.config.HTTPAddr, app.logger, app.users, app.generations, app.history, app.exports)
	if err != nil {
		return err
	}
	grpcServer := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.users, app.generations, app.history, app.exports)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return webServer.Run(ctx) })
	g.Go(func() error { return grpcServer.Run(ctx) })

	err = g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}

func (app *App) Close() error {
	return app.db.Close()
}
