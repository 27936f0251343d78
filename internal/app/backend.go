package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/SlotMatcher/internal/backend"
	"github.com/stpnv0/SlotMatcher/internal/config"
	"github.com/stpnv0/SlotMatcher/internal/middleware"
	"github.com/stpnv0/SlotMatcher/internal/repository"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

// Backend runs the reference matching service.
type Backend struct {
	cfg        *config.BackendConfig
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
}

func NewBackend(cfg *config.BackendConfig) (*Backend, error) {
	b := &Backend{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"MatchingService",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	b.log = log

	if err = b.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = b.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	b.initServices()

	return b, nil
}

func (b *Backend) initDB() error {
	db, err := dbpg.New(
		b.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: b.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: b.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	b.db = db
	b.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", b.cfg.Postgres.Host),
		logger.Int("port", b.cfg.Postgres.Port),
		logger.String("database", b.cfg.Postgres.Database),
	)

	return nil
}

func (b *Backend) initServices() {
	svc := backend.NewService(
		repository.NewCalendarRepo(b.db),
		repository.NewHobbyRepo(b.db),
		repository.NewVenueRepo(b.db),
		backend.Capacity{
			DefaultMin: b.cfg.Pool.DefaultMinCapacity,
			DefaultMax: b.cfg.Pool.DefaultMaxCapacity,
		},
		b.log,
	)

	r := backend.InitRouter(
		b.cfg.Gin.Mode,
		backend.NewHandler(svc),
		middleware.RequestID(),
		middleware.RequestLogger(b.log),
		middleware.Recovery(b.log),
	)

	b.httpServer = &http.Server{
		Addr:         b.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
		IdleTimeout:  b.cfg.Server.IdleTimeout,
	}
}

func (b *Backend) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		b.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", b.httpServer.Addr),
		)
		if err := b.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		b.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return b.shutdown()
}

func (b *Backend) shutdown() error {
	b.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		b.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := b.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	b.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := b.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	b.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	return nil
}

func (b *Backend) runMigrations() error {
	db, err := sql.Open("postgres", b.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	b.log.Info("migrations applied successfully")
	return nil
}
