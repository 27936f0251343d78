package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/stpnv0/SlotMatcher/internal/calendarfeed"
	"github.com/stpnv0/SlotMatcher/internal/config"
	"github.com/stpnv0/SlotMatcher/internal/handler"
	"github.com/stpnv0/SlotMatcher/internal/matching"
	"github.com/stpnv0/SlotMatcher/internal/middleware"
	"github.com/stpnv0/SlotMatcher/internal/navigation"
	"github.com/stpnv0/SlotMatcher/internal/router"
	"github.com/stpnv0/SlotMatcher/internal/seed"
	"github.com/stpnv0/SlotMatcher/internal/service"
	"github.com/stpnv0/SlotMatcher/internal/service/ports"
	"github.com/stpnv0/SlotMatcher/internal/simulation"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg          *config.Config
	log          logger.Logger
	httpServer   *http.Server
	watchService *service.WatchService
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"SlotMatcher",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	m := a.cfg.Matching
	client, err := matching.New(
		matching.Endpoints{
			BaseURL:    m.BaseURL,
			SlotList:   m.SlotListURL,
			SlotDetail: m.SlotDetailURL,
			Activities: m.ActivitiesURL,
			Register:   m.RegisterURL,
		},
		matching.WithTimeout(m.Timeout),
		matching.WithDebug(m.Debug),
	)
	if err != nil {
		return fmt.Errorf("init matching client: %w", err)
	}

	store, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed dataset: %w", err)
	}

	slotService := service.NewSlotService(client, store, a.log)

	var source ports.SlotSource = slotService
	if a.cfg.Simulation.Enabled {
		source = a.newSimulation(slotService, slotService)
	}

	a.watchService = service.NewWatchService(
		source,
		a.cfg.Lifecycle.FoundDwell,
		a.cfg.Lifecycle.RefreshInterval,
		a.log,
		service.WithIdleTTL(a.cfg.Lifecycle.WatchIdleTTL),
	)

	navigator := navigation.NewNavigator(a.signOut)

	h := handler.NewHandler(slotService, a.watchService, calendarfeed.NewEncoder(), navigator)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) newSimulation(base ports.SlotSource, venues *service.SlotService) *simulation.Driver {
	opts := []simulation.Option{
		simulation.WithJoinProbability(a.cfg.Simulation.JoinProbability),
		simulation.WithVenues(venues),
	}
	if a.cfg.Simulation.Seed != 0 {
		opts = append(opts, simulation.WithRand(rand.New(rand.NewSource(a.cfg.Simulation.Seed))))
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "simulation enabled",
		logger.Any("join_probability", a.cfg.Simulation.JoinProbability),
	)

	return simulation.NewDriver(base, opts...)
}

// signOut is the session capability handed to navigation. Sessions live in the
// client, so the server side only records the event.
func (a *App) signOut(ctx context.Context) error {
	a.log.LogAttrs(ctx, logger.InfoLevel, "session signed out")
	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("matching_base_url", a.cfg.Matching.BaseURL),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.watchService.Close()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.watchService.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "watches stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
