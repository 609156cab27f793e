package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bankist/internal/config"
	"bankist/internal/handlers"
	"bankist/internal/middleware"
	"bankist/internal/models"
	"bankist/internal/repositories"
	"bankist/internal/scheduler"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Log.Level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	models.InterestFloor = cfg.Ledger.InterestFloor

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)
	audit := services.NewAuditLogger(logger)
	pins := services.NewPinService(cfg.Security.PinHashCost)

	accountRepo := repositories.NewAccountRepository()
	if cfg.Ledger.SeedAccounts {
		if err := repositories.Seed(accountRepo, pins, repositories.DefaultSeedAccounts()); err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
		logger.Info("seeded demo accounts", slog.Int("count", accountRepo.Count()))
	}
	loanRepo := repositories.NewLoanRepository()

	loop := scheduler.NewLoop(logger, cfg.Session.EventBuffer)
	loopErr := make(chan error, 1)
	go func() {
		loopErr <- loop.Run(ctx)
	}()

	transfers := services.NewTransferService(accountRepo, loop, audit, metrics, logger)
	loans := services.NewLoanService(accountRepo, loanRepo, loop, audit, metrics, services.LoanPolicy{
		GrantDelay:      cfg.Loan.GrantDelay,
		MinDepositRatio: cfg.Loan.MinDepositRatio,
	}, logger)

	formatter := handlers.NewFormatter(loop)
	hub := handlers.NewEventHub(formatter, cfg.Server.CORSAllowOrigins, cfg.Session.EventBuffer, logger)
	session := services.NewSession(
		accountRepo,
		transfers,
		loans,
		pins,
		loop,
		hub,
		audit,
		metrics,
		services.SessionConfig{
			IdleSeconds:  cfg.Session.IdleSeconds,
			TickInterval: cfg.Session.TickInterval,
		},
		logger,
	)

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2)
	go limiter.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics, logger)
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	handlers.RegisterRoutes(e, handlers.Handlers{
		Session: handlers.NewSessionHandler(session, formatter, logger),
		Account: handlers.NewAccountHandler(session, logger),
		Events:  hub,
		Health:  handlers.NewHealthCheckHandler(accountRepo, session, loop),
	}, limiter.Middleware())
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("address", cfg.Server.Address()),
			slog.String("environment", cfg.Server.Environment),
		)
		serveErr <- e.Start(cfg.Server.Address())
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case err := <-loopErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("scheduler loop failed: %w", err)
		}
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	session.Shutdown(shutdownCtx)
	hub.Close()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
