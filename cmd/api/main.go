package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	appdir "userdir/internal/app/directory"
	"userdir/internal/clients/reqres"
	"userdir/internal/config"
	dirhandler "userdir/internal/http/handlers/directory"
	"userdir/internal/http/handlers/health"
	"userdir/internal/http/handlers/page"
	"userdir/internal/http/router"
	"userdir/internal/logging"
	"userdir/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
	)
	defer logging.Sync(logger)

	logger.Info("starting service",
		"env", cfg.Environment,
		"source", cfg.Directory.SourceURL+cfg.Directory.UsersPath,
		"page_size", cfg.Directory.PageSize,
	)

	// 3) Initialize telemetry (OpenTelemetry)
	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		logger.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	// 4) Remote user source
	source, err := reqres.New(reqres.Config{
		BaseURL:   cfg.Directory.SourceURL,
		UsersPath: cfg.Directory.UsersPath,
		APIKey:    cfg.Directory.APIKey,
		Timeout:   cfg.Directory.FetchTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to init user source", "error", err)
		os.Exit(1)
	}

	// 5) View registry
	views := appdir.NewRegistry(source, cfg.Directory.PageSize, logger,
		appdir.WithIdleTTL(cfg.Directory.ViewIdleTTL),
	)
	defer views.Close()

	// 6) HTTP handlers
	healthHandler := health.NewHandler(views)
	directoryHandler := dirhandler.NewHandler(views, logger)
	pageHandler := page.NewHandler(views, logger)

	// 7) HTTP router
	httpRouter := router.NewRouter(
		logger,
		healthHandler,
		directoryHandler,
		pageHandler,
	)

	// 8) HTTP server
	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: otelhttp.NewHandler(
			httpRouter,
			cfg.Observability.ServiceName, // span name prefix
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 9) Start concurrent processes (HTTP server, idle view sweeper)
	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting",
			"host", cfg.HTTP.Host,
			"port", cfg.HTTP.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go views.RunSweeper(ctx, cfg.Directory.SweepInterval)

	// 10) Wait for shutdown signal or an error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		logger.Error("fatal error from http server", "error", err)
		stop()
	}

	// 11) Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}

	logger.Info("service stopped")
}
