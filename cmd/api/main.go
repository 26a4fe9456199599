package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"herd-analytics/internal/domain/analytics"
	"herd-analytics/internal/platform/config"
	"herd-analytics/internal/platform/logger"
	"herd-analytics/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tables, err := analytics.LoadConfig(cfg.HeuristicsFile)
	if err != nil {
		return err
	}
	mode, err := analytics.ParseMode(cfg.DefaultMode)
	if err != nil {
		return err
	}

	repo, closeRepo, err := router.OpenHerdRepo(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.NewRouter(router.Options{
			Logger:      log,
			Herd:        repo,
			Analytics:   &tables,
			DefaultMode: mode,
		}),
		ReadTimeout: 5 * time.Second,
		// la pasada espera a las tres consultas upstream
		WriteTimeout: cfg.UpstreamTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
