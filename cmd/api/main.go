package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/chromacraft/chromacraft/config"
	"github.com/chromacraft/chromacraft/internal/app"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.NewLogger()
		fallback.WithField("error", err.Error()).Fatal("Failed to load configuration")
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)

	if err := run(cfg, appLogger); err != nil {
		appLogger.WithField("error", err.Error()).Fatal("Server exited with error")
	}
}

func run(cfg *config.Config, appLogger logger.Logger) error {
	appInstance := app.NewApp(cfg, app.WithLogger(appLogger))

	if err := appInstance.Initialize(); err != nil {
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)
	go func() {
		serverError <- appInstance.Start()
	}()

	select {
	case err := <-serverError:
		return err
	case sig := <-shutdown:
		appLogger.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return appInstance.Shutdown(ctx)
}
