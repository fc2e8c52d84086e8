package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/userkit/internal/config"
	"github.com/ferdiebergado/userkit/internal/middleware"
	"github.com/ferdiebergado/userkit/internal/pkg/logging"
	"github.com/ferdiebergado/userkit/internal/pkg/message"
	"github.com/ferdiebergado/userkit/internal/platform/db"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	appEnv := os.Getenv("ENV")
	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}
	logging.SetupLogger(appEnv, os.Getenv("LOG_LEVEL"), os.Stdout)

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	dbConn, err := db.NewConnection(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(dbConn); err != nil {
		return err
	}

	const envKey = "KEY"
	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	providers, err := setupProviders(cfg, securityKey)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
	}

	apiServer := New(cfg, dbConn, providers, middlewares)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- apiServer.Start(signalCtx)
	}()

	select {
	case <-signalCtx.Done():
		slog.Info("Shutdown signal received.")
		stop()
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	}

	return apiServer.Shutdown()
}
