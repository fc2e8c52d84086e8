package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/userkit/internal/auth"
	"github.com/ferdiebergado/userkit/internal/config"
	"github.com/ferdiebergado/userkit/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	providers       *Providers
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.providers.Router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	userRepo := user.NewRepository(a.db)
	userService := user.NewService(userRepo, a.providers.AvatarStore, a.providers.Resizer, a.config.Avatar)
	userHandler := user.NewHandler(userService, a.config.Avatar)

	authRepo := auth.NewRepository(a.db)
	authProviders := &auth.Providers{
		Hasher: a.providers.Hasher,
		Signer: a.providers.Signer,
		Mailer: a.providers.Mailer,
	}
	authService := auth.NewService(authRepo, userService, authProviders, a.config)
	authHandler := auth.NewHandler(authService)

	maxBodyBytes := a.config.Server.MaxBodyBytes
	mountAuthRoutes(a.providers.Router, authHandler, a.providers.Validator, maxBodyBytes)
	mountUserRoutes(a.providers.Router, userHandler, a.providers.Signer, userService)
	mountStaticRoutes(a.providers.Router, a.config.Avatar)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, dbConn *sql.DB, providers *Providers, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: providers.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		db:              dbConn,
		providers:       providers,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
