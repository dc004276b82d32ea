// Package server initializes and runs the chat server application.
// It selects storage backends, wires the access guard, subscription
// registry and services together, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mizukilab/gochat/internal/logging"
	"github.com/mizukilab/gochat/internal/server/access"
	"github.com/mizukilab/gochat/internal/server/config"
	"github.com/mizukilab/gochat/internal/server/repositories/repomanager"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/services"
	"github.com/mizukilab/gochat/internal/server/subscriptions"

	gs "github.com/mizukilab/gochat/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          repomanager.RepositoryManager
	authService    *services.AuthService
	channelService *services.ChannelService
	messageService *services.MessageService
	userService    *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var repos repomanager.RepositoryManager
	if c.DatabaseDSN != "" {
		pm, err := repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = pm
	} else {
		repos = repomanager.NewMemoryRepositoryManager()
	}

	sessionRepo := repos.Sessions()
	if c.RedisAddr != "" {
		rr, err := sessions.NewRedisRepository(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		sessionRepo = rr
	}

	guard := access.NewGuard(sessionRepo, repos.Users(), repos.Channels())
	registry := subscriptions.NewRegistry(logger)

	as := services.NewAuthService(guard, repos.Users(), sessionRepo)
	cs := services.NewChannelService(guard, repos.Channels())
	ms := services.NewMessageService(guard, repos.Messages(), registry, logger)
	us := services.NewUserService(guard, repos.Users(), sessionRepo)

	return &App{
		config:         c,
		logger:         logger,
		repos:          repos,
		authService:    as,
		channelService: cs,
		messageService: ms,
		userService:    us,
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.channelService, app.messageService, app.userService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping metrics server...")
		_ = srv.Shutdown(context.Background())
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if app.config.SeedDemoData {
		if err := app.seedDemoData(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

}
