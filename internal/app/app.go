// Package app assembles the application: configuration, logging, storage,
// the matching provider client, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/novahq/nova-backend/internal/adapter/imagestore"
	"github.com/novahq/nova-backend/internal/adapter/postgres"
	contactrepo "github.com/novahq/nova-backend/internal/adapter/postgres/contact"
	itemrepo "github.com/novahq/nova-backend/internal/adapter/postgres/item"
	matchrepo "github.com/novahq/nova-backend/internal/adapter/postgres/match"
	notificationrepo "github.com/novahq/nova-backend/internal/adapter/postgres/notification"
	userrepo "github.com/novahq/nova-backend/internal/adapter/postgres/user"
	"github.com/novahq/nova-backend/internal/adapter/provider/matcher"
	jwtauth "github.com/novahq/nova-backend/internal/auth"
	"github.com/novahq/nova-backend/internal/config"
	"github.com/novahq/nova-backend/internal/service/auth"
	"github.com/novahq/nova-backend/internal/service/contact"
	"github.com/novahq/nova-backend/internal/service/item"
	"github.com/novahq/nova-backend/internal/service/matching"
	"github.com/novahq/nova-backend/internal/service/notification"
	"github.com/novahq/nova-backend/internal/transport/middleware"
	"github.com/novahq/nova-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires every
// layer together, and serves HTTP until the context is cancelled or a
// termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	images, err := imagestore.New(cfg.Images.Dir)
	if err != nil {
		return fmt.Errorf("init image store: %w", err)
	}

	// Repositories.
	users := userrepo.New(pool)
	items := itemrepo.New(pool)
	matches := matchrepo.New(pool)
	notifications := notificationrepo.New(pool)
	contacts := contactrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Provider client.
	provider := matcher.NewClient(cfg.Matcher, images, logger)

	// Services.
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authSvc := auth.NewService(logger, users, jwtManager)
	notificationSvc := notification.NewService(logger, notifications)
	matchingSvc := matching.NewService(logger, items, matches, provider, notificationSvc, tx)
	itemSvc := item.NewService(logger, items, images, matchingSvc, cfg.Images.MaxDimension)
	contactSvc := contact.NewService(logger, contacts, items, notificationSvc)

	// HTTP surface.
	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Auth:         rest.NewAuthHandler(authSvc, logger),
		Item:         rest.NewItemHandler(itemSvc, cfg.Images.MaxUploadMB, logger),
		Match:        rest.NewMatchHandler(matchingSvc, logger),
		Notification: rest.NewNotificationHandler(notificationSvc, logger),
		Contact:      rest.NewContactHandler(contactSvc, logger),
		Image:        rest.NewImageHandler(images, logger),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authSvc),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
