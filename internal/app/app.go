package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	issuerepo "github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres/issue"
	"github.com/heartmarshall/issuetracker-backend/internal/config"
	issuesvc "github.com/heartmarshall/issuetracker-backend/internal/service/issue"
	"github.com/heartmarshall/issuetracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/issuetracker-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, wires the issue service behind the
// REST transport, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
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
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	repo := issuerepo.New(pool)
	svc := issuesvc.NewService(logger, cfg.Issues, repo)

	issues := rest.NewIssueHandler(svc, logger)
	health := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("/live", health.Live)
	mux.HandleFunc("/ready", health.Ready)
	mux.HandleFunc("/health", health.Health)
	mux.Handle("/api/issues/", issues)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      middleware.Chain(mws...)(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("http server listening", slog.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
