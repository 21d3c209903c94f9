package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/cinelog/cinelog-backend/internal/adapter/memory"
	jwtauth "github.com/cinelog/cinelog-backend/internal/auth"
	"github.com/cinelog/cinelog-backend/internal/config"
	"github.com/cinelog/cinelog-backend/internal/ingest"
	activitysvc "github.com/cinelog/cinelog-backend/internal/service/activity"
	authsvc "github.com/cinelog/cinelog-backend/internal/service/auth"
	catalogsvc "github.com/cinelog/cinelog-backend/internal/service/catalog"
	"github.com/cinelog/cinelog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, populates the in-memory repository from the configured CSV
// datasets, wires the services, and serves HTTP until the context is
// cancelled.
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

	repo := memory.New()
	loader := ingest.NewLoader(repo, logger, ingest.Paths{
		Movies:      cfg.Data.MoviesFile,
		Users:       cfg.Data.UsersFile,
		Reviews:     cfg.Data.ReviewsFile,
		Watchlists:  cfg.Data.WatchlistsFile,
		Simulations: cfg.Data.SimulationsFile,
	})
	if err := loader.Populate(); err != nil {
		return fmt.Errorf("populate repository: %w", err)
	}
	logger.Info("catalogue loaded",
		slog.Int("movies", len(repo.Movies())),
		slog.Int("users", len(repo.Users())),
		slog.Int("reviews", len(repo.Reviews())),
	)

	// The repository expects a single logical writer; every service shares
	// this lock.
	var mu sync.RWMutex
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, repo, jwtManager, &mu)
	catalogService := catalogsvc.NewService(logger, repo, &mu)
	activityService := activitysvc.NewService(logger, repo, &mu)

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Catalog:  rest.NewCatalogHandler(catalogService, logger),
		Activity: rest.NewActivityHandler(activityService, logger),
		Health:   rest.NewHealthHandler(catalogService, BuildVersion()),
	}, authService, cfg.CORS, logger)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("server stopped")
		return nil
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}
