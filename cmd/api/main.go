package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luxurydeals/catalog-console/internal/api"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
	"github.com/luxurydeals/catalog-console/internal/core/service"
	"github.com/luxurydeals/catalog-console/internal/infrastructure/catalog"
	"github.com/luxurydeals/catalog-console/internal/infrastructure/config"
	"github.com/luxurydeals/catalog-console/internal/infrastructure/store"
	"github.com/luxurydeals/catalog-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("store backend unavailable")
	}
	defer cleanup()
	log.Info().Str("backend", cfg.Store.Backend).Msg("key-value store ready")

	identity := service.NewIdentityService(kv, log)
	categories := service.NewCategoryService(kv, log)
	auth := service.NewAuthService(identity, kv, cfg.JWTSecret, 24*time.Hour, log)
	catalogSvc := service.NewCatalogService(catalog.NewHTTPSource(cfg.CatalogURL), log)

	if err := identity.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed accounts")
	}
	if err := categories.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed categories")
	}

	// Warm the catalog snapshot. A failed fetch is not fatal: the storefront
	// renders empty and the next query retries.
	if listings, err := catalogSvc.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("initial catalog fetch failed; will retry on first query")
	} else {
		log.Info().Int("listings", len(listings)).Msg("catalog loaded")
		if err := categories.RefreshCounts(ctx, listings); err != nil {
			log.Warn().Err(err).Msg("refresh category counts")
		}
	}

	e := api.NewRouter(api.RouterConfig{
		Auth:         auth,
		Catalog:      catalogSvc,
		Categories:   categories,
		Identity:     identity,
		Store:        kv,
		StoreBackend: cfg.Store.Backend,
		JWTSecret:    cfg.JWTSecret,
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// buildStore selects the key-value backend from configuration and returns it
// with a cleanup function for whatever connection it holds.
func buildStore(ctx context.Context, cfg *config.Config) (ports.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := store.ConnectRedis(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(client), func() { _ = client.Close() }, nil

	case config.BackendMongo:
		client, db, err := store.ConnectMongo(ctx, store.MongoConfig{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return store.NewMongoStore(db), cleanup, nil

	default:
		fs, err := store.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
