// Package main is the entry point for the flight engine API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/marecop/yellowair-sub000/internal/airport"
	"github.com/marecop/yellowair-sub000/internal/cache"
	"github.com/marecop/yellowair-sub000/internal/config"
	"github.com/marecop/yellowair-sub000/internal/engine"
	"github.com/marecop/yellowair-sub000/internal/handler"
	"github.com/marecop/yellowair-sub000/internal/middleware"
	"github.com/marecop/yellowair-sub000/internal/repo"
	"github.com/marecop/yellowair-sub000/internal/service"
	"github.com/marecop/yellowair-sub000/migrations"
	"github.com/marecop/yellowair-sub000/openapi"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// --- Airport catalog --------------------------------------------------
	catalog, store, closeDB, err := loadCatalog(context.Background(), cfg, logger)
	if err != nil {
		slog.Error("failed to load airport catalog", "error", err)
		os.Exit(1)
	}
	defer closeDB()
	slog.Info("airport catalog ready", "airports", catalog.Len())

	// --- Services ---------------------------------------------------------
	svc := newServices(catalog, store, cfg, logger)

	// --- Router -----------------------------------------------------------
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r := handler.NewRouter(
		handler.NewServer(svc.search, svc.schedule, svc.airports, logger),
		handler.RouterOptions{
			CORSOrigins:  cfg.CORSOrigins,
			MaxBodyBytes: cfg.MaxBodyBytes,
			RateLimit:    limiter.Handler,
			OpenAPI:      openapi.Document,
		},
	)

	// --- HTTP Server ------------------------------------------------------
	// Exports of a full week can take a few seconds, hence the write timeout.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "cache_capacity", cfg.CacheCapacity, "seed", cfg.EngineSeed)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

type services struct {
	search   *service.SearchService
	schedule *service.ScheduleService
	airports *service.AirportService
}

// newServices wires the engine into the API services. User searches share
// the result cache; schedule exports run uncached so a week-long export
// cannot evict them. A nil store serves /airports from the catalog.
func newServices(catalog *airport.Catalog, store service.AirportReader, cfg config.Config, logger *slog.Logger) services {
	synth := engine.NewSynthesizer(airport.NewResolver(catalog))
	if store == nil {
		store = service.NewCatalogReader(catalog)
	}
	exports := service.NewSearchService(synth, nil, cfg.EngineSeed, logger)
	return services{
		search:   service.NewSearchService(synth, cache.NewFlightCache(cfg.CacheCapacity), cfg.EngineSeed, logger),
		schedule: service.NewScheduleService(exports, catalog, logger),
		airports: service.NewAirportService(store),
	}
}

// loadCatalog returns the embedded airport catalog, or the Postgres one when
// DATABASE_URL is set. In the latter case the repo is returned as the
// airport store. The returned func releases the database pool.
func loadCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) (*airport.Catalog, service.AirportReader, func(), error) {
	embedded, err := airport.Default()
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, using embedded airport catalog")
		return embedded, nil, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	// goose runs on database/sql; borrow a handle backed by the same pool.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("create goose provider: %w", err)
	}
	applied, err := provider.Up(ctx)
	if err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations applied", "count", len(applied))

	airports := repo.NewAirportRepo(pool)
	rows, err := service.LoadAirports(ctx, airports, embedded.All(), logger)
	if err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	return airport.NewCatalog(rows), airports, pool.Close, nil
}
