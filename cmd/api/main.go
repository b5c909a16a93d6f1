// Package main is the entry point for the TripFlow API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/tripflow/backend/internal/config"
	"github.com/tripflow/backend/internal/handler"
	"github.com/tripflow/backend/internal/itinerary"
	"github.com/tripflow/backend/internal/middleware"
	"github.com/tripflow/backend/internal/storage"
	"github.com/tripflow/backend/internal/store"
	"github.com/tripflow/backend/migrations"
)

// maxRequestBody caps incoming request bodies at 1 MiB. Trip payloads are
// small JSON documents; anything larger is either a bug or abuse.
const maxRequestBody = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is optional and only used for local development; real deployments
	// set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	st, cleanup, err := openStorage(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage backend", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer cleanup()
	slog.Info("storage backend ready", "driver", cfg.StorageDriver)

	// --- Stores -----------------------------------------------------------
	// Both stores hydrate their state from storage once at startup; requests
	// then operate on the in-memory state and write back on every mutation.
	trips := store.NewTripStore(st, itinerary.New(), logger)
	prefs := store.NewPreferenceStore(st, logger)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelLoad()
	if err := trips.Load(loadCtx); err != nil {
		slog.Error("failed to load trips", "error", err)
		os.Exit(1)
	}
	if err := prefs.Load(loadCtx); err != nil {
		slog.Error("failed to load preferences", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID generates a unique trace ID per request;
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind
	// a proxy); SlogLogger writes one structured JSON log line per request;
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	// CORS, body-size and rate limits run after logging so rejections are
	// still visible in the logs.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))
	r.Use(httprate.LimitByIP(100, time.Minute))

	r.Mount("/", handler.NewServer(trips, prefs, st).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
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

// openStorage constructs the storage backend selected by the configuration.
// The returned cleanup closes whatever connections the backend holds; it is
// never nil.
func openStorage(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return storage.NewMemory(), func() {}, nil

	case config.DriverRedis:
		rs, err := storage.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { _ = rs.Close() }, nil

	case config.DriverPostgres:
		// Schema first: goose drives migrations over a database/sql
		// connection, then the pgx pool serves the actual traffic.
		if err := migrateUp(ctx, cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return storage.NewPostgres(pool), pool.Close, nil

	case config.DriverMongo:
		ms, err := storage.ConnectMongo(ctx, cfg.MongoURL)
		if err != nil {
			return nil, nil, err
		}
		return ms, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = ms.Close(closeCtx)
		}, nil
	}
	// config.Load validated the driver already.
	return nil, nil, errors.New("unknown storage driver " + cfg.StorageDriver)
}

// migrateUp applies all pending migrations from the embedded filesystem.
func migrateUp(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return err
	}
	return nil
}
