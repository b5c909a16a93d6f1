// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// StorageDriver selects the persistence backend. Defaults to "memory".
	// Valid values: memory, redis, postgres, mongo.
	StorageDriver string

	// RedisURL is the Redis connection string. Required when StorageDriver
	// is "redis".
	RedisURL string

	// DatabaseURL is the Postgres connection string. Required when
	// StorageDriver is "postgres".
	DatabaseURL string

	// MongoURL is the MongoDB connection string. Required when
	// StorageDriver is "mongo".
	MongoURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:8081"] (Expo dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error for an unknown storage driver or when the selected
// driver's connection URL is not set.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverMemory),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081")),
	}

	switch cfg.StorageDriver {
	case DriverMemory:
	case DriverRedis:
		cfg.RedisURL = os.Getenv("REDIS_URL")
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("STORAGE_DRIVER=redis requires REDIS_URL to be set")
		}
	case DriverPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("STORAGE_DRIVER=postgres requires DATABASE_URL to be set")
		}
	case DriverMongo:
		cfg.MongoURL = os.Getenv("MONGO_URL")
		if cfg.MongoURL == "" {
			return Config{}, fmt.Errorf("STORAGE_DRIVER=mongo requires MONGO_URL to be set")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q (valid: memory, redis, postgres, mongo)", cfg.StorageDriver)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
