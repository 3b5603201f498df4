package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Store backend selectors.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction              bool
	ProdOrigins               string
	HTTPAddr                  string
	StoreBackend              string
	DBDSN                     string
	ShareBaseURL              string
	ExportSigningSecret       string
	ExportLinkTTL             time.Duration
	BcryptCost                int
	AdjustmentRefreshInterval time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Store backend: the in-memory mock stores are the default; postgres
	// backs the catalog and share store with real persistence.
	cfg.StoreBackend = getEnv("STORE_BACKEND", BackendMemory)
	if cfg.StoreBackend != BackendMemory && cfg.StoreBackend != BackendPostgres {
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be %q or %q", cfg.StoreBackend, BackendMemory, BackendPostgres)
	}

	// Database DSN is required only for the postgres backend
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.StoreBackend == BackendPostgres && cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required when STORE_BACKEND is %q", BackendPostgres)
	}

	// Base URL used to build share links (default: local dev server)
	cfg.ShareBaseURL = getEnv("SHARE_BASE_URL", "http://localhost:8080")

	// Secret for signing export download links. Required in production so
	// links cannot be forged across deployments.
	cfg.ExportSigningSecret = getEnv("EXPORT_SIGNING_SECRET", "")
	if cfg.ExportSigningSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("EXPORT_SIGNING_SECRET is required in production")
		}
		cfg.ExportSigningSecret = "dev-export-signing-secret"
	}

	// Export download link TTL, parse as time.Duration (e.g. "15m", "1h").
	exportTTLStr := getEnv("EXPORT_LINK_TTL", "1h")
	exportTTL, err := time.ParseDuration(exportTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_LINK_TTL: %w", err)
	}
	cfg.ExportLinkTTL = exportTTL

	// Bcrypt cost for share password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Interval between real-time adjustment refresh cycles (default: 5m)
	refreshStr := getEnv("ADJUSTMENT_REFRESH_INTERVAL", "5m")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ADJUSTMENT_REFRESH_INTERVAL: %w", err)
	}
	cfg.AdjustmentRefreshInterval = refresh

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
