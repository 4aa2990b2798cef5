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

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	StoreDriver       string
	DBDSN             string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int
	MockLatencyScale  float64
	UploadDir         string
	RateLimitPerMin   int
	TaxRate           float64
	WizardTTL         time.Duration
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

	// Store driver (default: memory). Postgres needs a DSN.
	cfg.StoreDriver = getEnv("STORE_DRIVER", DriverMemory)
	switch cfg.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		cfg.DBDSN = os.Getenv("DB_DSN")
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for the postgres store")
		}
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: want %s or %s", cfg.StoreDriver, DriverMemory, DriverPostgres)
	}

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	cfg.JWTAccessTokenTTL, err = getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Simulated backend latency multiplier for the memory store (0 disables).
	cfg.MockLatencyScale, err = getEnvAsFloat("MOCK_LATENCY_SCALE", 1)
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_LATENCY_SCALE: %w", err)
	}
	if cfg.MockLatencyScale < 0 {
		return nil, fmt.Errorf("MOCK_LATENCY_SCALE must not be negative")
	}

	// Listing photo directory (default: ./uploads)
	cfg.UploadDir = getEnv("UPLOAD_DIR", "./uploads")

	// Requests per minute per client IP (0 disables)
	cfg.RateLimitPerMin, err = getEnvAsInt("RATE_LIMIT_PER_MIN", 120)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MIN: %w", err)
	}

	// GST on package prices (default: 18%)
	cfg.TaxRate, err = getEnvAsFloat("TAX_RATE", 0.18)
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return nil, fmt.Errorf("TAX_RATE must be in [0, 1)")
	}

	// Idle booking wizards are dropped after this long.
	cfg.WizardTTL, err = getEnvAsDuration("WIZARD_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

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
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}
	return val, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return val, nil
}
