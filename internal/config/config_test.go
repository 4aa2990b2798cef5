package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, time.Hour, cfg.JWTAccessTokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 1.0, cfg.MockLatencyScale)
	assert.Equal(t, 0.18, cfg.TaxRate)
	assert.Equal(t, 120, cfg.RateLimitPerMin)
	assert.Equal(t, 30*time.Minute, cfg.WizardTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://localhost/bulkstay")
	t.Setenv("MOCK_LATENCY_SCALE", "0")
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "15m")
	t.Setenv("TAX_RATE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "postgres://localhost/bulkstay", cfg.DBDSN)
	assert.Equal(t, 0.0, cfg.MockLatencyScale)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessTokenTTL)
	assert.Equal(t, 0.0, cfg.TaxRate)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"postgres without dsn", map[string]string{"STORE_DRIVER": "postgres", "DB_DSN": ""}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"bad cost", map[string]string{"BCRYPT_COST": "high"}},
		{"bad ttl", map[string]string{"JWT_ACCESS_TOKEN_TTL": "soon"}},
		{"negative latency", map[string]string{"MOCK_LATENCY_SCALE": "-1"}},
		{"bad tax", map[string]string{"TAX_RATE": "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
