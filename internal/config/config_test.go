package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, CatalogMemory, cfg.CatalogDriver)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.DonationDelay)
	assert.Equal(t, 3, cfg.DonationHistorySize)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CATALOG_DRIVER", CatalogSQLite)
	t.Setenv("SQLITE_PATH", "/tmp/awards.db")
	t.Setenv("DONATION_DELAY", "0s")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, CatalogSQLite, cfg.CatalogDriver)
	assert.Equal(t, "/tmp/awards.db", cfg.SQLitePath)
	assert.Zero(t, cfg.DonationDelay)
	assert.True(t, cfg.CookieSecure)
}

func TestParseRejectsBadDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")

	_, err := Parse()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		CatalogDriver:        CatalogMemory,
		SessionTTL:           time.Hour,
		SessionSweepInterval: time.Minute,
		DonationHistorySize:  3,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"postgres without url", func(c *Config) { c.CatalogDriver = CatalogPostgres }},
		{"unknown driver", func(c *Config) { c.CatalogDriver = "mysql" }},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }},
		{"zero sweep interval", func(c *Config) { c.SessionSweepInterval = 0 }},
		{"negative delay", func(c *Config) { c.DonationDelay = -time.Second }},
		{"empty history", func(c *Config) { c.DonationHistorySize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	withURL := valid
	withURL.CatalogDriver = CatalogPostgres
	withURL.DatabaseURL = "postgres://localhost/awards"
	assert.NoError(t, withURL.Validate())
}
