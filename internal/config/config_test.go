package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetops-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/fleetops")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"WAITING", "COMPLETED", "UNLOADED", "CANCELED"}, cfg.Trips.ValidStatuses)
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoad_ParsesLists(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/fleetops")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("TRIPS_VALID_STATUSES", " WAITING , COMPLETED ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://fleet.example.com")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"WAITING", "COMPLETED"}, cfg.Trips.ValidStatuses)
	assert.Equal(t, []string{"https://fleet.example.com"}, cfg.CORS.AllowedOrigins)
}
