package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.AppEnv)
	require.Contains(t, cfg.DatabaseURL, "postgres://")
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.WriteTimeout)
	require.Equal(t, 120*time.Second, cfg.IdleTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/todos")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("WRITE_TIMEOUT", "not-a-duration")

	cfg := Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres://app:secret@db:5432/todos", cfg.DatabaseURL)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
	// Unparseable values fall back to the default
	require.Equal(t, 10*time.Second, cfg.WriteTimeout)
}
