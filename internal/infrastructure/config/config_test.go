package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// A config file that does not exist falls through to defaults
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)

	cfg, err = Load("")
	require.NoError(t, err)

	assert.Equal(t, "Pantryloom", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "pantry.db", cfg.Database.Path)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, "https://api.arliai.com", cfg.AI.BaseURL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("PANTRYLOOM_SERVER_PORT", "9090")
	t.Setenv("PANTRYLOOM_DATABASE_SEED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Database.Seed)
}

func TestValidate(t *testing.T) {
	t.Run("production requires an API key", func(t *testing.T) {
		t.Setenv("PANTRYLOOM_APP_ENVIRONMENT", "production")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ai.api_key")
	})

	t.Run("port range", func(t *testing.T) {
		t.Setenv("PANTRYLOOM_SERVER_PORT", "0")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
	})
}
