package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "zenerp-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.True(t, cfg.Store.StrictTransitions)
	assert.Equal(t, "file", cfg.Snapshot.Driver)
	assert.Equal(t, "zenerp_state.json", cfg.Snapshot.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ZENERP_APP_PORT", "9090")
	t.Setenv("ZENERP_LOG_LEVEL", "debug")
	t.Setenv("ZENERP_STORE_STRICT_TRANSITIONS", "false")
	t.Setenv("ZENERP_SNAPSHOT_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Store.StrictTransitions)
	assert.Equal(t, "sqlite", cfg.Snapshot.Driver)
	assert.Equal(t, "zenerp.db", cfg.Snapshot.Path)
}

func TestLoad_InvalidSnapshotDriver(t *testing.T) {
	t.Setenv("ZENERP_SNAPSHOT_DRIVER", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionRejectsWildcardCORS(t *testing.T) {
	cfg := &Config{
		App:      AppConfig{Env: "production"},
		HTTP:     HTTPConfig{CORSAllowOrigins: []string{"*"}},
		Snapshot: SnapshotConfig{Driver: "file"},
	}
	assert.Error(t, cfg.validate())

	cfg.HTTP.CORSAllowOrigins = []string{"https://app.example.com"}
	assert.NoError(t, cfg.validate())
}
