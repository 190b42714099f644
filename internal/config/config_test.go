package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRACKER_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("TRACKER_STORAGE_DRIVER", "sqlite")
	t.Setenv("TRACKER_STORAGE_PATH", "/tmp/test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, DriverSqlite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.Path)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("TRACKER_STORAGE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
}
