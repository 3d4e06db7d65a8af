package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest-management-gis/internal/config"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8001", cfg.GetServerAddr())
	assert.Equal(t, "forest_management", cfg.Database.DBName)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, 20, cfg.Report.TreeLimit)
	assert.Equal(t, "forest-photo-cleanup", cfg.Worker.ConsumerGroup)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nDB_NAME=forest_test\nREDIS_ENABLED=true\nUPLOAD_DIR=/tmp/forest\nREPORT_TREE_LIMIT=5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "forest_test", cfg.Database.DBName)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "/tmp/forest", cfg.Storage.UploadDir)
	assert.Equal(t, 5, cfg.Report.TreeLimit)
}

func TestLoadFrom_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=info\n"), 0o644))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestConfig_DSNAndRedisAddr(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host: "db", Port: 5432, User: "u", Password: "p", DBName: "forest", SSLMode: "disable",
		},
		Redis: config.RedisConfig{Host: "cache", Port: 6380},
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=forest sslmode=disable", cfg.GetDatabaseDSN())
	assert.Equal(t, "cache:6380", cfg.GetRedisAddr())
}
