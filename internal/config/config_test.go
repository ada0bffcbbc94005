package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "DB_PATH", "DATABASE_URL", "DB_PORT", "SEED_DEFAULTS", "TEMPLATE_PATH", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "./foodlist.db", cfg.Store.DSN())
	assert.True(t, cfg.Store.SeedDefaults)
	assert.Equal(t, "", cfg.Page.TemplatePath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadPostgresFromParts(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "menu")
	t.Setenv("DB_PASSWORD", "p@ss")
	t.Setenv("DB_NAME", "warung")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://menu:p%40ss@db:6543/warung", cfg.Store.DSN())
}

func TestLoadPostgresURLWins(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://x@y/z")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://x@y/z", cfg.Store.DSN())
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("DB_PORT", "fivefour")
	_, err := Load()
	assert.Error(t, err)
}

func TestSeedDefaultsFlag(t *testing.T) {
	t.Setenv("SEED_DEFAULTS", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Store.SeedDefaults)

	t.Setenv("SEED_DEFAULTS", "maybe")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.Store.SeedDefaults)
}

func TestLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LogConfig{Level: "debug"}.Logger().GetLevel())
	assert.Equal(t, logrus.InfoLevel, LogConfig{Level: "loud"}.Logger().GetLevel())
}

func TestForDriverDerivesFromFinalDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "menu")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "warung")
	t.Setenv("DB_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Store.Driver)

	assert.Equal(t, "postgres://menu:secret@db:5432/warung", cfg.Store.ForDriver("postgres", ""))
	assert.Equal(t, "./foodlist.db", cfg.Store.ForDriver("sqlite", ""))
	assert.Equal(t, "/tmp/other.db", cfg.Store.ForDriver("postgres", "/tmp/other.db"))
	assert.Equal(t, "sqlite", cfg.Store.Driver)
}

func TestParseLevel(t *testing.T) {
	level, ok := parseLevel("")
	assert.True(t, ok, "an unset level must not warn")
	assert.Equal(t, logrus.InfoLevel, level)

	level, ok = parseLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, logrus.WarnLevel, level)

	level, ok = parseLevel("loud")
	assert.False(t, ok)
	assert.Equal(t, logrus.InfoLevel, level)
}
