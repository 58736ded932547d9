package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.DefaultLevel)
	assert.Equal(t, 3, cfg.MaxLevel)
	assert.Equal(t, 50, cfg.HistoryLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SINONIMOAK_LEVEL", "2")
	t.Setenv("SINONIMOAK_MAX_LEVEL", "4")
	t.Setenv("SINONIMOAK_DB", "/tmp/test.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DefaultLevel)
	assert.Equal(t, 4, cfg.MaxLevel)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
}

func TestLoadClampsLevels(t *testing.T) {
	t.Setenv("SINONIMOAK_LEVEL", "0")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.DefaultLevel)

	t.Setenv("SINONIMOAK_LEVEL", "5")
	t.Setenv("SINONIMOAK_MAX_LEVEL", "3")
	cfg, err = Load()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cfg.MaxLevel, cfg.DefaultLevel)
}
