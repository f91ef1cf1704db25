package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runordye.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
	assert.Equal(t, 30, cfg.CellSize)
	assert.Equal(t, 50, cfg.Obstacles)
	assert.Equal(t, 3, cfg.Pursuers)
}

func TestLoad(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "width: 10\npursuers: 5\nseed: 42\nlog_level: debug\n"))
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Width)
		assert.Equal(t, 5, cfg.Pursuers)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 15, cfg.Height)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeFile(t, "height: -3\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = Load(writeFile(t, "log_level: loud\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "width: [1\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestSampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load("../runordye.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
