package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.True(t, cfg.SmoothEnabled())
	assert.Equal(t, time.Duration(0), cfg.Duration())
	assert.Equal(t, 60, cfg.TickRateHz)
	assert.Equal(t, 256, cfg.SnapshotSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Greater(t, cfg.Workers, 0)
	assert.Equal(t, "snapshots", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"smooth": false,
		"duration_ms": 400,
		"tick_rate_hz": 120,
		"snapshot_size": 512,
		"output_dir": "renders"
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Resolve(Flags{})

	assert.False(t, cfg.SmoothEnabled())
	assert.Equal(t, 400*time.Millisecond, cfg.Duration())
	assert.Equal(t, 120, cfg.TickRateHz)
	assert.Equal(t, 512, cfg.SnapshotSize)
	assert.Equal(t, "renders", cfg.OutputDir)
}

func TestFlagsTakePriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"smooth": false, "snapshot_size": 512}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Resolve(Flags{Smooth: true, Size: 128, OutputDir: "elsewhere", Workers: 3})

	assert.True(t, cfg.SmoothEnabled())
	assert.Equal(t, 128, cfg.SnapshotSize)
	assert.Equal(t, "elsewhere", cfg.OutputDir)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
