// Package config loads the engine's settings: a JSON file overlaid by
// CLI flags, with defaults filled in by Resolve.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"
)

// Config holds all configurable transition and snapshot settings.
type Config struct {
	// Transition settings
	Smooth     *bool `json:"smooth"`       // nil = default true
	DurationMS int   `json:"duration_ms"`  // 0 = angle-scaled default
	TickRateHz int   `json:"tick_rate_hz"` // simulation/UI tick rate

	// Orientation preset library
	Presets string `json:"presets"`

	// Snapshot settings
	SnapshotSize int    `json:"snapshot_size"`
	Supersample  int    `json:"supersample"`
	Workers      int    `json:"workers"`
	Backdrop     string `json:"backdrop"`
	OutputDir    string `json:"output_dir"`

	LogLevel string `json:"log_level"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Instant   bool // force instant alignment
	Smooth    bool // force smooth alignment
	Presets   string
	OutputDir string
	Workers   int
	Size      int
}

// Resolve fills in any empty fields with defaults. CLI flags take
// priority when set.
func (c *Config) Resolve(flags Flags) {
	if flags.Instant {
		f := false
		c.Smooth = &f
	} else if flags.Smooth {
		t := true
		c.Smooth = &t
	}
	if flags.Presets != "" {
		c.Presets = flags.Presets
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Size > 0 {
		c.SnapshotSize = flags.Size
	}

	if c.Smooth == nil {
		t := true
		c.Smooth = &t
	}
	if c.TickRateHz <= 0 {
		c.TickRateHz = 60
	}
	if c.SnapshotSize <= 0 {
		c.SnapshotSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "snapshots"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// SmoothEnabled reports the smooth-transition preference.
func (c *Config) SmoothEnabled() bool {
	return c.Smooth == nil || *c.Smooth
}

// Duration returns the configured fixed transition duration, or zero
// for the angle-scaled default.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}
