package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"viewalign/internal/align"
	"viewalign/internal/config"
	"viewalign/internal/frame"
	"viewalign/internal/mathutil"
	"viewalign/internal/snapshot"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	presetsPath := flag.String("presets", "", "Path to orientation library JSON")
	presetName := flag.String("preset", "", "Reference frame preset name")
	eulerStr := flag.String("euler", "", "Reference frame as Euler XYZ degrees, e.g. 25,0,45")
	faceStr := flag.String("face", "top", "Face to align to: top|bottom|front|back|right|left")
	startStr := flag.String("start", "", "Start view orientation as Euler XYZ degrees (default identity)")
	instant := flag.Bool("instant", false, "Instant alignment (single destination frame)")
	durationMS := flag.Int("duration", 0, "Fixed transition duration in ms (default: angle-scaled)")
	rate := flag.Int("rate", 0, "Tick rate in Hz (default 60)")
	size := flag.Int("size", 0, "Frame edge length in pixels (default 256)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: snapshots)")
	backdropPath := flag.String("backdrop", "", "Backdrop image (TGA/PNG/JPEG)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Instant:   *instant,
		Presets:   *presetsPath,
		OutputDir: *outputDir,
		Workers:   *workers,
		Size:      *size,
	})
	if *durationMS > 0 {
		cfg.DurationMS = *durationMS
	}
	if *rate > 0 {
		cfg.TickRateHz = *rate
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ref, err := resolveFrame(cfg, *presetName, *eulerStr, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	face, err := align.ParseFace(*faceStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := mathutil.QuatIdentity()
	if *startStr != "" {
		x, y, z, err := parseEuler(*startStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -start: %v\n", err)
			os.Exit(1)
		}
		start = frame.FromEuler(x, y, z).Quat()
	}

	snapCfg := snapshot.Config{
		Frame:       ref,
		Face:        face,
		Start:       start,
		Smooth:      cfg.SmoothEnabled(),
		Duration:    cfg.Duration(),
		TickRate:    cfg.TickRateHz,
		Size:        cfg.SnapshotSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		OutputDir:   cfg.OutputDir,
	}

	if *backdropPath == "" {
		*backdropPath = cfg.Backdrop
	}
	if *backdropPath != "" {
		bd, err := snapshot.LoadBackdrop(*backdropPath, cfg.SnapshotSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			snapCfg.Backdrop = bd
		}
	}

	fmt.Printf("Viewport alignment snapshot → WebP\n")
	fmt.Printf("Face: %s, Smooth: %v, Rate: %d Hz\n", face, snapCfg.Smooth, cfg.TickRateHz)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	began := time.Now()
	results, err := snapshot.Capture(snapCfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	success, failed := 0, 0
	for _, r := range results {
		if r.Error == "" {
			success++
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %s\n", r.Index, r.Error)
		}
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Encoded %d/%d frames in %.1fs\n", success, len(results), time.Since(began).Seconds())

	if failed > 0 {
		os.Exit(1)
	}
}

// resolveFrame picks the reference frame from -preset or -euler.
func resolveFrame(cfg config.Config, preset, euler string, log zerolog.Logger) (frame.Frame, error) {
	switch {
	case preset != "":
		if cfg.Presets == "" {
			return frame.Frame{}, fmt.Errorf("-preset requires -presets or a presets path in config")
		}
		lib, err := frame.LoadLibrary(cfg.Presets, log)
		if err != nil {
			return frame.Frame{}, err
		}
		f, ok := lib.Get(preset)
		if !ok {
			return frame.Frame{}, fmt.Errorf("preset %q not found in %s", preset, cfg.Presets)
		}
		return f, nil
	case euler != "":
		x, y, z, err := parseEuler(euler)
		if err != nil {
			return frame.Frame{}, fmt.Errorf("-euler: %w", err)
		}
		return frame.FromEuler(x, y, z), nil
	default:
		return frame.Identity(), nil
	}
}

// parseEuler parses "x,y,z" degrees.
func parseEuler(s string) (x, y, z float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want three comma-separated angles, got %q", s)
	}
	vals := [3]float64{}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad angle %q", p)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
