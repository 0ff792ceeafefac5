// Command viewalign is an interactive terminal viewport: a wireframe
// cube and the reference frame's axis triad, reorientable with the
// product's numpad bindings (7/1/3 custom, 8/5/6 cursor, Ctrl for the
// opposite face) and free-orbit arrow keys.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"viewalign/internal/config"
	"viewalign/internal/frame"
	"viewalign/internal/host"
	"viewalign/internal/mathutil"
	"viewalign/internal/transition"
	"viewalign/internal/trigger"
)

// viewState is the terminal's viewport orientation.
type viewState struct {
	q mathutil.Quat
}

func (v *viewState) Orientation() mathutil.Quat     { return v.q }
func (v *viewState) SetOrientation(q mathutil.Quat) { v.q = q }

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	presetsPath := flag.String("presets", "", "Path to orientation library JSON")
	presetName := flag.String("preset", "", "Custom-orientation preset name")
	customEuler := flag.String("euler", "25,0,45", "Custom orientation as Euler XYZ degrees")
	cursorEuler := flag.String("cursor-euler", "0,0,30", "Cursor orientation as Euler XYZ degrees")
	instant := flag.Bool("instant", false, "Start with smooth transitions disabled")
	logPath := flag.String("log", "", "Write diagnostics to this file")

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
	cfg.Resolve(config.Flags{Instant: *instant, Presets: *presetsPath})

	// Writing diagnostics to the terminal would fight the screen.
	log := zerolog.Nop()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	custom, err := pickFrame(cfg, *presetName, *customEuler, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cursor, err := eulerFrame(*cursorEuler)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -cursor-euler: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, custom, cursor, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, custom, cursor frame.Frame, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.NewRGBColor(16, 17, 22)))

	view := &viewState{q: mathutil.QuatIdentity()}
	ticks := host.NewTickList()
	driver := transition.NewDriver(view, ticks, log)

	smooth := cfg.SmoothEnabled()
	aligner := trigger.NewAligner(
		view,
		host.FrameSourceFunc(func() (frame.Frame, bool) { return custom, true }),
		host.FrameSourceFunc(func() (frame.Frame, bool) { return cursor, true }),
		driver,
		func() trigger.Settings {
			return trigger.Settings{Smooth: smooth, Duration: cfg.Duration()}
		},
		nil,
		log,
	)
	keymap := trigger.NewKeymap(trigger.DefaultKeymap())

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRateHz))
	defer ticker.Stop()

	status := "ready"
	for {
		select {
		case now := <-ticker.C:
			ticks.Run(now)
			draw(screen, view.q, custom, driver.Running(), smooth, status)

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				quit, newStatus := handleKey(ev, aligner, keymap, view, &smooth)
				if quit {
					aligner.Cancel()
					return nil
				}
				if newStatus != "" {
					status = newStatus
				}
			}
		}
	}
}

// handleKey dispatches one key event. Terminals rarely report
// Ctrl+digit, so Shift (via the shifted symbol row) doubles as the
// opposite-face modifier.
func handleKey(
	ev *tcell.EventKey,
	aligner *trigger.Aligner,
	keymap *trigger.Keymap,
	view *viewState,
	smooth *bool,
) (quit bool, status string) {
	orbitStep := mathutil.Deg2Rad(5)

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, ""
	case tcell.KeyUp:
		view.q = mathutil.QuatMul(mathutil.QuatFromAxisAngle(view.q.RotateVec(mathutil.Vec3{1, 0, 0}), -orbitStep), view.q).Normalize()
		return false, ""
	case tcell.KeyDown:
		view.q = mathutil.QuatMul(mathutil.QuatFromAxisAngle(view.q.RotateVec(mathutil.Vec3{1, 0, 0}), orbitStep), view.q).Normalize()
		return false, ""
	case tcell.KeyLeft:
		view.q = mathutil.QuatMul(mathutil.QuatFromAxisAngle(mathutil.Vec3{0, 0, 1}, orbitStep), view.q).Normalize()
		return false, ""
	case tcell.KeyRight:
		view.q = mathutil.QuatMul(mathutil.QuatFromAxisAngle(mathutil.Vec3{0, 0, 1}, -orbitStep), view.q).Normalize()
		return false, ""
	case tcell.KeyRune:
		// fall through to rune handling below
	default:
		return false, ""
	}

	r := ev.Rune()
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch r {
	case 'q':
		return true, ""
	case 'm':
		*smooth = !*smooth
		if *smooth {
			return false, "smooth transitions on"
		}
		return false, "smooth transitions off"
	case 'r':
		view.q = mathutil.QuatIdentity()
		return false, "view reset"
	}

	// Shifted digit symbols stand in for Ctrl+digit.
	shifted := map[rune]rune{'&': '7', '!': '1', '#': '3', '*': '8', '%': '5', '^': '6'}
	if base, ok := shifted[r]; ok {
		r = base
		ctrl = true
	}

	if r >= '0' && r <= '9' {
		b, ok := keymap.Lookup("numpad"+string(r), ctrl)
		if !ok {
			return false, ""
		}
		if _, err := aligner.Align(b.Source, b.Face); err != nil {
			return false, fmt.Sprintf("align failed: %v", err)
		}
		return false, fmt.Sprintf("align %s/%s", b.Source, b.Face)
	}

	return false, ""
}

func pickFrame(cfg config.Config, preset, euler string, log zerolog.Logger) (frame.Frame, error) {
	if preset != "" {
		if cfg.Presets == "" {
			return frame.Frame{}, fmt.Errorf("-preset requires an orientation library path")
		}
		lib, err := frame.LoadLibrary(cfg.Presets, log)
		if err != nil {
			return frame.Frame{}, err
		}
		f, ok := lib.Get(preset)
		if !ok {
			return frame.Frame{}, fmt.Errorf("preset %q not found", preset)
		}
		return f, nil
	}
	return eulerFrame(euler)
}
