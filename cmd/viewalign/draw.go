package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"viewalign/internal/frame"
	"viewalign/internal/gizmo"
	"viewalign/internal/mathutil"
)

// draw renders one frame: the gizmo as half-block cells (two image rows
// per terminal row) plus a status bar.
func draw(screen tcell.Screen, view mathutil.Quat, ref frame.Frame, running, smooth bool, status string) {
	w, h := screen.Size()
	if w < 8 || h < 6 {
		return
	}

	// Square viewport area: cells are roughly twice as tall as wide,
	// so each cell carries two vertically stacked pixels.
	side := w
	if maxSide := (h - 2) * 2; maxSide < side {
		side = maxSide
	}
	if side < 4 {
		return
	}

	bg := color.NRGBA{16, 17, 22, 255}
	img := gizmo.Render(view, ref, gizmo.Options{
		Size:        side,
		Supersample: 2,
		Background:  &bg,
	})

	screen.Clear()
	xOff := (w - side) / 2
	for cy := 0; cy < side/2; cy++ {
		for cx := 0; cx < side; cx++ {
			top := img.NRGBAAt(cx, cy*2)
			bot := img.NRGBAAt(cx, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			screen.SetContent(xOff+cx, cy, '▀', nil, style)
		}
	}

	mode := "instant"
	if smooth {
		mode = "smooth"
	}
	state := "idle"
	if running {
		state = "animating"
	}
	bar := fmt.Sprintf(" [%s] %s | %s | 7/1/3 custom  8/5/6 cursor  shift=opposite  m=mode  r=reset  q=quit",
		mode, state, status)
	putText(screen, 0, h-1, bar, tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(200, 200, 210)).
		Background(tcell.NewRGBColor(40, 42, 52)))

	screen.Show()
}

func putText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	for i, r := range s {
		if x+i >= w {
			break
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// eulerFrame parses "x,y,z" degrees into a reference frame.
func eulerFrame(s string) (frame.Frame, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return frame.Frame{}, fmt.Errorf("want three comma-separated angles, got %q", s)
	}
	var angles [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return frame.Frame{}, fmt.Errorf("bad angle %q", p)
		}
		angles[i] = v
	}
	return frame.FromEuler(angles[0], angles[1], angles[2]), nil
}
