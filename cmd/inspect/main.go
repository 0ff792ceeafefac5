package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"viewalign/internal/align"
	"viewalign/internal/frame"
	"viewalign/internal/mathutil"
)

// Dumps the six resolved camera orientations for a reference frame.
func main() {
	presetsPath := flag.String("presets", "", "Path to orientation library JSON")
	presetName := flag.String("preset", "", "Frame preset name (requires -presets)")
	eulerStr := flag.String("euler", "", "Frame as Euler XYZ degrees, e.g. 25,0,45")
	tol := flag.Float64("tol", frame.DefaultTolerance, "Orthonormality tolerance")

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	f := frame.Identity()
	switch {
	case *presetName != "":
		lib, err := frame.LoadLibrary(*presetsPath, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		var ok bool
		f, ok = lib.Get(*presetName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: preset %q not found (have: %s)\n",
				*presetName, strings.Join(lib.Names(), ", "))
			os.Exit(1)
		}
	case *eulerStr != "":
		parts := strings.Split(*eulerStr, ",")
		if len(parts) != 3 {
			fmt.Fprintf(os.Stderr, "Error: -euler wants x,y,z degrees\n")
			os.Exit(1)
		}
		var angles [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: bad angle %q\n", p)
				os.Exit(1)
			}
			angles[i] = v
		}
		f = frame.FromEuler(angles[0], angles[1], angles[2])
	}

	fmt.Println("Reference frame basis (columns = right, forward, up):")
	for r := 0; r < 3; r++ {
		fmt.Printf("  [%9.5f %9.5f %9.5f]\n", f.Basis[r*3], f.Basis[r*3+1], f.Basis[r*3+2])
	}

	if err := f.Validate(*tol); err != nil {
		fmt.Printf("Validation: FAILED: %v\n", err)
	} else {
		fmt.Printf("Validation: OK (tolerance %g)\n", *tol)
	}
	fmt.Println()

	for _, face := range align.Faces() {
		q, err := align.Resolve(f, face)
		if err != nil {
			fmt.Printf("%-7s resolve failed: %v\n", face, err)
			continue
		}
		look := align.LookDir(f, face)
		axis, angle := q.AxisAngle()
		fmt.Printf("%-7s quat(% .5f % .5f % .5f % .5f)\n", face, q[0], q[1], q[2], q[3])
		fmt.Printf("        look(% .5f % .5f % .5f)  axis(% .5f % .5f % .5f) angle %.2f°\n",
			look[0], look[1], look[2], axis[0], axis[1], axis[2], mathutil.Rad2Deg(angle))
	}
}
