package frame

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"viewalign/internal/mathutil"
)

// presetFile matches the JSON schema of an orientation library file:
//
//	{
//	  "orientations": {
//	    "machine-bed": {"euler_deg": [0, 0, 45]},
//	    "jig":         {"basis": [1,0,0, 0,1,0, 0,0,1]}
//	  }
//	}
type presetFile struct {
	Orientations map[string]json.RawMessage `json:"orientations"`
}

type presetEntry struct {
	EulerDeg *[3]float64 `json:"euler_deg"`
	Basis    *[9]float64 `json:"basis"` // row-major 3×3
}

// Library holds named reference frames loaded from a JSON sidecar.
type Library struct {
	frames map[string]Frame
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{frames: make(map[string]Frame)}
}

// LoadLibrary reads an orientation library file. Entries that fail to
// parse or validate are skipped with a per-entry diagnostic; the valid
// remainder still loads.
func LoadLibrary(path string, log zerolog.Logger) (*Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frame: read library %s: %w", path, err)
	}

	var file presetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("frame: parse library %s: %w", path, err)
	}

	lib := NewLibrary()
	for name, msg := range file.Orientations {
		f, err := resolvePreset(msg)
		if err != nil {
			log.Warn().Str("preset", name).Err(err).Msg("skipping orientation preset")
			continue
		}
		lib.frames[name] = f
	}
	return lib, nil
}

func resolvePreset(msg json.RawMessage) (Frame, error) {
	var e presetEntry
	if err := json.Unmarshal(msg, &e); err != nil {
		return Frame{}, err
	}

	switch {
	case e.Basis != nil:
		f := FromMat3(mathutil.Mat3(*e.Basis))
		if err := f.Validate(DefaultTolerance); err != nil {
			return Frame{}, err
		}
		return f, nil
	case e.EulerDeg != nil:
		return FromEuler(e.EulerDeg[0], e.EulerDeg[1], e.EulerDeg[2]), nil
	default:
		return Frame{}, fmt.Errorf("frame: preset has neither euler_deg nor basis")
	}
}

// Get looks up a preset by name.
func (l *Library) Get(name string) (Frame, bool) {
	f, ok := l.frames[name]
	return f, ok
}

// Put adds or replaces a named frame.
func (l *Library) Put(name string, f Frame) {
	l.frames[name] = f
}

// Names returns all preset names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.frames))
	for n := range l.frames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of presets.
func (l *Library) Len() int {
	return len(l.frames)
}

// Save writes the library back out with explicit basis matrices, which
// round-trip exactly.
func (l *Library) Save(path string) error {
	out := presetFile{Orientations: make(map[string]json.RawMessage, len(l.frames))}
	for name, f := range l.frames {
		basis := [9]float64(f.Basis)
		msg, err := json.Marshal(presetEntry{Basis: &basis})
		if err != nil {
			return fmt.Errorf("frame: marshal preset %s: %w", name, err)
		}
		out.Orientations[name] = msg
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("frame: marshal library: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("frame: write library %s: %w", path, err)
	}
	return nil
}
