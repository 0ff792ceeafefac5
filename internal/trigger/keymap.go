package trigger

import "viewalign/internal/align"

// Binding maps one key chord to an alignment. Key names are
// host-agnostic strings; the interactive frontends translate their own
// key events into these names.
type Binding struct {
	Key    string
	Ctrl   bool
	Source Source
	Face   align.Face
}

// DefaultKeymap reproduces the product's numpad layout: 7/1/3 align to
// the custom orientation's top/front/right, 8/5/6 to the cursor's, and
// Ctrl selects the opposite face.
func DefaultKeymap() []Binding {
	return []Binding{
		{Key: "numpad7", Source: SourceCustom, Face: align.Top},
		{Key: "numpad7", Ctrl: true, Source: SourceCustom, Face: align.Bottom},
		{Key: "numpad1", Source: SourceCustom, Face: align.Front},
		{Key: "numpad1", Ctrl: true, Source: SourceCustom, Face: align.Back},
		{Key: "numpad3", Source: SourceCustom, Face: align.Right},
		{Key: "numpad3", Ctrl: true, Source: SourceCustom, Face: align.Left},

		{Key: "numpad8", Source: SourceCursor, Face: align.Top},
		{Key: "numpad8", Ctrl: true, Source: SourceCursor, Face: align.Bottom},
		{Key: "numpad5", Source: SourceCursor, Face: align.Front},
		{Key: "numpad5", Ctrl: true, Source: SourceCursor, Face: align.Back},
		{Key: "numpad6", Source: SourceCursor, Face: align.Right},
		{Key: "numpad6", Ctrl: true, Source: SourceCursor, Face: align.Left},
	}
}

// Keymap resolves key chords to bindings.
type Keymap struct {
	bindings map[chord]Binding
}

type chord struct {
	key  string
	ctrl bool
}

// NewKeymap indexes the given bindings; later duplicates win.
func NewKeymap(bindings []Binding) *Keymap {
	km := &Keymap{bindings: make(map[chord]Binding, len(bindings))}
	for _, b := range bindings {
		km.bindings[chord{b.Key, b.Ctrl}] = b
	}
	return km
}

// Lookup finds the binding for a key chord.
func (km *Keymap) Lookup(key string, ctrl bool) (Binding, bool) {
	b, ok := km.bindings[chord{key, ctrl}]
	return b, ok
}
