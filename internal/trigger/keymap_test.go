package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewalign/internal/align"
)

func TestDefaultKeymap(t *testing.T) {
	km := NewKeymap(DefaultKeymap())

	tests := []struct {
		key    string
		ctrl   bool
		source Source
		face   align.Face
	}{
		{"numpad7", false, SourceCustom, align.Top},
		{"numpad7", true, SourceCustom, align.Bottom},
		{"numpad1", false, SourceCustom, align.Front},
		{"numpad1", true, SourceCustom, align.Back},
		{"numpad3", false, SourceCustom, align.Right},
		{"numpad3", true, SourceCustom, align.Left},
		{"numpad8", false, SourceCursor, align.Top},
		{"numpad8", true, SourceCursor, align.Bottom},
		{"numpad5", false, SourceCursor, align.Front},
		{"numpad5", true, SourceCursor, align.Back},
		{"numpad6", false, SourceCursor, align.Right},
		{"numpad6", true, SourceCursor, align.Left},
	}

	for _, tt := range tests {
		b, ok := km.Lookup(tt.key, tt.ctrl)
		require.Truef(t, ok, "%s ctrl=%v", tt.key, tt.ctrl)
		assert.Equal(t, tt.source, b.Source)
		assert.Equal(t, tt.face, b.Face)
	}

	// The Ctrl variant is always the opposite face of the bare key.
	for _, tt := range tests {
		if tt.ctrl {
			continue
		}
		bare, _ := km.Lookup(tt.key, false)
		ctrl, ok := km.Lookup(tt.key, true)
		require.True(t, ok)
		assert.Equal(t, bare.Face.Opposite(), ctrl.Face)
		assert.Equal(t, bare.Source, ctrl.Source)
	}

	_, ok := km.Lookup("numpad9", false)
	assert.False(t, ok)
}

func TestKeymapLaterBindingWins(t *testing.T) {
	km := NewKeymap([]Binding{
		{Key: "k", Source: SourceCustom, Face: align.Top},
		{Key: "k", Source: SourceCursor, Face: align.Left},
	})
	b, ok := km.Lookup("k", false)
	require.True(t, ok)
	assert.Equal(t, SourceCursor, b.Source)
	assert.Equal(t, align.Left, b.Face)
}
