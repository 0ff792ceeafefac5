package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewalign/internal/align"
	"viewalign/internal/frame"
	"viewalign/internal/mathutil"
)

func TestSequenceSmooth(t *testing.T) {
	ref := frame.FromEuler(25, 0, 45)
	cfg := Config{
		Frame:    ref,
		Face:     align.Front,
		Start:    mathutil.QuatIdentity(),
		Smooth:   true,
		Duration: 500 * time.Millisecond,
		TickRate: 50,
	}

	frames, err := Sequence(cfg, zerolog.Nop())
	require.NoError(t, err)

	// 500 ms at 50 Hz: start plus ~25 ticks, the last of which crosses
	// t=1 and writes the destination exactly.
	assert.GreaterOrEqual(t, len(frames), 20)
	assert.LessOrEqual(t, len(frames), 30)

	assert.Equal(t, cfg.Start, frames[0])

	dest, err := align.Resolve(ref, align.Front)
	require.NoError(t, err)
	assert.InDelta(t, 0, mathutil.QuatAngle(dest, frames[len(frames)-1]), 1e-12)
}

func TestSequenceInstant(t *testing.T) {
	ref := frame.FromEuler(0, 0, 90)
	cfg := Config{
		Frame:    ref,
		Face:     align.Top,
		Start:    mathutil.QuatIdentity(),
		Smooth:   false,
		TickRate: 60,
	}

	frames, err := Sequence(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, frames, 2, "instant capture is start plus destination")

	dest, err := align.Resolve(ref, align.Top)
	require.NoError(t, err)
	assert.InDelta(t, 0, mathutil.QuatAngle(dest, frames[1]), 1e-12)
}

func TestSequenceInvalidFrame(t *testing.T) {
	cfg := Config{
		Frame: frame.FromMat3(mathutil.Mat3{1, 0.5, 0, 0, 1, 0, 0, 0, 1}),
		Face:  align.Top,
		Start: mathutil.QuatIdentity(),
	}
	_, err := Sequence(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, frame.ErrInvalid)
}

func TestCaptureWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Frame:       frame.FromEuler(25, 0, 45),
		Face:        align.Right,
		Start:       mathutil.QuatIdentity(),
		Smooth:      true,
		Duration:    100 * time.Millisecond,
		TickRate:    30,
		Size:        32,
		Supersample: 1,
		Workers:     2,
		OutputDir:   dir,
	}

	results, err := Capture(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, r := range results {
		assert.Emptyf(t, r.Error, "frame %d", r.Index)
		info, err := os.Stat(r.Path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	entries, err := filepath.Glob(filepath.Join(dir, "frame_*.webp"))
	require.NoError(t, err)
	assert.Len(t, entries, len(results))
}
