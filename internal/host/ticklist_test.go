package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickListRunOrder(t *testing.T) {
	tl := NewTickList()
	var order []int
	tl.Register(func(time.Time) { order = append(order, 1) })
	tl.Register(func(time.Time) { order = append(order, 2) })

	tl.Run(time.Now())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 2, tl.Len())
}

func TestTickListUnregisterDuringRun(t *testing.T) {
	tl := NewTickList()
	var calls int
	var h TickHandle
	h = tl.Register(func(time.Time) {
		calls++
		tl.Unregister(h)
	})
	tl.Register(func(time.Time) { calls += 10 })

	tl.Run(time.Now())
	assert.Equal(t, 11, calls)
	assert.Equal(t, 1, tl.Len())

	tl.Run(time.Now())
	assert.Equal(t, 21, calls, "unregistered callback never runs again")
}

func TestFakeClockAndWrites(t *testing.T) {
	f := NewFake()
	t0 := f.Now()

	var seen []time.Time
	f.Register(func(now time.Time) { seen = append(seen, now) })

	f.Step(100 * time.Millisecond)
	f.Step(50 * time.Millisecond)

	assert.Equal(t, t0.Add(100*time.Millisecond), seen[0])
	assert.Equal(t, t0.Add(150*time.Millisecond), seen[1])
}
