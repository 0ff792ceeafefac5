package host

import "time"

// TickList is a minimal Scheduler for hosts that drive their own frame
// loop: register callbacks, then call Run once per frame. Not safe for
// concurrent use; it lives on the loop's goroutine.
type TickList struct {
	nextID TickHandle
	ticks  map[TickHandle]TickFunc
	order  []TickHandle
}

func NewTickList() *TickList {
	return &TickList{ticks: make(map[TickHandle]TickFunc)}
}

func (tl *TickList) Register(fn TickFunc) TickHandle {
	tl.nextID++
	id := tl.nextID
	tl.ticks[id] = fn
	tl.order = append(tl.order, id)
	return id
}

func (tl *TickList) Unregister(h TickHandle) {
	delete(tl.ticks, h)
}

// Run invokes all registered callbacks in registration order.
// Callbacks may unregister themselves (or register others) while
// running.
func (tl *TickList) Run(now time.Time) {
	// Snapshot: callbacks can mutate the registry mid-tick.
	pending := make([]TickHandle, len(tl.order))
	copy(pending, tl.order)

	for _, id := range pending {
		if fn, ok := tl.ticks[id]; ok {
			fn(now)
		}
	}

	// Compact the order slice of stale entries.
	live := tl.order[:0]
	for _, id := range tl.order {
		if _, ok := tl.ticks[id]; ok {
			live = append(live, id)
		}
	}
	tl.order = live
}

// Len reports the number of registered callbacks.
func (tl *TickList) Len() int {
	return len(tl.ticks)
}
