// Package sim turns narration and loot requests into narration output and
// item spawns, one batch per tick.
//
// Everything here runs on the tick goroutine. Queues, handlers and the
// collaborators they call are not safe for concurrent use; the fixed-step
// driver is expected to call Sim.Tick exactly once per step.
package sim

import (
	"dungeon-inventory/internal/component"
	"dungeon-inventory/internal/config"
)

// NarrationRequest asks for one line from a narration category.
type NarrationRequest struct {
	Text config.TextType
}

// LootRequest asks for one instance of an item to be placed in the drop grid.
type LootRequest struct {
	Item component.ItemID
}

// Queue holds events in arrival order until the next drain.
type Queue[T any] struct {
	pending []T
}

// Push appends ev behind every event already queued.
func (q *Queue[T]) Push(ev T) {
	q.pending = append(q.pending, ev)
}

// Drain returns every pending event in FIFO order and empties the queue. Each
// pushed event is returned by exactly one Drain.
func (q *Queue[T]) Drain() []T {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int { return len(q.pending) }
