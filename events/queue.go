package events

import (
	"sync/atomic"

	"github.com/lixenwraith/turntable/constants"
)

// EventQueue buffers the events one frame produces until the router drains them
//
// Producers (the tonearm, keyboard navigator and controls) may push from any
// goroutine; only the frame loop drains. When the ring is full the oldest
// unread events are dropped so a stalled frame never blocks the input side.
type EventQueue struct {
	slots [constants.EventQueueSize]Event
	ready [constants.EventQueueSize]atomic.Bool // Slot holds a complete event
	read  atomic.Uint64
	write atomic.Uint64
}

// NewEventQueue returns an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, claiming a slot before filling it
func (q *EventQueue) Push(event Event) {
	for {
		w := q.write.Load()
		if !q.write.CompareAndSwap(w, w+1) {
			continue
		}

		slot := w & constants.EventBufferMask
		q.slots[slot] = event
		q.ready[slot].Store(true)

		// A lapped reader skips forward to the oldest surviving event
		if r := q.read.Load(); w+1-r > constants.EventQueueSize {
			q.read.CompareAndSwap(r, w+1-constants.EventQueueSize)
		}
		return
	}
}

// Consume drains the pending events in push order
// Stops early at a slot whose writer has not finished; the rest arrive next frame
func (q *EventQueue) Consume() []Event {
	for {
		r, w := q.read.Load(), q.write.Load()
		if r == w {
			return nil
		}

		pending := w - r
		if pending > constants.EventQueueSize {
			r = w - constants.EventQueueSize
			pending = constants.EventQueueSize
		}

		batch := make([]Event, 0, pending)
		for i := uint64(0); i < pending; i++ {
			slot := (r + i) & constants.EventBufferMask
			if !q.ready[slot].Load() {
				break
			}
			batch = append(batch, q.slots[slot])
			q.ready[slot].Store(false)
		}

		if !q.read.CompareAndSwap(r, r+uint64(len(batch))) {
			continue
		}
		if len(batch) == 0 {
			return nil
		}
		return batch
	}
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return int(min(q.write.Load()-q.read.Load(), constants.EventQueueSize))
}
