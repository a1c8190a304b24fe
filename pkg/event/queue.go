package event

import "log/slog"

// QueueSize is the number of events a queue can hold per block
const QueueSize = 16

type slot struct {
	used  bool
	event Event
}

// Queue is a fixed-capacity, allocation-free buffer of pending events.
// It is not safe for concurrent use.
type Queue struct {
	Logger *slog.Logger
	slots  [QueueSize]slot
}

// Add stores e in the first free slot. When every slot is taken the event
// is dropped and false is returned.
func (q *Queue) Add(e Event) bool {
	for i := range q.slots {
		if !q.slots[i].used {
			q.slots[i] = slot{used: true, event: e}
			return true
		}
	}
	q.logger().Warn("event queue full, dropping event", "capacity", QueueSize, "event", e.String())
	return false
}

// TakeAt removes every event scheduled at offset and returns the first one
// found in slot order. Later events at the same offset are discarded.
func (q *Queue) TakeAt(offset int) (Event, bool) {
	var (
		out   Event
		found bool
	)
	for i := range q.slots {
		s := &q.slots[i]
		if !s.used || s.event.Offset != offset {
			continue
		}
		if !found {
			out = s.event
			found = true
		}
		*s = slot{}
	}
	return out, found
}

// Expire drops every event whose offset is at or past n, the length of the
// block just rendered, and returns how many were dropped.
func (q *Queue) Expire(n int) int {
	dropped := 0
	for i := range q.slots {
		if q.slots[i].used && q.slots[i].event.Offset >= n {
			q.slots[i] = slot{}
			dropped++
		}
	}
	return dropped
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	n := 0
	for i := range q.slots {
		if q.slots[i].used {
			n++
		}
	}
	return n
}

// Clear drops every queued event
func (q *Queue) Clear() {
	q.slots = [QueueSize]slot{}
}

func (q *Queue) logger() *slog.Logger {
	if q.Logger != nil {
		return q.Logger
	}
	return slog.Default()
}
