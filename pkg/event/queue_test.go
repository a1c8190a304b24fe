package event

import (
	"io"
	"log/slog"
	"testing"
)

func newTestQueue() *Queue {
	return &Queue{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// TestQueue_Capacity tests that the queue holds exactly QueueSize events
func TestQueue_Capacity(t *testing.T) {
	q := newTestQueue()
	for i := 0; i < QueueSize; i++ {
		if !q.Add(On(i, 36, 100)) {
			t.Fatalf("Add %d should succeed", i)
		}
	}
	if q.Add(On(99, 36, 100)) {
		t.Error("Add past capacity should fail")
	}
	if q.Len() != QueueSize {
		t.Errorf("Len = %d, want %d", q.Len(), QueueSize)
	}
	if _, ok := q.TakeAt(99); ok {
		t.Error("Dropped event should not be retrievable")
	}
}

// TestQueue_TakeAt tests consuming events by offset
func TestQueue_TakeAt(t *testing.T) {
	q := newTestQueue()
	q.Add(On(5, 36, 100))
	q.Add(On(2, 40, 100))

	if _, ok := q.TakeAt(0); ok {
		t.Error("No event at offset 0")
	}
	e, ok := q.TakeAt(2)
	if !ok || e.Pitch != 40 {
		t.Errorf("TakeAt(2) = %v, %v", e, ok)
	}
	if _, ok := q.TakeAt(2); ok {
		t.Error("Event should be consumed")
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}
}

// TestQueue_SameOffset tests the first-slot-wins collision policy
func TestQueue_SameOffset(t *testing.T) {
	q := newTestQueue()
	q.Add(On(3, 36, 100))
	q.Add(On(3, 50, 100))
	q.Add(On(4, 60, 100))

	e, ok := q.TakeAt(3)
	if !ok || e.Pitch != 36 {
		t.Errorf("TakeAt(3) = %v, %v; want pitch 36", e, ok)
	}
	if q.Len() != 1 {
		t.Errorf("Both same-offset slots should be cleared, Len = %d", q.Len())
	}
}

// TestQueue_SlotReuse tests that freed slots accept new events
func TestQueue_SlotReuse(t *testing.T) {
	q := newTestQueue()
	for i := 0; i < QueueSize; i++ {
		q.Add(On(i, 36, 100))
	}
	q.TakeAt(0)
	if !q.Add(On(100, 36, 100)) {
		t.Error("Add should reuse the freed slot")
	}
}

// TestQueue_Expire tests dropping events past the end of a block
func TestQueue_Expire(t *testing.T) {
	q := newTestQueue()
	q.Add(On(10, 36, 100))
	q.Add(On(64, 36, 100))
	q.Add(On(500, 36, 100))

	if n := q.Expire(64); n != 2 {
		t.Errorf("Expire(64) = %d, want 2", n)
	}
	if _, ok := q.TakeAt(10); !ok {
		t.Error("In-block event should survive Expire")
	}
}

// TestQueue_Clear tests emptying the queue
func TestQueue_Clear(t *testing.T) {
	q := newTestQueue()
	q.Add(On(1, 36, 100))
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len = %d after Clear", q.Len())
	}
}
