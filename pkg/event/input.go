package event

// Sink receives events from a live input. Implementations must be safe to
// call from the input's goroutine.
type Sink interface {
	Enqueue(Event) bool
}
