package synth

import "math"

// SmoothDivisor is the fraction of the remaining distance covered per step
const SmoothDivisor = 1000.0

// smoothEpsilon is the step size below which a float value snaps to its target
const smoothEpsilon = 1e-6

// Number is the set of value types a Smoothed can track
type Number interface {
	float32 | float64 | int | int32
}

// Smoothed moves a current value toward a target a little on every sample
// so that parameter changes ramp instead of stepping.
type Smoothed[T Number] struct {
	target  T
	current T
}

// NewSmoothed creates a value already settled at v
func NewSmoothed[T Number](v T) Smoothed[T] {
	return Smoothed[T]{target: v, current: v}
}

// Value returns the current value
func (s *Smoothed[T]) Value() T {
	return s.current
}

// Target returns the value being approached
func (s *Smoothed[T]) Target() T {
	return s.target
}

// SetTarget sets a new target; current follows on subsequent Advance calls
func (s *Smoothed[T]) SetTarget(v T) {
	s.target = v
}

// Reset jumps both target and current to v
func (s *Smoothed[T]) Reset(v T) {
	s.target = v
	s.current = v
}

// Settled reports whether current has reached target
func (s *Smoothed[T]) Settled() bool {
	return s.current == s.target
}

// Advance performs one smoothing step
func (s *Smoothed[T]) Advance() {
	if s.current == s.target {
		return
	}

	delta := float64(s.target-s.current) / SmoothDivisor

	switch any(s.current).(type) {
	case float32, float64:
		if math.Abs(delta) < smoothEpsilon {
			s.current = s.target
			return
		}
		next := s.current + T(delta)
		if next == s.current {
			// delta is below the precision of current
			next = s.target
		}
		s.current = next
	default:
		step := math.Ceil(math.Abs(delta))
		if delta < 0 {
			step = -step
		}
		s.current += T(step)
	}
}
