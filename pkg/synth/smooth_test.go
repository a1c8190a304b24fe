package synth

import "testing"

// TestSmoothed_FloatConverges tests that a float ramp reaches its target without overshoot
func TestSmoothed_FloatConverges(t *testing.T) {
	s := NewSmoothed[float32](0)
	s.SetTarget(1)

	prev := s.Value()
	for i := 0; i < 20000; i++ {
		s.Advance()
		v := s.Value()
		if v < prev {
			t.Fatalf("step %d: value fell from %v to %v", i, prev, v)
		}
		if v > 1 {
			t.Fatalf("step %d: value %v overshot target 1", i, v)
		}
		prev = v
	}
	if !s.Settled() {
		t.Errorf("Should be settled after 20000 steps, value %v", s.Value())
	}
	if s.Value() != 1 {
		t.Errorf("Value should be exactly 1, got %v", s.Value())
	}
}

// TestSmoothed_FloatFirstStep tests the size of the first smoothing step
func TestSmoothed_FloatFirstStep(t *testing.T) {
	s := NewSmoothed(0.0)
	s.SetTarget(10)
	s.Advance()
	if got := s.Value(); got != 0.01 {
		t.Errorf("First step should be 0.01, got %v", got)
	}
}

// TestSmoothed_FloatDownward tests a falling ramp
func TestSmoothed_FloatDownward(t *testing.T) {
	s := NewSmoothed[float32](5)
	s.SetTarget(-5)
	for i := 0; i < 20000; i++ {
		s.Advance()
		if s.Value() < -5 {
			t.Fatalf("step %d: value %v overshot target -5", i, s.Value())
		}
	}
	if s.Value() != -5 {
		t.Errorf("Value should be exactly -5, got %v", s.Value())
	}
}

// TestSmoothed_IntSteps tests that integer ramps step by at least one
func TestSmoothed_IntSteps(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		wantSteps int
	}{
		{"up by ten", 0, 10, 10},
		{"down by ten", 10, 0, 10},
		{"up by one", 41, 42, 1},
		{"unchanged", 7, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSmoothed(tt.from)
			s.SetTarget(tt.to)
			steps := 0
			for !s.Settled() {
				s.Advance()
				steps++
				if steps > 1000 {
					t.Fatalf("did not settle, value %d", s.Value())
				}
			}
			if steps != tt.wantSteps {
				t.Errorf("Expected %d steps, got %d", tt.wantSteps, steps)
			}
		})
	}
}

// TestSmoothed_IntBounded tests that large integer ramps settle without overshoot
func TestSmoothed_IntBounded(t *testing.T) {
	s := NewSmoothed(0)
	s.SetTarget(48000)
	for i := 0; i < 100000 && !s.Settled(); i++ {
		s.Advance()
		if s.Value() > 48000 {
			t.Fatalf("step %d: value %d overshot", i, s.Value())
		}
	}
	if !s.Settled() {
		t.Errorf("Should settle, value %d", s.Value())
	}
}

// TestSmoothed_Reset tests that Reset jumps without ramping
func TestSmoothed_Reset(t *testing.T) {
	s := NewSmoothed[float32](0)
	s.SetTarget(3)
	s.Reset(2)
	if s.Value() != 2 || s.Target() != 2 {
		t.Errorf("Reset should set value and target to 2, got %v/%v", s.Value(), s.Target())
	}
	s.Advance()
	if s.Value() != 2 {
		t.Errorf("Settled value should not move, got %v", s.Value())
	}
}
