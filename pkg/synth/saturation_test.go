package synth

import (
	"math"
	"testing"
)

// TestSaturation_NoneIsIdentity tests passthrough for every drive setting
func TestSaturation_NoneIsIdentity(t *testing.T) {
	s := NewSaturation()
	s.Type = SaturationNone
	s.SetDriveDb(24)
	s.Settle()

	for _, x := range []float32{-3, -1, -0.5, 0, 0.001, 0.7, 1, 42} {
		if got := s.Process(x); got != x {
			t.Errorf("Process(%v) = %v, want identity", x, got)
		}
	}
}

// TestSaturation_ClipBounds tests that clipping curves stay within [-1, 1]
func TestSaturation_ClipBounds(t *testing.T) {
	for _, typ := range []SaturationType{SaturationClip, SaturationExtremeClip, SaturationSoft} {
		t.Run(typ.String(), func(t *testing.T) {
			s := NewSaturation()
			s.Type = typ
			s.SetDriveDb(12)
			for x := float32(-4); x <= 4; x += 0.01 {
				if y := s.Process(x); y < -1 || y > 1 {
					t.Fatalf("Process(%v) = %v, outside [-1, 1]", x, y)
				}
			}
		})
	}
}

// TestSaturation_Shapes tests each curve at a settled drive
func TestSaturation_Shapes(t *testing.T) {
	s := NewSaturation()
	s.SetDriveDb(10) // power form: drive 10
	s.Settle()

	tests := []struct {
		typ  SaturationType
		in   float32
		want float32
	}{
		{SaturationSoft, 0.05, float32(math.Tanh(0.5))},
		{SaturationClip, 0.05, 0.5},
		{SaturationClip, -0.2, -1},
		{SaturationExtremeClip, 0.005, 0.5},
		{SaturationExtremeClip, 0.05, 1},
	}
	for _, tt := range tests {
		s.Type = tt.typ
		if got := s.Process(tt.in); !approx(got, tt.want, 1e-4) {
			t.Errorf("%v Process(%v) = %v, want %v", tt.typ, tt.in, got, tt.want)
		}
	}
}

// TestSaturation_DriveRamps tests that drive changes are smoothed
func TestSaturation_DriveRamps(t *testing.T) {
	s := NewSaturation()
	s.SetDriveDb(10)
	s.Process(0)
	if d := s.Drive(); d <= 1 || d >= 10 {
		t.Errorf("Drive after one sample = %v, want between 1 and 10", d)
	}
	if !approx(s.Drive(), 1.009, 1e-4) {
		t.Errorf("Drive after one sample = %v, want 1.009", s.Drive())
	}
}
