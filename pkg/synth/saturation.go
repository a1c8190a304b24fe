package synth

import "github.com/chewxy/math32"

// SaturationType selects the waveshaping curve
type SaturationType int

const (
	SaturationNone SaturationType = iota
	SaturationSoft
	SaturationClip
	SaturationExtremeClip
)

func (t SaturationType) String() string {
	switch t {
	case SaturationNone:
		return "none"
	case SaturationSoft:
		return "soft"
	case SaturationClip:
		return "clip"
	case SaturationExtremeClip:
		return "extreme"
	}
	return "unknown"
}

// Saturation is a waveshaper driven by a smoothed linear gain
type Saturation struct {
	Type  SaturationType
	drive Smoothed[float32]
}

// NewSaturation creates a soft saturator at unity drive
func NewSaturation() *Saturation {
	return &Saturation{
		Type:  SaturationSoft,
		drive: NewSmoothed[float32](1),
	}
}

// SetDriveDb sets the drive target from a decibel value
func (s *Saturation) SetDriveDb(db float32) {
	s.drive.SetTarget(DbToPower(db))
}

// Drive returns the current linear drive
func (s *Saturation) Drive() float32 {
	return s.drive.Value()
}

// Settle snaps the drive to its target
func (s *Saturation) Settle() {
	s.drive.Reset(s.drive.Target())
}

// Process shapes one sample
func (s *Saturation) Process(x float32) float32 {
	s.drive.Advance()
	d := s.drive.Value()

	switch s.Type {
	case SaturationSoft:
		return math32.Tanh(x * d)
	case SaturationClip:
		return clamp(x*d, -1, 1)
	case SaturationExtremeClip:
		return clamp(x*d*d, -1, 1)
	}
	return x
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
