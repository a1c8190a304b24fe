package params

import (
	"fmt"

	"github.com/oisee/kicksynth/pkg/synth"
)

// Spec describes the range and default of one parameter
type Spec struct {
	ID      string
	Name    string
	Min     float32
	Max     float32
	Default float32
	Step    float32
}

// Clamp limits x to the parameter's range
func (s Spec) Clamp(x float32) float32 {
	if x < s.Min {
		return s.Min
	}
	if x > s.Max {
		return s.Max
	}
	return x
}

var specs = []Spec{
	{ID: "octave_1", Name: "Octave 1", Min: 0, Max: 10, Default: 8, Step: 1},
	{ID: "note_1", Name: "Note 1", Min: 0, Max: 11, Default: 0, Step: 1},
	{ID: "timing_1", Name: "Timing 1 (ms)", Min: 0, Max: 10, Default: 0, Step: 0.1},

	{ID: "octave_2", Name: "Octave 2", Min: 0, Max: 10, Default: 4, Step: 1},
	{ID: "note_2", Name: "Note 2", Min: 0, Max: 11, Default: 7, Step: 1},
	{ID: "timing_2", Name: "Timing 2 (ms)", Min: 0, Max: 10, Default: 2.12, Step: 0.1},

	{ID: "octave_3", Name: "Octave 3", Min: 0, Max: 10, Default: 3, Step: 1},
	{ID: "note_3", Name: "Note 3", Min: 0, Max: 11, Default: 5, Step: 1},
	{ID: "timing_3", Name: "Timing 3 (ms)", Min: 0, Max: 50, Default: 16.55, Step: 0.5},

	{ID: "octave_4", Name: "Octave 4", Min: 0, Max: 10, Default: 1, Step: 1},
	{ID: "note_4", Name: "Note 4", Min: 0, Max: 11, Default: 9, Step: 1},
	{ID: "timing_4", Name: "Timing 4 (ms)", Min: 0, Max: 300, Default: 69.09, Step: 5},

	{ID: AmpAttack, Name: "Amp Attack (ms)", Min: 0, Max: 10, Default: 0.65, Step: 0.1},
	{ID: AmpDecay, Name: "Amp Decay (ms)", Min: 0, Max: 50, Default: 10, Step: 1},
	{ID: AmpSustain, Name: "Amp Sustain %", Min: 0, Max: 100, Default: 100, Step: 5},
	{ID: AmpRelease, Name: "Amp Release (ms)", Min: 0, Max: 1000, Default: 419.43, Step: 10},
	{ID: AmpCurve, Name: "Amp Exponential Factor A", Min: 1, Max: 10, Default: 4.31, Step: 0.1},

	{ID: Phase, Name: "Phase", Min: 0, Max: 1, Default: 0, Step: 0.05},
	{ID: WaveType, Name: "Wave Type", Min: 0, Max: 1, Default: 0, Step: 1},

	{ID: DriveDb, Name: "Drive", Min: 0, Max: 24, Default: 0, Step: 1},
	{ID: SaturationType, Name: "Saturation Type", Min: 0, Max: 3, Default: 0, Step: 1},
}

// All returns every parameter in display order
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Lookup returns the spec for id
func Lookup(id string) (Spec, bool) {
	for _, s := range specs {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}

// Values holds a value for each parameter identifier
type Values map[string]float32

// Defaults returns the default value of every parameter
func Defaults() Values {
	vals := make(Values, len(specs))
	for _, s := range specs {
		vals[s.ID] = s.Default
	}
	return vals
}

// ApplyDefaults sets every parameter to its default and settles the voice
// so the first note plays the default patch without a ramp.
func ApplyDefaults(v *synth.Voice) error {
	for _, s := range specs {
		if err := Set(v, s.ID, s.Default); err != nil {
			return fmt.Errorf("default %s: %w", s.ID, err)
		}
	}
	v.Settle()
	return nil
}
