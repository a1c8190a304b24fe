// Package params maps host parameter identifiers onto typed voice parameters.
package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oisee/kicksynth/pkg/synth"
)

var (
	// ErrUnknownParameter is returned for an identifier no component recognises
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrInvalidSelector is returned for an out-of-range wave or saturation type
	ErrInvalidSelector = errors.New("invalid selector")
	// ErrInvalidStage is returned when a pitch identifier has no stage digit 1-4
	ErrInvalidStage = errors.New("invalid pitch stage")
)

// Identifiers for the non-pitch parameters
const (
	AmpAttack      = "amp_attack"
	AmpDecay       = "amp_decay"
	AmpSustain     = "amp_sustain"
	AmpRelease     = "amp_release"
	AmpCurve       = "amp_exponential_factor_a"
	Phase          = "phase"
	WaveType       = "waveType"
	DriveDb        = "driveDb"
	SaturationType = "saturationType"
)

// Parse converts an identifier and value into a voice parameter.
// Pitch identifiers contain "octave", "note" or "timing" and end with the
// 1-based stage number.
func Parse(id string, value float32) (synth.Param, error) {
	switch {
	case strings.Contains(id, "octave"):
		stage, err := stageIndex(id)
		if err != nil {
			return nil, err
		}
		return synth.PitchOctave{Stage: stage, Octave: int(value)}, nil

	case strings.Contains(id, "note"):
		stage, err := stageIndex(id)
		if err != nil {
			return nil, err
		}
		return synth.PitchNote{Stage: stage, Note: int(value)}, nil

	case strings.Contains(id, "timing"):
		stage, err := stageIndex(id)
		if err != nil {
			return nil, err
		}
		return synth.PitchTiming{Stage: stage, Ms: value}, nil
	}

	switch id {
	case AmpAttack:
		return synth.AmpAttack(value), nil
	case AmpDecay:
		return synth.AmpDecay(value), nil
	case AmpSustain:
		return synth.AmpSustain(value), nil
	case AmpRelease:
		return synth.AmpRelease(value), nil
	case AmpCurve:
		return synth.AmpCurve(value), nil
	case Phase:
		return synth.StartPhase(value), nil
	case DriveDb:
		return synth.DriveDb(value), nil

	case WaveType:
		switch int(value) {
		case 0:
			return synth.Sine, nil
		case 1:
			return synth.Wave909, nil
		}
		return nil, fmt.Errorf("%s=%v: %w", id, value, ErrInvalidSelector)

	case SaturationType:
		switch int(value) {
		case 0:
			return synth.SaturationNone, nil
		case 1:
			return synth.SaturationSoft, nil
		case 2:
			return synth.SaturationClip, nil
		case 3:
			return synth.SaturationExtremeClip, nil
		}
		return nil, fmt.Errorf("%s=%v: %w", id, value, ErrInvalidSelector)
	}

	return nil, fmt.Errorf("%q: %w", id, ErrUnknownParameter)
}

func stageIndex(id string) (int, error) {
	if id == "" {
		return 0, ErrInvalidStage
	}
	d := id[len(id)-1]
	if d < '1' || d > '0'+synth.PitchStages {
		return 0, fmt.Errorf("%q: %w", id, ErrInvalidStage)
	}
	return int(d - '1'), nil
}

// Set parses id and value and applies the result to v
func Set(v *synth.Voice, id string, value float32) error {
	p, err := Parse(id, value)
	if err != nil {
		return err
	}
	if err := v.Apply(p); err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	return nil
}
