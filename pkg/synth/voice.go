// Package synth implements a single-voice kick drum: a pitch-gliding
// wavetable oscillator shaped by an amplitude envelope and a saturator,
// rendered sample by sample with sample-accurate note events.
package synth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/oisee/kicksynth/pkg/event"
)

var (
	// ErrInvalidSampleRate is returned by New for a non-positive sample rate
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrInvalidStage is returned for a pitch stage index outside 0-3
	ErrInvalidStage = errors.New("invalid pitch stage")
	// ErrInvalidSelector is returned for an unknown wave or saturation type
	ErrInvalidSelector = errors.New("invalid selector")
)

const (
	// blockGain is the fixed -12 dB attenuation applied before saturation
	blockGain = 0.25
	// safetyLimit bounds the output; exceeding it means a parameter is out of range
	safetyLimit = 1.5
)

// Option configures a Voice
type Option func(*Voice)

// WithLogger sets the logger used for diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(v *Voice) { v.logger = l }
}

// Voice renders the kick drum. A Voice must be driven by one goroutine at a
// time; callers that enqueue from another goroutine must lock around it.
type Voice struct {
	SampleRate int

	Osc   *Oscillator
	Amp   *AmpEnvelope
	Pitch *PitchEnvelope
	Sat   *Saturation

	queue  event.Queue
	logger *slog.Logger
}

// New creates a voice for the given sample rate
func New(sampleRate int, opts ...Option) (*Voice, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%d: %w", sampleRate, ErrInvalidSampleRate)
	}
	osc, err := NewOscillator(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("wavetable: %w", err)
	}

	v := &Voice{
		SampleRate: sampleRate,
		Osc:        osc,
		Amp:        NewAmpEnvelope(sampleRate),
		Pitch:      NewPitchEnvelope(sampleRate),
		Sat:        NewSaturation(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.queue.Logger = v.logger
	return v, nil
}

// Enqueue schedules an event for the next ProcessBlock call.
// It returns false when the queue is full and the event was dropped.
func (v *Voice) Enqueue(e event.Event) bool {
	return v.queue.Add(e)
}

// Pending returns the number of queued events
func (v *Voice) Pending() int {
	return v.queue.Len()
}

// Settle snaps every smoothed parameter to its target
func (v *Voice) Settle() {
	v.Amp.Settle()
	v.Sat.Settle()
}

// Apply routes a parameter change to the component that owns it
func (v *Voice) Apply(p Param) error {
	switch p := p.(type) {
	case AmpAttack:
		v.Amp.SetAttack(float32(p))
	case AmpDecay:
		v.Amp.SetDecay(float32(p))
	case AmpSustain:
		v.Amp.SetSustain(float32(p))
	case AmpRelease:
		v.Amp.SetRelease(float32(p))
	case AmpCurve:
		v.Amp.SetCurve(float32(p))
	case StartPhase:
		v.Osc.SetStartPhase(float32(p))
	case WaveType:
		if p != Sine && p != Wave909 {
			return fmt.Errorf("wave type %d: %w", int(p), ErrInvalidSelector)
		}
		v.Osc.SetWave(p)
	case DriveDb:
		v.Sat.SetDriveDb(float32(p))
	case SaturationType:
		if p < SaturationNone || p > SaturationExtremeClip {
			return fmt.Errorf("saturation type %d: %w", int(p), ErrInvalidSelector)
		}
		v.Sat.Type = p
	case PitchOctave:
		return v.Pitch.SetOctave(p.Stage, p.Octave)
	case PitchNote:
		return v.Pitch.SetNote(p.Stage, p.Note)
	case PitchTiming:
		return v.Pitch.SetTiming(p.Stage, p.Ms)
	default:
		return fmt.Errorf("unhandled parameter %T", p)
	}
	return nil
}

func (v *Voice) handle(e event.Event) {
	switch e.Action {
	case event.NoteOn:
		v.Osc.Reset()
		v.Amp.NoteOn()
		v.Pitch.NoteOn()
	case event.NoteOff:
		v.Amp.NoteOff()
		v.Pitch.NoteOff()
	}
}

// ProcessBlock renders len(buf) samples into buf, dispatching queued events
// at their sample offsets. Events scheduled past the end of buf are dropped;
// an empty buf leaves the queue untouched.
func (v *Voice) ProcessBlock(buf []float32) {
	if len(buf) == 0 {
		return
	}
	for i := range buf {
		if e, ok := v.queue.TakeAt(i); ok {
			v.handle(e)
		}

		v.Osc.SetFrequency(v.Pitch.Frequency())

		x := v.Osc.Process() * v.Amp.Process()
		x *= blockGain
		x = v.Sat.Process(x)

		if math32.Abs(x) > safetyLimit {
			v.logger.Warn("output clipped", "value", x, "offset", i)
			x = clamp(x, -safetyLimit, safetyLimit)
		}

		buf[i] = x
	}

	if n := v.queue.Expire(len(buf)); n > 0 {
		v.logger.Warn("dropped events past end of block", "count", n, "block", len(buf))
	}
}

// ProcessStereo renders into left and copies the result into right
func (v *Voice) ProcessStereo(left, right []float32) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	v.ProcessBlock(left[:n])
	copy(right, left[:n])
}
