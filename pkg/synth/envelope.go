package synth

import "github.com/chewxy/math32"

// EnvelopeState is the running state of an amplitude envelope
type EnvelopeState int

const (
	Idle EnvelopeState = iota
	Active
)

func (s EnvelopeState) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// EnvelopePhase names the segment an active envelope is in
type EnvelopePhase int

const (
	PhaseAttack EnvelopePhase = iota
	PhaseDecay
	PhaseRelease
	PhaseDone
)

// AmpEnvelope is a one-shot attack/decay/release amplitude envelope.
// Decay falls from full level to the sustain level and release falls from
// sustain to silence; there is no held sustain plateau.
type AmpEnvelope struct {
	sampleRate int
	sample     int
	state      EnvelopeState

	attack  Smoothed[int]
	decay   Smoothed[int]
	release Smoothed[int]
	sustain Smoothed[float32]
	curve   Smoothed[float32]
}

// NewAmpEnvelope creates an idle envelope with all times at one sample
func NewAmpEnvelope(sampleRate int) *AmpEnvelope {
	return &AmpEnvelope{
		sampleRate: sampleRate,
		attack:     NewSmoothed(1),
		decay:      NewSmoothed(1),
		release:    NewSmoothed(1),
		sustain:    NewSmoothed[float32](1),
		curve:      NewSmoothed[float32](1),
	}
}

// SetAttack sets the attack time in milliseconds
func (e *AmpEnvelope) SetAttack(ms float32) {
	e.attack.SetTarget(MsToSamples(ms, e.sampleRate))
}

// SetDecay sets the decay time in milliseconds
func (e *AmpEnvelope) SetDecay(ms float32) {
	e.decay.SetTarget(MsToSamples(ms, e.sampleRate))
}

// SetRelease sets the release time in milliseconds
func (e *AmpEnvelope) SetRelease(ms float32) {
	e.release.SetTarget(MsToSamples(ms, e.sampleRate))
}

// SetSustain sets the sustain level as a percentage (0-100)
func (e *AmpEnvelope) SetSustain(percent float32) {
	e.sustain.SetTarget(percent / 100)
}

// SetCurve sets the exponent applied to the release ratio
func (e *AmpEnvelope) SetCurve(exp float32) {
	e.curve.SetTarget(exp)
}

// Settle snaps every smoothed parameter to its target
func (e *AmpEnvelope) Settle() {
	e.attack.Reset(e.attack.Target())
	e.decay.Reset(e.decay.Target())
	e.release.Reset(e.release.Target())
	e.sustain.Reset(e.sustain.Target())
	e.curve.Reset(e.curve.Target())
}

// NoteOn restarts the envelope from the beginning of the attack
func (e *AmpEnvelope) NoteOn() {
	e.sample = 0
	e.state = Active
}

// NoteOff is ignored; the envelope always runs to the end of its release.
func (e *AmpEnvelope) NoteOff() {}

// State returns whether the envelope is sounding
func (e *AmpEnvelope) State() EnvelopeState {
	return e.state
}

// Phase returns the segment the next Process call will render
func (e *AmpEnvelope) Phase() EnvelopePhase {
	if e.state == Idle {
		return PhaseDone
	}
	a, d, r := e.attack.Value(), e.decay.Value(), e.release.Value()
	switch {
	case e.sample < a:
		return PhaseAttack
	case e.sample < a+d:
		return PhaseDecay
	case e.sample < a+d+r:
		return PhaseRelease
	}
	return PhaseDone
}

// Process returns the envelope level for the current sample and advances it
func (e *AmpEnvelope) Process() float32 {
	if e.state == Idle {
		return 0
	}

	out := e.level()

	e.attack.Advance()
	e.decay.Advance()
	e.release.Advance()
	e.sustain.Advance()
	e.curve.Advance()
	e.sample++

	return out
}

func (e *AmpEnvelope) level() float32 {
	a, d, r := e.attack.Value(), e.decay.Value(), e.release.Value()
	sustain := e.sustain.Value()

	switch e.Phase() {
	case PhaseAttack:
		if a == 0 {
			return 1
		}
		return float32(e.sample) / float32(a)

	case PhaseDecay:
		if d == 0 {
			return sustain
		}
		ratio := 1 - float32(e.sample-a)/float32(d)
		return sustain + (1-sustain)*ratio

	case PhaseRelease:
		if r == 0 {
			return 0
		}
		ratio := 1 - float32(e.sample-a-d)/float32(r)
		return sustain * math32.Pow(ratio, e.curve.Value())
	}

	e.state = Idle
	return 0
}
