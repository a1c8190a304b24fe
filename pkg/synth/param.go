package synth

// Param is a typed parameter change for a Voice. The set of implementations
// is closed: only the types in this file satisfy it.
type Param interface {
	isParam()
}

type (
	// AmpAttack is the attack time in milliseconds
	AmpAttack float32
	// AmpDecay is the decay time in milliseconds
	AmpDecay float32
	// AmpSustain is the sustain level in percent
	AmpSustain float32
	// AmpRelease is the release time in milliseconds
	AmpRelease float32
	// AmpCurve is the release curve exponent
	AmpCurve float32
	// StartPhase is the oscillator retrigger phase (0-1)
	StartPhase float32
	// DriveDb is the saturation drive in decibels
	DriveDb float32
)

// PitchOctave sets the octave of a pitch stage
type PitchOctave struct {
	Stage  int
	Octave int
}

// PitchNote sets the semitone of a pitch stage
type PitchNote struct {
	Stage int
	Note  int
}

// PitchTiming sets the glide time of a pitch stage in milliseconds
type PitchTiming struct {
	Stage int
	Ms    float32
}

func (AmpAttack) isParam()      {}
func (AmpDecay) isParam()       {}
func (AmpSustain) isParam()     {}
func (AmpRelease) isParam()     {}
func (AmpCurve) isParam()       {}
func (StartPhase) isParam()     {}
func (DriveDb) isParam()        {}
func (WaveType) isParam()       {}
func (SaturationType) isParam() {}
func (PitchOctave) isParam()    {}
func (PitchNote) isParam()      {}
func (PitchTiming) isParam()    {}
