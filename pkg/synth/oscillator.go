package synth

import (
	"github.com/chewxy/math32"
	"github.com/ktye/fft"
)

// TableSize is the length of the single-cycle wavetable
const TableSize = 1024

// WaveType selects the harmonic content of the oscillator's wavetable
type WaveType int

const (
	Sine WaveType = iota
	Wave909
)

func (w WaveType) String() string {
	switch w {
	case Sine:
		return "sine"
	case Wave909:
		return "909"
	}
	return "unknown"
}

// harmonic is one spectral bin assignment
type harmonic struct {
	bin       int
	amplitude float64
}

// harmonics returns the sparse spectrum for a wave type. Assignments are
// applied in order, so a repeated bin keeps its last amplitude.
func (w WaveType) harmonics() []harmonic {
	switch w {
	case Wave909:
		return []harmonic{{1, 1.0}, {2, 0.2}, {2, 0.1}}
	default:
		return []harmonic{{1, 1.0}}
	}
}

// Oscillator reads a spectrally generated single-cycle wavetable with a
// phase accumulator and linear interpolation.
type Oscillator struct {
	SampleRate float32
	Frequency  float32

	wave       WaveType
	startPhase float32
	phase      float32

	fft   fft.FFT
	bins  []complex128
	table [TableSize]float32
}

// NewOscillator creates a sine oscillator at 440 Hz
func NewOscillator(sampleRate int) (*Oscillator, error) {
	f, err := fft.New(TableSize)
	if err != nil {
		return nil, err
	}
	o := &Oscillator{
		SampleRate: float32(sampleRate),
		Frequency:  440,
		fft:        f,
		bins:       make([]complex128, TableSize),
	}
	o.SetWave(Sine)
	return o, nil
}

// SetWave regenerates the wavetable for the given wave type
func (o *Oscillator) SetWave(w WaveType) {
	o.wave = w
	for i := range o.bins {
		o.bins[i] = 0
	}
	for _, h := range w.harmonics() {
		o.bins[h.bin] = complex(h.amplitude, 0)
	}

	// The unnormalised inverse DFT is conj(DFT(conj(x))). Only the real part
	// is kept, and the real part of a conjugate is unchanged, so the forward
	// transform of the conjugated bins is enough.
	for i, b := range o.bins {
		o.bins[i] = complex(real(b), -imag(b))
	}
	o.bins = o.fft.Transform(o.bins)
	for i, b := range o.bins {
		o.table[i] = float32(real(b))
	}
}

// Wave returns the current wave type
func (o *Oscillator) Wave() WaveType {
	return o.wave
}

// Table returns a copy of the wavetable
func (o *Oscillator) Table() [TableSize]float32 {
	return o.table
}

// SetFrequency sets the oscillator frequency in Hz
func (o *Oscillator) SetFrequency(freq float32) {
	o.Frequency = freq
}

// SetStartPhase sets the phase the oscillator restarts from on Reset.
// Values outside [0, 1) are wrapped into it.
func (o *Oscillator) SetStartPhase(phase float32) {
	o.startPhase = phase - math32.Floor(phase)
}

// StartPhase returns the phase used by Reset
func (o *Oscillator) StartPhase() float32 {
	return o.startPhase
}

// Phase returns the current phase (0-1)
func (o *Oscillator) Phase() float32 {
	return o.phase
}

// Reset moves the phase back to the start phase
func (o *Oscillator) Reset() {
	o.phase = o.startPhase
}

// Process advances the phase and returns the next sample
func (o *Oscillator) Process() float32 {
	o.phase += o.Frequency / o.SampleRate
	if o.phase > 1 {
		o.phase -= 1
	}
	return o.lookup()
}

func (o *Oscillator) lookup() float32 {
	// phase can leave [0, 1) for negative or non-finite frequencies
	p := o.phase - math32.Floor(o.phase)
	if !(p >= 0 && p < 1) {
		p = 0
	}
	index := p * TableSize
	lo := math32.Floor(index)
	hi := math32.Ceil(index)
	frac := index - lo

	a := o.table[int(lo)%TableSize]
	b := o.table[int(hi)%TableSize]
	return a*(1-frac) + b*frac
}
