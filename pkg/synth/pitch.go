package synth

// PitchStages is the number of glide stages in a pitch envelope
const PitchStages = 4

// baselineFreq is where every glide starts from on note-on
const baselineFreq = 20

// PitchStage is one glide target: the frequency reached after Duration samples
type PitchStage struct {
	Frequency float32
	Octave    int
	Note      int
	Duration  int
}

func (p *PitchStage) recalculate() {
	p.Frequency = MidiToFreq(OctaveNoteToMidi(p.Octave, p.Note))
}

// Midi returns the MIDI note number for the stage's octave and note
func (p PitchStage) Midi() uint8 {
	return OctaveNoteToMidi(p.Octave, p.Note)
}

func baselineStage() PitchStage {
	return PitchStage{Frequency: baselineFreq}
}

// PitchEnvelope glides linearly through up to four stages after each note-on
// and holds the last stage's frequency afterwards.
type PitchEnvelope struct {
	sampleRate int
	stages     [PitchStages]PitchStage

	elapsed    int
	stage      int
	stageStart int
	prev       PitchStage
	next       PitchStage
}

// NewPitchEnvelope creates an envelope whose stages all sit at the 20 Hz baseline
func NewPitchEnvelope(sampleRate int) *PitchEnvelope {
	p := &PitchEnvelope{sampleRate: sampleRate}
	for i := range p.stages {
		p.stages[i] = baselineStage()
	}
	p.prev = baselineStage()
	p.next = p.stages[0]
	return p
}

func validStage(i int) error {
	if i < 0 || i >= PitchStages {
		return ErrInvalidStage
	}
	return nil
}

// SetOctave sets the octave of stage i and recomputes its frequency
func (p *PitchEnvelope) SetOctave(i, octave int) error {
	if err := validStage(i); err != nil {
		return err
	}
	p.stages[i].Octave = octave
	p.stages[i].recalculate()
	return nil
}

// SetNote sets the semitone of stage i and recomputes its frequency
func (p *PitchEnvelope) SetNote(i, note int) error {
	if err := validStage(i); err != nil {
		return err
	}
	p.stages[i].Note = note
	p.stages[i].recalculate()
	return nil
}

// SetTiming sets the glide time of stage i in milliseconds and recomputes
// its frequency from the stage's octave and note
func (p *PitchEnvelope) SetTiming(i int, ms float32) error {
	if err := validStage(i); err != nil {
		return err
	}
	p.stages[i].Duration = MsToSamples(ms, p.sampleRate)
	p.stages[i].recalculate()
	return nil
}

// SetFrequency programs stage i with an explicit frequency
func (p *PitchEnvelope) SetFrequency(i int, hz float32) error {
	if err := validStage(i); err != nil {
		return err
	}
	p.stages[i].Frequency = hz
	return nil
}

// SetDuration programs stage i with an explicit length in samples (minimum 1)
func (p *PitchEnvelope) SetDuration(i, samples int) error {
	if err := validStage(i); err != nil {
		return err
	}
	if samples < 1 {
		samples = 1
	}
	p.stages[i].Duration = samples
	return nil
}

// Stage returns a copy of stage i
func (p *PitchEnvelope) Stage(i int) PitchStage {
	return p.stages[i]
}

// ActiveStage returns the index of the stage currently being glided toward.
// It stays at the last stage once the glide has completed.
func (p *PitchEnvelope) ActiveStage() int {
	return p.stage
}

// NoteOn restarts the glide from the baseline toward stage 0
func (p *PitchEnvelope) NoteOn() {
	p.elapsed = 0
	p.stage = 0
	p.stageStart = 0
	p.prev = baselineStage()
	p.next = p.stages[0]
}

// NoteOff is ignored; the glide runs to completion.
func (p *PitchEnvelope) NoteOff() {}

// Frequency returns the glide frequency for the current sample and advances the playhead
func (p *PitchEnvelope) Frequency() float32 {
	since := p.elapsed - p.stageStart

	var fraction float32 = 1
	if p.next.Duration != 0 {
		fraction = float32(since) / float32(p.next.Duration)
	}

	freq := p.prev.Frequency + (p.next.Frequency-p.prev.Frequency)*fraction

	if p.elapsed == p.stageStart+p.next.Duration {
		p.advanceStage()
	}
	p.elapsed++

	return freq
}

func (p *PitchEnvelope) advanceStage() {
	p.prev = p.next
	if p.stage+1 < PitchStages {
		p.next = p.stages[p.stage+1]
		p.stage++
	}
	p.stageStart += p.prev.Duration
}
