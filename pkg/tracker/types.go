// Package tracker implements the drum pattern data structures
package tracker

import (
	"fmt"
	"strings"
)

// Velocities used by the text pattern format
const (
	VelocityNormal uint8 = 100
	VelocityAccent uint8 = 127
)

// Step is one row of a drum pattern
type Step struct {
	Trigger  bool
	Velocity uint8 // 1-127 when Trigger is set
}

// Pattern holds a looping sequence of steps
type Pattern struct {
	Speed uint8 // Ticks per row (1-31)
	Tempo uint8 // BPM (32-255)
	Rows  []Step
}

// NewPattern creates an empty pattern with classic tracker timing
func NewPattern(rows int) *Pattern {
	if rows < 1 {
		rows = 16
	}
	return &Pattern{
		Speed: 6,
		Tempo: 125,
		Rows:  make([]Step, rows),
	}
}

// FourOnTheFloor returns a 16 row pattern with a kick on every beat
func FourOnTheFloor() *Pattern {
	p, _ := ParsePattern("X...x...x...x...")
	return p
}

// ParsePattern reads a pattern from text: 'x' is a hit, 'X' an accented hit
// and '.' or '-' a rest. Whitespace and '|' are ignored.
func ParsePattern(s string) (*Pattern, error) {
	var rows []Step
	for i, r := range s {
		switch r {
		case 'x':
			rows = append(rows, Step{Trigger: true, Velocity: VelocityNormal})
		case 'X':
			rows = append(rows, Step{Trigger: true, Velocity: VelocityAccent})
		case '.', '-':
			rows = append(rows, Step{})
		case ' ', '\t', '\n', '|':
		default:
			return nil, fmt.Errorf("pattern: unexpected %q at %d", r, i)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("pattern: no rows")
	}
	p := NewPattern(len(rows))
	p.Rows = rows
	return p, nil
}

// String renders the pattern in the format ParsePattern reads
func (p *Pattern) String() string {
	var b strings.Builder
	for i, st := range p.Rows {
		if i > 0 && i%4 == 0 {
			b.WriteByte('|')
		}
		switch {
		case !st.Trigger:
			b.WriteByte('.')
		case st.Velocity >= VelocityAccent:
			b.WriteByte('X')
		default:
			b.WriteByte('x')
		}
	}
	return b.String()
}

// SetTempo sets BPM, clamped to 32-255
func (p *Pattern) SetTempo(bpm int) {
	if bpm < 32 {
		bpm = 32
	}
	if bpm > 255 {
		bpm = 255
	}
	p.Tempo = uint8(bpm)
}

// TickSamples returns the number of samples per tick.
// Classic tracker timing: ticks per second = Tempo * 2 / 5
func (p *Pattern) TickSamples(sampleRate int) int {
	ticksPerSecond := float64(p.Tempo) * 2.0 / 5.0
	return int(float64(sampleRate) / ticksPerSecond)
}

// RowSamples returns the number of samples per row
func (p *Pattern) RowSamples(sampleRate int) int {
	speed := int(p.Speed)
	if speed < 1 {
		speed = 1
	}
	return p.TickSamples(sampleRate) * speed
}

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName labels a pitch stage, e.g. octave 4 note 7 is "G4"
func NoteName(octave, note int) string {
	if note < 0 || note >= len(noteNames) {
		return "?" + fmt.Sprint(octave)
	}
	return noteNames[note] + fmt.Sprint(octave)
}

// Cycle moves step i through rest, hit and accent
func (p *Pattern) Cycle(i int) {
	if i < 0 || i >= len(p.Rows) {
		return
	}
	st := &p.Rows[i]
	switch {
	case !st.Trigger:
		*st = Step{Trigger: true, Velocity: VelocityNormal}
	case st.Velocity < VelocityAccent:
		st.Velocity = VelocityAccent
	default:
		*st = Step{}
	}
}
