// Package audio drives a kick voice from hosts: pattern playback, real-time
// output and WAV export
package audio

import (
	"log/slog"
	"sync"

	"github.com/oisee/kicksynth/pkg/event"
	"github.com/oisee/kicksynth/pkg/params"
	"github.com/oisee/kicksynth/pkg/synth"
	"github.com/oisee/kicksynth/pkg/tracker"
)

// KickNote is the MIDI pitch used for pattern and manual triggers (GM bass drum)
const KickNote = 36

// Player owns a voice and serialises access to it between the audio
// callback and control goroutines (UI, MIDI input).
type Player struct {
	Voice      *synth.Voice
	Pattern    *tracker.Pattern
	SampleRate int

	// Playback state
	Playing bool
	Row     int // Current pattern row
	rowPos  int // Samples rendered in the current row

	values params.Values
	logger *slog.Logger

	mu sync.Mutex
}

// NewPlayer creates a voice at the given rate with the default patch installed
func NewPlayer(sampleRate int, pattern *tracker.Pattern, logger *slog.Logger) (*Player, error) {
	if logger == nil {
		logger = slog.Default()
	}
	v, err := synth.New(sampleRate, synth.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := params.ApplyDefaults(v); err != nil {
		return nil, err
	}
	if pattern == nil {
		pattern = tracker.FourOnTheFloor()
	}
	return &Player{
		Voice:      v,
		Pattern:    pattern,
		SampleRate: sampleRate,
		values:     params.Defaults(),
		logger:     logger,
	}, nil
}

// Play starts pattern playback from the current row
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Playing = true
	p.rowPos = 0
}

// Stop stops pattern playback; a kick already sounding decays naturally
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Playing = false
}

// SetPosition moves playback to row
func (p *Player) SetPosition(row int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if row < 0 || row >= len(p.Pattern.Rows) {
		row = 0
	}
	p.Row = row
	p.rowPos = 0
}

// SetTempo changes the pattern tempo in BPM
func (p *Player) SetTempo(bpm int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Pattern.SetTempo(bpm)
}

// CycleStep toggles pattern row i between rest, hit and accent
func (p *Player) CycleStep(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Pattern.Cycle(i)
}

// Snapshot returns a copy of the pattern for display
func (p *Player) Snapshot() tracker.Pattern {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := *p.Pattern
	snap.Rows = append([]tracker.Step(nil), p.Pattern.Rows...)
	return snap
}

// Trigger hits the kick at the start of the next block
func (p *Player) Trigger(velocity uint8) bool {
	return p.Enqueue(event.On(0, KickNote, velocity))
}

// Enqueue schedules an event for the next block
func (p *Player) Enqueue(e event.Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Voice.Enqueue(e)
}

// SetParameter routes a named parameter change to the voice
func (p *Player) SetParameter(id string, value float32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := params.Set(p.Voice, id, value); err != nil {
		return err
	}
	p.values[id] = value
	return nil
}

// Parameter returns the last value set for id
func (p *Player) Parameter(id string) float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[id]
}

// GetPlaybackInfo returns the current row and whether the pattern is playing
func (p *Player) GetPlaybackInfo() (row int, playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Row, p.Playing
}

// GenerateBlock renders one mono block
func (p *Player) GenerateBlock(buf []float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.schedule(len(buf))
	p.Voice.ProcessBlock(buf)
}

// GenerateStereo renders one block into left and copies it to right
func (p *Player) GenerateStereo(left, right []float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	p.schedule(n)
	p.Voice.ProcessStereo(left, right)
}

// schedule enqueues the pattern triggers that fall inside the next n samples
// at their exact offsets.
func (p *Player) schedule(n int) {
	if !p.Playing || len(p.Pattern.Rows) == 0 {
		return
	}
	rowSamples := p.Pattern.RowSamples(p.SampleRate)
	if rowSamples < 1 {
		rowSamples = 1
	}

	for off := 0; off < n; {
		if p.rowPos == 0 {
			if st := p.Pattern.Rows[p.Row]; st.Trigger {
				if !p.Voice.Enqueue(event.On(off, KickNote, st.Velocity)) {
					p.logger.Warn("pattern trigger dropped", "row", p.Row, "offset", off)
				}
			}
		}

		step := rowSamples - p.rowPos
		if step > n-off {
			step = n - off
		}
		p.rowPos += step
		off += step

		if p.rowPos >= rowSamples {
			p.rowPos = 0
			p.Row++
			if p.Row >= len(p.Pattern.Rows) {
				p.Row = 0 // Loop
			}
		}
	}
}
