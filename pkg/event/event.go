// Package event holds the note events a voice consumes and the fixed-size
// per-block queue they wait in.
package event

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

// ErrUnsupportedStatus is returned by Parse for anything but note-on or note-off
var ErrUnsupportedStatus = errors.New("unsupported midi status")

// Action is what an event asks the voice to do
type Action uint8

const (
	NoteOn Action = iota
	NoteOff
)

func (a Action) String() string {
	if a == NoteOn {
		return "note-on"
	}
	return "note-off"
}

// Event is a note event scheduled at a sample offset within the current block
type Event struct {
	Offset   int
	Action   Action
	Pitch    uint8
	Velocity uint8
}

// New builds an event, treating velocity 0 as a note-off whatever the action
func New(offset int, action Action, pitch, velocity uint8) Event {
	if velocity == 0 {
		action = NoteOff
	}
	return Event{Offset: offset, Action: action, Pitch: pitch, Velocity: velocity}
}

// On builds a note-on event
func On(offset int, pitch, velocity uint8) Event {
	return New(offset, NoteOn, pitch, velocity)
}

// Off builds a note-off event
func Off(offset int, pitch uint8) Event {
	return New(offset, NoteOff, pitch, 0)
}

func (e Event) String() string {
	return fmt.Sprintf("%s pitch=%d vel=%d @%d", e.Action, e.Pitch, e.Velocity, e.Offset)
}

// Message encodes the event as a raw MIDI channel message on channel 0
func (e Event) Message() midi.Message {
	if e.Action == NoteOn {
		return midi.NoteOn(0, e.Pitch, e.Velocity)
	}
	return midi.NoteOffVelocity(0, e.Pitch, e.Velocity)
}

// Parse decodes a raw MIDI note message into an event at the given offset
func Parse(offset int, raw []byte) (Event, error) {
	msg := midi.Message(raw)

	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		return New(offset, NoteOn, key, vel), nil
	case msg.GetNoteOff(&ch, &key, &vel):
		return New(offset, NoteOff, key, vel), nil
	case msg.GetNoteEnd(&ch, &key):
		// note-on with velocity zero
		return New(offset, NoteOff, key, 0), nil
	}

	if len(raw) == 0 {
		return Event{}, fmt.Errorf("empty message: %w", ErrUnsupportedStatus)
	}
	return Event{}, fmt.Errorf("status 0x%02X: %w", raw[0]&0xF0, ErrUnsupportedStatus)
}
