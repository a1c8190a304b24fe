package synth

import "github.com/chewxy/math32"

// DbToLinear converts a decibel value into an amplitude ratio, 10^(db/20)
func DbToLinear(db float32) float32 {
	return math32.Pow(10, db/20)
}

// DbToPower converts a decibel value into a power ratio, 10^(db/10).
// Saturation drive is scaled with this form, so +6 dB drives roughly 4x.
func DbToPower(db float32) float32 {
	return math32.Pow(10, db/10)
}

// MidiToFreq converts a MIDI note number to a frequency in Hz (A4 = 69 = 440 Hz)
func MidiToFreq(note uint8) float32 {
	return 440 * math32.Pow(2, (float32(note)-69)/12)
}

// OctaveNoteToMidi maps an octave and a semitone within it to a MIDI note number.
// Octave 0 note 0 is MIDI note 12.
func OctaveNoteToMidi(octave, note int) uint8 {
	return uint8(octave*12 + note + 12)
}

// MsToSamples converts milliseconds to a whole number of samples, never less than one
func MsToSamples(ms float32, sampleRate int) int {
	n := int(ms / 1000 * float32(sampleRate))
	if n < 1 {
		return 1
	}
	return n
}
