//go:build !portaudio

package audio

import "errors"

// ErrNoPortAudio is returned when the binary was built without the portaudio tag
var ErrNoPortAudio = errors.New("portaudio backend not built (use -tags portaudio)")

// NewPortAudioOutput is unavailable in this build
func NewPortAudioOutput(player *Player, blockSize int) (Output, error) {
	return nil, ErrNoPortAudio
}
