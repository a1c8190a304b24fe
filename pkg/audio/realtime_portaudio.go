//go:build portaudio

package audio

import "github.com/gordonklaus/portaudio"

// PortAudioOutput plays a player through a portaudio stereo callback stream
type PortAudioOutput struct {
	stream *portaudio.Stream
}

// NewPortAudioOutput opens the default output device and starts rendering
func NewPortAudioOutput(player *Player, blockSize int) (Output, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	callback := func(out [][]float32) {
		player.GenerateStereo(out[0], out[1])
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, float64(player.SampleRate), blockSize, callback)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	return &PortAudioOutput{stream: stream}, nil
}

// Close stops the stream and releases portaudio
func (o *PortAudioOutput) Close() error {
	o.stream.Stop()
	err := o.stream.Close()
	portaudio.Terminate()
	return err
}
