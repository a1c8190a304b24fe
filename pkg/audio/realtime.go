package audio

import (
	"time"

	"github.com/ebitengine/oto/v3"
)

// Output is a running real-time audio stream
type Output interface {
	Close() error
}

// RealtimeOutput plays a player through oto
type RealtimeOutput struct {
	player    *Player
	otoCtx    *oto.Context
	otoPlayer *oto.Player
}

// NewRealtimeOutput creates a new real-time audio output
func NewRealtimeOutput(player *Player, blockSize int) (*RealtimeOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   player.SampleRate,
		ChannelCount: 1, // Mono
		Format:       oto.FormatFloat32LE,
		BufferSize:   20 * time.Millisecond,
	}

	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	rt := &RealtimeOutput{
		player: player,
		otoCtx: otoCtx,
	}

	rt.otoPlayer = otoCtx.NewPlayer(NewAudioReader(player, blockSize))
	rt.otoPlayer.Play()

	return rt, nil
}

// Close stops the audio output
func (rt *RealtimeOutput) Close() error {
	if rt.otoPlayer != nil {
		return rt.otoPlayer.Close()
	}
	return nil
}
