//go:build rtmidi

package event

import (
	"fmt"
	"log/slog"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Listen forwards note messages from the named MIDI input port to sink.
// Live events carry no block position and are delivered at offset 0 of the
// next rendered block. The returned function stops listening.
func Listen(port string, sink Sink, logger *slog.Logger) (stop func(), err error) {
	if logger == nil {
		logger = slog.Default()
	}
	in, err := midi.FindInPort(port)
	if err != nil {
		return nil, fmt.Errorf("midi input %q: %w", port, err)
	}
	stopFn, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		e, err := Parse(0, msg)
		if err != nil {
			logger.Debug("ignoring midi message", "msg", msg.String(), "err", err)
			return
		}
		sink.Enqueue(e)
	}, midi.HandleError(func(err error) {
		logger.Warn("midi listener error", "port", port, "err", err)
	}))
	if err != nil {
		return nil, fmt.Errorf("midi listen %q: %w", port, err)
	}
	logger.Info("midi input connected", "port", port)
	return func() {
		stopFn()
		midi.CloseDriver()
	}, nil
}
