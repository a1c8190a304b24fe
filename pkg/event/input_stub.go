//go:build !rtmidi

package event

import (
	"errors"
	"log/slog"
)

// ErrNoMidiInput is returned when the binary was built without the rtmidi tag
var ErrNoMidiInput = errors.New("midi input not built (use -tags rtmidi)")

// Listen is unavailable in this build
func Listen(port string, sink Sink, logger *slog.Logger) (stop func(), err error) {
	return nil, ErrNoMidiInput
}
