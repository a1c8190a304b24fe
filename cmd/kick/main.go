package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oisee/kicksynth/pkg/audio"
	"github.com/oisee/kicksynth/pkg/event"
	"github.com/oisee/kicksynth/pkg/tracker"
	"github.com/oisee/kicksynth/pkg/tui"
)

// paramFlags collects repeated -set id=value overrides
type paramFlags []string

func (p *paramFlags) String() string     { return strings.Join(*p, ",") }
func (p *paramFlags) Set(s string) error { *p = append(*p, s); return nil }

func main() {
	rate := flag.Int("rate", 48000, "Sample rate in Hz")
	block := flag.Int("block", audio.DefaultBlockSize, "Frames per render block")
	out := flag.String("out", "kick.wav", "Output file for render")
	seconds := flag.Float64("seconds", 4, "Length of the render in seconds")
	bpm := flag.Int("bpm", 125, "Pattern tempo (32-255)")
	pattern := flag.String("pattern", "", "Step pattern, e.g. X...x...x...x...")
	backend := flag.String("backend", "oto", "Real-time backend: oto or portaudio")
	midiIn := flag.String("midi-in", "", "MIDI input port for live triggers (rtmidi builds)")
	logFile := flag.String("log", "", "Write logs to this file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	var sets paramFlags
	flag.Var(&sets, "set", "Parameter override id=value (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: kick [flags] render|play\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	mode := "play"
	if flag.NArg() > 0 {
		mode = flag.Arg(0)
	}

	logger, closeLog, err := newLogger(*logFile, *debug, mode == "play")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	pat := tracker.FourOnTheFloor()
	if *pattern != "" {
		pat, err = tracker.ParsePattern(*pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	pat.SetTempo(*bpm)

	player, err := audio.NewPlayer(*rate, pat, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applySets(player, sets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch mode {
	case "render":
		err = render(player, *out, *seconds, *block)
	case "play":
		err = play(player, *backend, *midiIn, *block, logger)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the slog logger. The TUI owns the terminal, so in play
// mode logs are discarded unless a file is given.
func newLogger(path string, debug, quiet bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

func applySets(p *audio.Player, sets paramFlags) error {
	for _, s := range sets {
		id, val, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("-set %q: want id=value", s)
		}
		v, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return fmt.Errorf("-set %q: %w", s, err)
		}
		if err := p.SetParameter(id, float32(v)); err != nil {
			return err
		}
	}
	p.Voice.Settle()
	return nil
}

func render(p *audio.Player, path string, seconds float64, block int) error {
	p.Play()
	buf := audio.Render(p, seconds, block)
	p.Stop()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := audio.ExportWAV(f, buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Rendered %.2fs at %d Hz to %s\n", seconds, p.SampleRate, path)
	return nil
}

func play(p *audio.Player, backend, midiIn string, block int, logger *slog.Logger) error {
	var (
		output audio.Output
		err    error
	)
	switch backend {
	case "oto":
		output, err = audio.NewRealtimeOutput(p, block)
	case "portaudio":
		output, err = audio.NewPortAudioOutput(p, block)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
	if err != nil {
		return err
	}
	defer output.Close()

	if midiIn != "" {
		stop, err := event.Listen(midiIn, p, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	model := tui.NewModel(p)
	_, err = tea.NewProgram(model).Run()
	return err
}
