// Package tui implements the terminal control surface
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oisee/kicksynth/pkg/audio"
	"github.com/oisee/kicksynth/pkg/params"
	"github.com/oisee/kicksynth/pkg/tracker"
)

// Model is the main TUI model
type Model struct {
	Player *audio.Player
	Specs  []params.Spec

	// View state
	Width    int
	Height   int
	ShowHelp bool

	// Cursor state
	CursorParam int
	CursorStep  int

	// Playback display
	Pattern tracker.Pattern
	PlayRow int
	Playing bool

	// Status message
	StatusMsg string
}

// NewModel creates a new TUI model
func NewModel(player *audio.Player) Model {
	return Model{
		Player:  player,
		Specs:   params.All(),
		Pattern: player.Snapshot(),
		Width:   80,
		Height:  30,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
	)
}

// tickMsg is sent periodically for playback updates
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(16_666_666, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tickMsg:
		m.PlayRow, m.Playing = m.Player.GetPlaybackInfo()
		m.Pattern = m.Player.Snapshot()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Player.Stop()
		return m, tea.Quit

	case "f1", "?":
		m.ShowHelp = !m.ShowHelp

	// Playback controls
	case " ":
		if m.Playing {
			m.Player.Stop()
		} else {
			m.Player.SetPosition(0)
			m.Player.Play()
		}
		m.PlayRow, m.Playing = m.Player.GetPlaybackInfo()

	case "enter", "k":
		if !m.Player.Trigger(tracker.VelocityAccent) {
			m.StatusMsg = "event queue full"
		}

	// Parameter navigation
	case "up":
		if m.CursorParam > 0 {
			m.CursorParam--
		}

	case "down":
		if m.CursorParam < len(m.Specs)-1 {
			m.CursorParam++
		}

	case "left":
		m.nudge(-1)

	case "right":
		m.nudge(1)

	case "[":
		m.nudge(-10)

	case "]":
		m.nudge(10)

	case "backspace", "delete":
		s := m.Specs[m.CursorParam]
		m.setParam(s, s.Default)

	// Pattern editing
	case ",":
		if m.CursorStep > 0 {
			m.CursorStep--
		}

	case ".":
		if m.CursorStep < len(m.Pattern.Rows)-1 {
			m.CursorStep++
		}

	case "t":
		m.Player.CycleStep(m.CursorStep)
		m.Pattern = m.Player.Snapshot()

	case "+", "=":
		m.Player.SetTempo(int(m.Pattern.Tempo) + 1)
		m.Pattern = m.Player.Snapshot()

	case "-":
		m.Player.SetTempo(int(m.Pattern.Tempo) - 1)
		m.Pattern = m.Player.Snapshot()
	}

	return m, nil
}

func (m *Model) nudge(steps int) {
	s := m.Specs[m.CursorParam]
	v := m.Player.Parameter(s.ID) + float32(steps)*s.Step
	m.setParam(s, s.Clamp(v))
}

func (m *Model) setParam(s params.Spec, v float32) {
	if err := m.Player.SetParameter(s.ID, v); err != nil {
		m.StatusMsg = err.Error()
		return
	}
	m.StatusMsg = fmt.Sprintf("%s = %s", s.Name, formatValue(s, v))
}

func formatValue(s params.Spec, v float32) string {
	switch s.ID {
	case params.WaveType:
		if v >= 1 {
			return "909"
		}
		return "Sine"
	case params.SaturationType:
		return [...]string{"None", "Soft", "Clip", "ExtremeClip"}[int(s.Clamp(v))]
	}
	if s.Step >= 1 {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

// View implements tea.Model
func (m Model) View() string {
	if m.ShowHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.patternView())
	b.WriteString("\n\n")
	b.WriteString(m.paramsView())
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) headerView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Render("KICKSYNTH")

	playing := "STOPPED"
	if m.Playing {
		playing = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Render("PLAYING")
	}

	pat := m.Pattern
	info := fmt.Sprintf(" │ Row:%02d/%02d │ Spd:%d BPM:%d │ %d Hz │ %s",
		m.PlayRow, len(pat.Rows), pat.Speed, pat.Tempo, m.Player.SampleRate, playing)

	return title + info
}

func (m Model) patternView() string {
	var cells []string
	for i, st := range m.Pattern.Rows {
		ch := "·"
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		if st.Trigger {
			ch = "x"
			style = style.Foreground(lipgloss.Color("15"))
			if st.Velocity >= tracker.VelocityAccent {
				ch = "X"
				style = style.Foreground(lipgloss.Color("11")).Bold(true)
			}
		}
		if i%4 == 0 && !st.Trigger {
			style = style.Foreground(lipgloss.Color("14"))
		}
		if i == m.PlayRow && m.Playing {
			style = style.Background(lipgloss.Color("4"))
		}
		if i == m.CursorStep {
			style = style.Background(lipgloss.Color("6"))
		}
		cells = append(cells, style.Render(ch))
	}
	return " " + strings.Join(cells, " ")
}

func (m Model) paramsView() string {
	var lines []string
	for i, s := range m.Specs {
		v := m.Player.Parameter(s.ID)

		cursor := " "
		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
		if i == m.CursorParam {
			cursor = ">"
			nameStyle = nameStyle.Foreground(lipgloss.Color("11")).Bold(true)
		}

		label := ""
		if strings.HasPrefix(s.ID, "note_") || strings.HasPrefix(s.ID, "octave_") {
			label = m.stageLabel(s.ID[len(s.ID)-1:])
		}

		line := fmt.Sprintf("%s%s %8s %s %s",
			cursor,
			nameStyle.Render(fmt.Sprintf("%-26s", s.Name)),
			formatValue(s, v),
			bar(s, v, 20),
			lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Render(label))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// stageLabel names the note a pitch stage glides to, e.g. "G4"
func (m Model) stageLabel(stage string) string {
	octave := int(m.Player.Parameter("octave_" + stage))
	note := int(m.Player.Parameter("note_" + stage))
	return tracker.NoteName(octave, note)
}

func bar(s params.Spec, v float32, width int) string {
	span := s.Max - s.Min
	if span <= 0 {
		return ""
	}
	filled := int((v - s.Min) / span * float32(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("░", width-filled))
}

func (m Model) footerView() string {
	keys := " [Space]Play [Enter]Hit [↑↓]Param [←→/[]]Adjust [,.]Step [T]Toggle [+-]BPM [?]Help [Q]Quit"
	out := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(keys)
	if m.StatusMsg != "" {
		out += "\n " + lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.StatusMsg)
	}
	return out
}

func (m Model) helpView() string {
	help := `
╔══════════════════════════════════════════════════════════╗
║                    KICKSYNTH HELP                        ║
╠══════════════════════════════════════════════════════════╣
║ PARAMETERS                                               ║
║   ↑↓        Select parameter                             ║
║   ←→        Adjust by one step                           ║
║   [ ]       Adjust by ten steps                          ║
║   Del       Reset to default                             ║
║                                                          ║
║ PATTERN                                                  ║
║   , .       Move step cursor                             ║
║   T         Cycle rest / hit / accent                    ║
║   + -       Tempo up/down                                ║
║                                                          ║
║ PLAYBACK                                                 ║
║   Space     Play/Stop pattern                            ║
║   Enter K   Hit the kick now                             ║
║                                                          ║
║                              [?] Close help              ║
╚══════════════════════════════════════════════════════════╝
`
	return lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(help)
}
