package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moto-hud.klederson.com/internal/app"
	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/display"
	"moto-hud.klederson.com/internal/sim"
)

// Keyboard nudges.
const (
	leanStep = 5.0 // degrees per arrow press
)

// Source supplies loop telemetry. *app.App implements it.
type Source interface {
	Telemetry() app.Telemetry
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	panel    *display.Framebuffer
	hw       *sim.Hardware
	source   Source
	renderer *PanelRenderer
	history  *Ring
	err      error
}

// Model is the root Bubble Tea model for the simulator.
type Model struct {
	width  int
	height int

	shared *shared

	// Cached per tick
	frame string
	tele  app.Telemetry
}

// New creates a model that mirrors panel and drives hw.
func New(panel *display.Framebuffer, hw *sim.Hardware, source Source) Model {
	return Model{
		shared: &shared{
			panel:    panel,
			hw:       hw,
			source:   source,
			renderer: NewPanelRenderer(),
			history:  NewRing(config.HistoryLen),
		},
	}
}

// Err returns the error the instrument loop stopped with, if any.
func (m Model) Err() error {
	return m.shared.err
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := PanelPoint(msg.X, msg.Y); ok {
				m.shared.hw.Touch.Tap(x, y)
			}
		}
		return m, nil

	case TickMsg:
		m.tele = m.shared.source.Telemetry()
		m.shared.history.Push(m.tele.Angles.Roll)
		m.frame = m.shared.renderer.Render(m.shared.panel.Snapshot())
		return m, tickCmd()

	case LoopDoneMsg:
		m.shared.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	hw := m.shared.hw
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		hw.IMU.Nudge(-leanStep)

	case "right", "l":
		hw.IMU.Nudge(leanStep)

	case " ", "space":
		hw.IMU.SetSweep(!hw.IMU.Sweeping())

	case "a", "A":
		hw.Left.Turn(1)

	case "z", "Z":
		hw.Left.Turn(-1)

	case "k", "K":
		hw.Right.Turn(1)

	case "m", "M":
		hw.Right.Turn(-1)
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 || m.frame == "" {
		return "Initializing " + config.AppName + "..."
	}
	menuBar := RenderMenuBar(m.width, m.shared.hw.IMU.Sweeping())
	statusBar := RenderStatusBar(m.width, m.tele, m.shared.history.Values())
	return ComposeLayout(menuBar, RenderPanel(m.frame), statusBar)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
