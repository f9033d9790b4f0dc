package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

// Screen layout, in cells from the top-left corner.
const (
	dialLeft = 2
	dialTop  = 1 + 1 + digitRows + 1

	progressTop = dialTop + dialRows + 1
	panelTop    = progressTop + 2
	panelWidth  = dialCols

	secondaryRow = 0
	primaryRow   = 2
)

// adjustStepSeconds is the fine step of the left and right keys.
const adjustStepSeconds = 5

// dispatchMsg carries a scheduler callback onto the program's event loop.
type dispatchMsg func()

// commitMsg commits a duration at startup.
type commitMsg int

// statusLine is shared between model copies and the controller subscription.
type statusLine struct {
	text string
}

// Model is the bubbletea model of the terminal egg timer.
type Model struct {
	ctrl     *eggtimer.Controller
	state    eggtimer.State
	keys     KeyMap
	help     help.Model
	progress progress.Model
	anim     controlsAnimation
	status   *statusLine

	initial  int
	width    int
	height   int
	dragging bool
}

// NewModel creates a model driving ctrl. A positive initial duration is
// committed as soon as the program starts.
func NewModel(ctrl *eggtimer.Controller, initial int) Model {
	status := &statusLine{}
	ctrl.Subscribe(func(ev eggtimer.Event) {
		switch ev.Kind {
		case eggtimer.EventExpired:
			status.text = "Time's up!"
		case eggtimer.EventDragged, eggtimer.EventCommitted, eggtimer.EventReset:
			status.text = ""
		}
	})

	m := Model{
		ctrl:   ctrl,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		anim:   newControlsAnimation(),
		status: status,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(panelWidth),
		),
		initial: common.ClampSeconds(initial),
	}
	m.state = ctrl.State()
	m.keys.setPaused(m.state.Paused)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.initial <= 0 {
		return nil
	}
	seconds := m.initial
	return func() tea.Msg { return commitMsg(seconds) }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Layout is fixed, so the center only needs measuring once.
		m.ctrl.MeasureCenter(dialCenter())
		return m, m.sync()

	case dispatchMsg:
		msg()
		return m, m.sync()

	case commitMsg:
		m.ctrl.Commit(int(msg))
		return m, m.sync()

	case frameMsg:
		if m.anim.step() {
			return m, frameTick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Restart):
		m.ctrl.Restart()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.Commit):
		m.ctrl.Commit(m.ctrl.State().Remaining)
	case key.Matches(msg, m.keys.MinuteUp):
		m.ctrl.Adjust(common.SecondsPerTick)
	case key.Matches(msg, m.keys.MinuteDn):
		m.ctrl.Adjust(-common.SecondsPerTick)
	case key.Matches(msg, m.keys.SecondsUp):
		m.ctrl.Adjust(adjustStepSeconds)
	case key.Matches(msg, m.keys.SecondsDn):
		m.ctrl.Adjust(-adjustStepSeconds)
	default:
		return m, nil
	}
	return m, m.sync()
}

// toggle starts from a freshly adjusted dial by committing it, so a
// keyboard-set duration behaves like a released drag.
func (m Model) toggle() {
	s := m.ctrl.State()
	if s.Paused && !s.ControlsVisible {
		if s.Remaining > 0 {
			m.ctrl.Commit(s.Remaining)
		}
		return
	}
	m.ctrl.Toggle()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	local := cellPoint(msg.X-dialLeft, msg.Y-dialTop)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if distance(local, dialCenter()) <= labelRadius {
			// The drag is accepted or refused once, when it begins.
			if !m.ctrl.CanDrag() {
				return m, nil
			}
			m.dragging = true
			m.ctrl.Drag(local)
			return m, m.sync()
		}
		m.clickPanel(msg.X, msg.Y)
		return m, m.sync()

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		m.ctrl.Drag(local)
		return m, m.sync()

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		m.ctrl.Release(local)
		return m, m.sync()
	}

	return m, nil
}

// clickPanel handles a press on the control panel.
func (m Model) clickPanel(x, y int) {
	if !m.state.ControlsVisible || x < dialLeft || x >= dialLeft+panelWidth {
		return
	}
	row := y - panelTop - m.anim.panelShift()
	switch row {
	case primaryRow:
		m.toggle()
	case secondaryRow:
		if !m.state.SecondaryVisible {
			return
		}
		if x < dialLeft+panelWidth/2 {
			m.ctrl.Restart()
		} else {
			m.ctrl.Reset()
		}
	}
}

// sync copies the controller state into the model and starts the panel
// animation when the visibility flags changed.
func (m *Model) sync() tea.Cmd {
	m.state = m.ctrl.State()
	m.keys.setPaused(m.state.Paused)
	if m.anim.retarget(m.state.ControlsVisible, m.state.SecondaryVisible) {
		return frameTick()
	}
	return nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(common.AppName))
	b.WriteString("\n\n")

	clock := clockStyle.Width(panelWidth).Align(lipgloss.Center).Render(bigClock(m.state.Display()))
	b.WriteString(indent(clock))
	b.WriteString("\n\n")

	b.WriteString(indent(renderDial(m.state.Angle)))
	b.WriteString("\n\n")

	b.WriteString(indent(m.progress.ViewAs(m.state.Progress())))
	b.WriteString("\n\n")

	b.WriteString(indent(m.panelView()))
	b.WriteString("\n")

	if m.status.text != "" {
		b.WriteString(indent(clockStyle.Render(m.status.text)))
	}
	b.WriteString("\n")
	b.WriteString(indent(m.help.View(m.keys)))

	return b.String()
}

// panelView renders the control panel, slid down by the animation offset.
func (m Model) panelView() string {
	lines := make([]string, panelRows)
	lines[secondaryRow] = m.secondaryView()
	lines[primaryRow] = m.primaryView()

	shift := m.anim.panelShift()
	out := make([]string, 0, panelRows)
	for i := 0; i < shift; i++ {
		out = append(out, "")
	}
	out = append(out, lines[:panelRows-shift]...)
	return strings.Join(out, "\n")
}

func (m Model) primaryView() string {
	label := "PAUSE"
	if m.state.Paused {
		label = "RESUME"
	}
	return bigButtonStyle.Width(panelWidth).Render(label)
}

func (m Model) secondaryView() string {
	opacity := m.anim.opacity
	if opacity < 1.0/3 {
		return ""
	}

	half := panelWidth / 2
	restart := buttonStyle.Width(half).Align(lipgloss.Left).Render("RESTART")
	reset := buttonStyle.Width(panelWidth - half).Align(lipgloss.Right).Render("RESET")
	row := lipgloss.JoinHorizontal(lipgloss.Top, restart, reset)
	if opacity < 2.0/3 {
		return fadedStyle.Render(row)
	}
	return row
}

func indent(s string) string {
	pad := strings.Repeat(" ", dialLeft)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
