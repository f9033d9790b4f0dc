package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/egg-timer/eggtimer"
)

func newTestModel(t *testing.T, initial int) (Model, *eggtimer.Controller, *eggtimer.ManualScheduler) {
	t.Helper()
	sched := eggtimer.NewManualScheduler()
	ctrl := eggtimer.NewController(sched)
	m := NewModel(ctrl, initial)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 50})
	return next.(Model), ctrl, sched
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// screenPos returns the screen cell of the dial position for seconds.
func screenPos(seconds int) (x, y int) {
	p := eggtimer.PointOnDial(dialCenter(), dialRadius-2, eggtimer.AngleForSeconds(seconds))
	col, row := pointCell(p)
	return col + dialLeft, row + dialTop
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_MeasuresCenterOnResize(t *testing.T) {
	_, ctrl, _ := newTestModel(t, 0)

	s := ctrl.State()
	assert.True(t, s.CenterMeasured)
	assert.Equal(t, dialCenter(), s.Center)
	assert.True(t, ctrl.CanDrag())
}

func TestModel_InitCommitsInitialDuration(t *testing.T) {
	m, ctrl, sched := newTestModel(t, 125)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.False(t, ctrl.State().Paused)
	assert.Equal(t, "02:05", m.state.Display())
	assert.Equal(t, 1, sched.Active())
}

func TestModel_InitWithoutDuration(t *testing.T) {
	m, _, _ := newTestModel(t, 0)
	assert.Nil(t, m.Init())
}

func TestModel_DispatchRunsOnLoop(t *testing.T) {
	m, _, _ := newTestModel(t, 0)

	called := false
	m = update(t, m, dispatchMsg(func() { called = true }))
	assert.True(t, called)
}

func TestModel_MouseDragCommits(t *testing.T) {
	m, ctrl, sched := newTestModel(t, 0)

	x, y := screenPos(600)
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.dragging)
	assert.True(t, ctrl.State().Paused, "dragging does not start")

	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})

	s := ctrl.State()
	assert.False(t, m.dragging)
	assert.False(t, s.Paused)
	assert.InDelta(t, 600, s.LastSet, 60)
	assert.True(t, s.ControlsVisible)
	assert.Equal(t, 1, sched.Active())
}

func TestModel_MousePressRefusedWhileRunning(t *testing.T) {
	m, ctrl, _ := newTestModel(t, 0)
	require.True(t, ctrl.Commit(300))
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 50})

	x, y := screenPos(900)
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})

	assert.False(t, m.dragging)
	assert.Equal(t, 300, ctrl.State().Remaining)
}

func TestModel_Keys(t *testing.T) {
	m, ctrl, sched := newTestModel(t, 0)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 125, ctrl.State().Remaining)
	assert.True(t, ctrl.State().Paused)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, ctrl.State().Paused, "space commits a keyboard-set duration")
	assert.Equal(t, 125, ctrl.State().LastSet)

	sched.Advance(5)
	m = update(t, m, runes("p"))
	assert.True(t, ctrl.State().Paused)
	assert.Equal(t, 120, ctrl.State().Remaining)

	m = update(t, m, runes("r"))
	assert.Equal(t, 125, ctrl.State().Remaining)

	m = update(t, m, runes("x"))
	assert.Zero(t, ctrl.State().Remaining)
	assert.Zero(t, m.state.LastSet)
}

func TestModel_AdjustKeysDisabledWhileRunning(t *testing.T) {
	m, ctrl, _ := newTestModel(t, 0)
	require.True(t, ctrl.Commit(60))
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 50})

	update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 60, ctrl.State().Remaining)
}

func TestModel_SpaceOnEmptyDialDoesNothing(t *testing.T) {
	m, ctrl, sched := newTestModel(t, 0)

	update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, ctrl.State().Paused)
	assert.Zero(t, sched.Active())
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, 0)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewShowsPanelAfterAnimation(t *testing.T) {
	m, ctrl, _ := newTestModel(t, 0)
	assert.NotContains(t, m.View(), "PAUSE")

	require.True(t, ctrl.Commit(90))
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 50})
	require.True(t, m.anim.running)

	for i := 0; i < 10*frameRate && m.anim.running; i++ {
		m = update(t, m, frameMsg{})
	}
	require.False(t, m.anim.running, "animation should settle")

	view := m.View()
	assert.Contains(t, view, "PAUSE")
	assert.NotContains(t, view, "RESTART")
	assert.Contains(t, view, "█")
}

func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 10*frameRate && m.anim.running; i++ {
		m = update(t, m, frameMsg{})
	}
	require.False(t, m.anim.running, "animation should settle")
	return m
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})
}

func TestModel_PanelClicks(t *testing.T) {
	m, ctrl, sched := newTestModel(t, 0)
	primaryY := panelTop + primaryRow
	secondaryY := panelTop + secondaryRow
	left, right := dialLeft+1, dialLeft+panelWidth-1

	require.True(t, ctrl.Commit(90))
	m = settle(t, update(t, m, tea.WindowSizeMsg{Width: 80, Height: 50}))
	sched.Advance(5)

	m = settle(t, click(t, m, left, primaryY))
	require.True(t, ctrl.State().Paused, "primary row pauses")
	assert.Equal(t, 85, ctrl.State().Remaining)
	assert.Contains(t, m.View(), "RESTART")

	m = click(t, m, left, secondaryY)
	assert.Equal(t, 90, ctrl.State().Remaining, "left half restarts")
	assert.True(t, ctrl.State().Paused)

	m = settle(t, click(t, m, left, primaryY))
	require.False(t, ctrl.State().Paused, "primary row resumes")
	assert.Equal(t, 1, sched.Active())

	m = settle(t, click(t, m, left, primaryY))
	require.True(t, ctrl.State().Paused)

	m = settle(t, click(t, m, right, secondaryY))
	s := ctrl.State()
	assert.Equal(t, 0, s.Remaining, "right half resets")
	assert.False(t, s.ControlsVisible)

	// Hidden panel ignores clicks
	click(t, m, left, primaryY)
	assert.True(t, ctrl.State().Paused)
	assert.Equal(t, 0, sched.Active())
}

func TestModel_SecondsKeysStepByFive(t *testing.T) {
	m, ctrl, _ := newTestModel(t, 0)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2*adjustStepSeconds, ctrl.State().Remaining)

	update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, adjustStepSeconds, ctrl.State().Remaining)
}

func TestModel_ExpiryStatus(t *testing.T) {
	m, ctrl, sched := newTestModel(t, 0)
	require.True(t, ctrl.Commit(1))

	sched.Advance(2)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 50})

	assert.True(t, ctrl.State().Paused)
	assert.Contains(t, m.View(), "Time's up!")
}

func TestControlsAnimation(t *testing.T) {
	a := newControlsAnimation()
	assert.Equal(t, panelRows, a.panelShift(), "starts hidden")

	require.True(t, a.retarget(true, true))
	assert.False(t, a.retarget(true, true), "no new loop while one is running")

	for i := 0; i < 10*frameRate; i++ {
		if !a.step() {
			break
		}
	}
	assert.Zero(t, a.panelShift())
	assert.Equal(t, 1.0, a.opacity)

	assert.False(t, a.retarget(true, true), "same target")
	assert.True(t, a.retarget(false, false))
}

func TestBigText(t *testing.T) {
	lines := bigText("02:05")
	require.Len(t, lines, digitRows)

	width := len([]rune(lines[0]))
	for _, line := range lines {
		assert.Equal(t, width, len([]rune(line)))
	}
	assert.Empty(t, strings.Join(bigText("ab"), ""), "unknown runes are skipped")
}

func TestRenderDial(t *testing.T) {
	empty := renderDial(0)
	assert.Contains(t, empty, "00")
	assert.Contains(t, empty, "55")
	assert.Contains(t, empty, "◉")
	assert.NotContains(t, empty, "░")
	assert.Len(t, strings.Split(empty, "\n"), dialRows)

	assert.Contains(t, renderDial(180), "░")
}

func TestCellPointRoundTrip(t *testing.T) {
	col, row := pointCell(cellPoint(17, 5))
	assert.Equal(t, 17, col)
	assert.Equal(t, 5, row)
}
