package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	frameRate = 60
	// panelRows is the height of the control panel; the slide offset runs
	// from 0 (shown) to panelRows (hidden).
	panelRows = 3

	springFrequency = 7.0
	springDamping   = 0.55
	settleEpsilon   = 0.01
)

type frameMsg struct{}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// controlsAnimation springs the control panel in and out and fades the
// restart/reset row.
type controlsAnimation struct {
	spring harmonica.Spring

	offset, offsetVel   float64
	opacity, opacityVel float64

	targetOffset  float64
	targetOpacity float64
	running       bool
}

func newControlsAnimation() controlsAnimation {
	return controlsAnimation{
		spring:       harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
		offset:       panelRows,
		targetOffset: panelRows,
	}
}

// retarget sets new goals from the visibility flags and reports whether
// a frame loop needs to be started.
func (a *controlsAnimation) retarget(controlsVisible, secondaryVisible bool) bool {
	offset := float64(panelRows)
	if controlsVisible {
		offset = 0
	}
	opacity := 0.0
	if secondaryVisible {
		opacity = 1
	}

	if offset == a.targetOffset && opacity == a.targetOpacity {
		return false
	}
	a.targetOffset = offset
	a.targetOpacity = opacity

	if a.running {
		return false
	}
	a.running = true
	return true
}

// step advances one frame and reports whether the animation is still
// moving.
func (a *controlsAnimation) step() bool {
	a.offset, a.offsetVel = a.spring.Update(a.offset, a.offsetVel, a.targetOffset)
	a.opacity, a.opacityVel = a.spring.Update(a.opacity, a.opacityVel, a.targetOpacity)

	if settled(a.offset, a.offsetVel, a.targetOffset) && settled(a.opacity, a.opacityVel, a.targetOpacity) {
		a.offset, a.offsetVel = a.targetOffset, 0
		a.opacity, a.opacityVel = a.targetOpacity, 0
		a.running = false
	}
	return a.running
}

func settled(pos, vel, target float64) bool {
	return math.Abs(pos-target) < settleEpsilon && math.Abs(vel) < settleEpsilon
}

// panelShift is the number of panel rows pushed below the fold.
func (a controlsAnimation) panelShift() int {
	shift := int(math.Round(a.offset))
	if shift < 0 {
		return 0
	}
	if shift > panelRows {
		return panelRows
	}
	return shift
}
