package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/egg-timer/eggtimer"
)

func newTestApplication() *Application {
	return &Application{ctrl: eggtimer.NewController(eggtimer.NewManualScheduler())}
}

func TestNewTrayIndicator_StartsIdle(t *testing.T) {
	tray := NewTrayIndicator(newTestApplication())

	assert.True(t, tray.last.Paused)
	assert.False(t, tray.last.Running())
	assert.Equal(t, "00:00", tray.last.Display())
}

func TestNewTrayIndicator_StartsFromRunningCountdown(t *testing.T) {
	app := newTestApplication()
	require.True(t, app.ctrl.Commit(125))

	tray := NewTrayIndicator(app)

	assert.True(t, tray.last.Running())
	assert.Equal(t, "02:05", tray.last.Display())
}

func TestIconGenerator_CachesPerTick(t *testing.T) {
	icons := NewIconGenerator(DefaultIconConfig())

	first := icons.ForAngle(90)
	require.NotEmpty(t, first)
	assert.Equal(t, first, icons.ForAngle(86))
	assert.NotEqual(t, first, icons.ForAngle(0))
}
