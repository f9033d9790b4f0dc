package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

// TrayIndicator manages the system tray icon and menu.
// It shows the remaining time and offers the timer controls without
// opening the main window.
type TrayIndicator struct {
	app   *Application
	icons *IconGenerator

	mu          sync.Mutex
	ready       bool
	statusItem  *systray.MenuItem
	toggleItem  *systray.MenuItem
	restartItem *systray.MenuItem
	resetItem   *systray.MenuItem
	presetItems []*systray.MenuItem
	presets     []int
	last        eggtimer.State
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{
		app:     app,
		icons:   NewIconGenerator(DefaultIconConfig()),
		presets: make([]int, common.PresetLimit),
		last:    app.ctrl.State(),
	}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit removes the tray icon.
func (t *TrayIndicator) Quit() {
	systray.Quit()
}

// onMain runs fn on the GTK main loop, where the controller lives.
func onMain(fn func()) {
	glib.IdleAdd(fn)
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetIcon(t.icons.ForAngle(0))
	systray.SetTitle("")
	systray.SetTooltip(common.AppName)

	t.mu.Lock()
	defer t.mu.Unlock()

	// ═══════════════════════════════════════════════════════════════════════
	// STATUS SECTION
	// ═══════════════════════════════════════════════════════════════════════
	t.statusItem = systray.AddMenuItem("○  Idle", "Current timer status")
	t.statusItem.Disable()

	systray.AddSeparator()

	// ═══════════════════════════════════════════════════════════════════════
	// CONTROLS SECTION
	// ═══════════════════════════════════════════════════════════════════════
	t.toggleItem = systray.AddMenuItem("▶  Resume", "Resume or pause the countdown")
	t.restartItem = systray.AddMenuItem("↺  Restart", "Rewind to the last set duration")
	t.resetItem = systray.AddMenuItem("⏹  Reset", "Clear the dial")

	t.onClick(t.toggleItem, func(c *eggtimer.Controller) { c.Toggle() })
	t.onClick(t.restartItem, func(c *eggtimer.Controller) { c.Restart() })
	t.onClick(t.resetItem, func(c *eggtimer.Controller) { c.Reset() })

	systray.AddSeparator()

	// ═══════════════════════════════════════════════════════════════════════
	// PRESETS SECTION
	// ═══════════════════════════════════════════════════════════════════════
	presetsHeader := systray.AddMenuItem("── Recent ──", "")
	presetsHeader.Disable()

	// systray cannot remove items, so the slots are created up front and
	// shown as history fills them.
	t.presetItems = make([]*systray.MenuItem, common.PresetLimit)
	for i := range t.presetItems {
		item := systray.AddMenuItem("", "Start a countdown of this length")
		item.Hide()
		t.presetItems[i] = item

		slot := i
		go func() {
			for range item.ClickedCh {
				t.mu.Lock()
				seconds := t.presets[slot]
				t.mu.Unlock()
				onMain(func() { t.app.ctrl.Commit(seconds) })
			}
		}()
	}

	systray.AddSeparator()

	// ═══════════════════════════════════════════════════════════════════════
	// APP SECTION
	// ═══════════════════════════════════════════════════════════════════════
	showItem := systray.AddMenuItem("Open "+common.AppName, "Show main window")
	go func() {
		for range showItem.ClickedCh {
			onMain(t.app.showWindow)
		}
	}()

	quitItem := systray.AddMenuItem("Quit", "Close "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			onMain(t.app.Quit)
		}
	}()

	t.ready = true
	t.renderLocked(t.last)
	go t.refreshPresets()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator cleanup completed")
}

func (t *TrayIndicator) onClick(item *systray.MenuItem, fn func(c *eggtimer.Controller)) {
	go func() {
		for range item.ClickedCh {
			onMain(func() { fn(t.app.ctrl) })
		}
	}()
}

// onEvent mirrors controller events into the tray.
func (t *TrayIndicator) onEvent(ev eggtimer.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = ev.State
	if t.ready {
		t.renderLocked(ev.State)
	}
}

func (t *TrayIndicator) renderLocked(s eggtimer.State) {
	systray.SetIcon(t.icons.ForAngle(s.Angle))

	display := s.Display()
	switch {
	case s.Running():
		systray.SetTitle(display)
		systray.SetTooltip(fmt.Sprintf("%s - %s remaining", common.AppName, display))
		t.statusItem.SetTitle("●  Running: " + display)
		t.toggleItem.SetTitle("⏸  Pause")
	case s.ControlsVisible:
		systray.SetTitle(display)
		systray.SetTooltip(fmt.Sprintf("%s - paused at %s", common.AppName, display))
		t.statusItem.SetTitle("◐  Paused: " + display)
		t.toggleItem.SetTitle("▶  Resume")
	default:
		systray.SetTitle("")
		systray.SetTooltip(common.AppName)
		t.statusItem.SetTitle("○  Idle")
		t.toggleItem.SetTitle("▶  Resume")
	}

	setEnabled(t.toggleItem, s.ControlsVisible)
	setEnabled(t.restartItem, s.Paused && s.LastSet > 0)
	setEnabled(t.resetItem, s.Paused && s.ControlsVisible)
}

func setEnabled(item *systray.MenuItem, enabled bool) {
	if enabled {
		item.Enable()
	} else {
		item.Disable()
	}
}

// refreshPresets reloads the recent durations from history.
func (t *TrayIndicator) refreshPresets() {
	store := t.app.history
	if store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	durations, err := store.RecentDurations(ctx, common.PresetLimit)
	if err != nil {
		common.LogWarn("Failed to load tray presets: %v", err)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready {
		return
	}

	for i, item := range t.presetItems {
		if i < len(durations) {
			t.presets[i] = durations[i]
			item.SetTitle(eggtimer.FormatDuration(durations[i]))
			item.Show()
		} else {
			t.presets[i] = 0
			item.Hide()
		}
	}
}
