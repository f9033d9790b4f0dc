package ui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/config"
	"github.com/yllada/egg-timer/eggtimer"
	"github.com/yllada/egg-timer/history"
	"github.com/yllada/egg-timer/notify"
)

const testNotificationTimeout = 3 * time.Second

// Options configures the desktop application.
type Options struct {
	Version string
	Config  *config.Config
	// History and Recorder are nil when history is disabled or unavailable.
	History  *history.Store
	Recorder *history.Recorder
	Notifier *notify.Notifier
	// Duration is committed once the window is shown, when positive.
	Duration int
}

// Application represents the main application
type Application struct {
	app    *adw.Application
	window *MainWindow
	tray   *TrayIndicator
	ctrl   *eggtimer.Controller
	detach func()

	config   *config.Config
	history  *history.Store
	recorder *history.Recorder
	notifier *notify.Notifier
	alerts   common.Notifier
	version  string
	initial  int
}

// NewApplication creates a new application
func NewApplication(opts Options) *Application {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	application := &Application{
		app:      adw.NewApplication(common.AppID, gio.ApplicationFlagsNone),
		config:   cfg,
		history:  opts.History,
		recorder: opts.Recorder,
		notifier: opts.Notifier,
		version:  opts.Version,
		initial:  common.ClampSeconds(opts.Duration),
	}

	if opts.Notifier != nil {
		application.alerts = opts.Notifier
	}

	// Ticks are posted onto the GTK main loop, where every other
	// controller call already happens.
	sched := eggtimer.NewTickerScheduler(func(fn func()) {
		glib.IdleAdd(fn)
	})
	application.ctrl = eggtimer.NewController(sched)

	application.app.ConnectActivate(application.onActivate)
	application.app.ConnectShutdown(application.onShutdown)

	return application
}

// Run runs the application
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated
func (a *Application) onActivate() {
	// A second launch only raises the existing window
	if a.window != nil {
		a.showWindow()
		return
	}

	a.ApplyTheme(a.config.Theme)
	a.setupAppIcon()
	LoadStyles()

	var observers []eggtimer.Observer
	if a.recorder != nil {
		observers = append(observers, a.recorder)
	}
	if a.notifier != nil {
		observers = append(observers, a.notifier)
	}
	a.detach = eggtimer.AttachAll(a.ctrl, observers...)

	a.window = NewMainWindow(a)
	a.ctrl.Subscribe(a.window.onEvent)
	a.window.Show()

	if a.config.ShowTray {
		a.tray = NewTrayIndicator(a)
		a.ctrl.Subscribe(a.tray.onEvent)
		if a.recorder != nil {
			a.recorder.OnSaved(func(history.Session) { a.tray.refreshPresets() })
		}
		go a.tray.Run()
	}

	if a.initial > 0 {
		a.ctrl.Commit(a.initial)
	}
}

// onShutdown stops the countdown and detaches observers before the
// process exits.
func (a *Application) onShutdown() {
	a.ctrl.Close()
	if a.detach != nil {
		a.detach()
	}
	if a.tray != nil {
		a.tray.Quit()
	}
	common.LogInfo("Application shut down")
}

// setupAppIcon sets up the application icon
func (a *Application) setupAppIcon() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}

	// GTK4 looks for theme subdirectories (like "hicolor") inside these paths
	if execPath, err := os.Executable(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(filepath.Dir(execPath), "assets", "icons"))
	}
	if cwd, err := os.Getwd(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(cwd, "assets", "icons"))
	}

	gtk.WindowSetDefaultIconName(common.AppIconName)
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	manager := adw.StyleManagerGetDefault()
	if manager == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		manager.SetColorScheme(adw.ColorSchemeForceLight)
	case common.ThemeDark:
		manager.SetColorScheme(adw.ColorSchemeForceDark)
	default:
		manager.SetColorScheme(adw.ColorSchemeDefault)
	}
}

// sendTestNotification shows a sample desktop notification. It blocks on
// the notification service, so callers run it off the main loop.
func sendTestNotification(n common.Notifier) error {
	if n == nil {
		return common.ErrNotificationFailed
	}
	ctx, cancel := context.WithTimeout(context.Background(), testNotificationTimeout)
	defer cancel()

	return n.Notify(ctx, common.AppName, "Notifications are working")
}

// showWindow shows the main window
func (a *Application) showWindow() {
	if a.window != nil {
		a.window.window.Present()
	}
}

// Quit closes the application
func (a *Application) Quit() {
	a.app.Quit()
}

// QuitOnDone quits the application from the main loop once ctx is done.
func (a *Application) QuitOnDone(ctx context.Context) {
	go func() {
		<-ctx.Done()
		glib.IdleAdd(a.Quit)
	}()
}
