package ui

import (
	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

// MainWindow represents the main application window.
type MainWindow struct {
	app       *Application
	window    *adw.ApplicationWindow
	toasts    *adw.ToastOverlay
	timeLabel *gtk.Label
	dial      *Dial

	controls   *gtk.Revealer
	secondary  *gtk.Revealer
	primaryBtn *gtk.Button
	restartBtn *gtk.Button
	resetBtn   *gtk.Button
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	mw.window = adw.NewApplicationWindow(&app.app.Application)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	// The dial center is measured once, so the layout must not change size.
	mw.window.SetResizable(false)
	mw.window.SetIconName(common.AppIconName)

	// With a tray the countdown keeps running after the window is closed
	mw.window.SetHideOnClose(app.config.ShowTray)

	mw.createLayout()
	mw.setupActions()
	mw.update(app.ctrl.State())

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	headerBar := adw.NewHeaderBar()

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	menuButton.SetMenuModel(mw.createMenu())
	headerBar.PackEnd(menuButton)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)
	mainBox.Append(headerBar)

	contentBox := gtk.NewBox(gtk.OrientationVertical, common.DialMargin)
	contentBox.SetMarginTop(common.DialMargin)
	contentBox.SetMarginBottom(common.DialMargin)
	contentBox.SetMarginStart(common.DialMargin)
	contentBox.SetMarginEnd(common.DialMargin)
	contentBox.SetVExpand(true)

	mw.timeLabel = gtk.NewLabel("00:00")
	mw.timeLabel.AddCSSClass("time-label")
	contentBox.Append(mw.timeLabel)

	mw.dial = NewDial(mw.app.ctrl)
	contentBox.Append(mw.dial.Widget())

	contentBox.Append(mw.createControls())

	mw.toasts = adw.NewToastOverlay()
	mw.toasts.SetChild(contentBox)
	mainBox.Append(mw.toasts)

	mw.window.SetContent(mainBox)
}

// createControls builds the panel that slides up once a duration is
// committed. RESTART and RESET fade in while paused.
func (mw *MainWindow) createControls() *gtk.Revealer {
	panel := gtk.NewBox(gtk.OrientationVertical, common.DialMargin)
	panel.AddCSSClass("control-panel")

	secondaryBox := gtk.NewBox(gtk.OrientationHorizontal, common.DialMargin)
	secondaryBox.SetHomogeneous(true)

	mw.restartBtn = gtk.NewButtonWithLabel("RESTART")
	mw.restartBtn.AddCSSClass("secondary-button")
	mw.restartBtn.SetTooltipText("Rewind to the last set duration (Ctrl+R)")
	mw.restartBtn.ConnectClicked(func() { mw.app.ctrl.Restart() })
	secondaryBox.Append(mw.restartBtn)

	mw.resetBtn = gtk.NewButtonWithLabel("RESET")
	mw.resetBtn.AddCSSClass("secondary-button")
	mw.resetBtn.AddCSSClass("destructive-action")
	mw.resetBtn.SetTooltipText("Clear the dial (Ctrl+Backspace)")
	mw.resetBtn.ConnectClicked(func() { mw.app.ctrl.Reset() })
	secondaryBox.Append(mw.resetBtn)

	mw.secondary = gtk.NewRevealer()
	mw.secondary.SetTransitionType(gtk.RevealerTransitionTypeCrossfade)
	mw.secondary.SetTransitionDuration(common.RevealDuration)
	mw.secondary.SetChild(secondaryBox)
	panel.Append(mw.secondary)

	mw.primaryBtn = gtk.NewButtonWithLabel("PAUSE")
	mw.primaryBtn.AddCSSClass("primary-button")
	mw.primaryBtn.AddCSSClass("suggested-action")
	mw.primaryBtn.SetTooltipText("Resume or pause (Space)")
	mw.primaryBtn.ConnectClicked(func() { mw.app.ctrl.Toggle() })
	panel.Append(mw.primaryBtn)

	mw.controls = gtk.NewRevealer()
	mw.controls.SetTransitionType(gtk.RevealerTransitionTypeSlideUp)
	mw.controls.SetTransitionDuration(common.RevealDuration)
	mw.controls.SetVAlign(gtk.AlignEnd)
	mw.controls.SetVExpand(true)
	mw.controls.SetChild(panel)

	return mw.controls
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	timerSection := gio.NewMenu()
	timerSection.Append("History", "app.history")
	menu.AppendSection("", &timerSection.MenuModel)

	settingsSection := gio.NewMenu()
	settingsSection.Append("Preferences", "app.preferences")
	menu.AppendSection("", &settingsSection.MenuModel)

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	return menu
}

// addAction registers an app action and its accelerators.
func (mw *MainWindow) addAction(name string, accels []string, fn func()) {
	action := gio.NewSimpleAction(name, nil)
	action.ConnectActivate(func(_ *glib.Variant) {
		fn()
	})
	mw.app.app.AddAction(action)
	if len(accels) > 0 {
		mw.app.app.SetAccelsForAction("app."+name, accels)
	}
}

// setupActions configures menu actions and keyboard shortcuts.
func (mw *MainWindow) setupActions() {
	ctrl := mw.app.ctrl

	mw.addAction("toggle", []string{"space"}, func() {
		// Same rule as the button: nothing to run before a commit
		if ctrl.State().ControlsVisible {
			ctrl.Toggle()
		}
	})
	mw.addAction("restart", []string{"<Control>r"}, func() { ctrl.Restart() })
	mw.addAction("reset", []string{"<Control>BackSpace"}, func() { ctrl.Reset() })
	mw.addAction("history", []string{"<Control>h"}, mw.onHistory)
	mw.addAction("preferences", []string{"<Control>comma"}, mw.onPreferences)
	mw.addAction("about", nil, mw.onAbout)
	mw.addAction("quit", []string{"<Control>q"}, mw.app.Quit)
}

// onEvent mirrors controller events into the widgets.
func (mw *MainWindow) onEvent(ev eggtimer.Event) {
	mw.update(ev.State)
	if ev.Kind == eggtimer.EventExpired {
		toast := adw.NewToast("Time's up!")
		toast.SetTimeout(5)
		mw.toasts.AddToast(toast)
		mw.window.Present()
	}
}

// update renders a state snapshot.
func (mw *MainWindow) update(s eggtimer.State) {
	mw.timeLabel.SetText(s.Display())
	mw.dial.SetAngle(s.Angle)

	mw.controls.SetRevealChild(s.ControlsVisible)
	mw.secondary.SetRevealChild(s.SecondaryVisible)
	mw.restartBtn.SetSensitive(s.Paused)
	mw.resetBtn.SetSensitive(s.Paused)

	if s.Paused {
		mw.primaryBtn.SetLabel("RESUME")
		mw.timeLabel.AddCSSClass("paused")
	} else {
		mw.primaryBtn.SetLabel("PAUSE")
		mw.timeLabel.RemoveCSSClass("paused")
	}
}

// Show displays the window.
func (mw *MainWindow) Show() {
	mw.window.Show()
}

// showToast shows a short message over the dial.
func (mw *MainWindow) showToast(text string) {
	mw.toasts.AddToast(adw.NewToast(text))
}

func (mw *MainWindow) onPreferences() {
	NewPreferencesDialog(mw).Show()
}

func (mw *MainWindow) onHistory() {
	NewHistoryDialog(mw).Show()
}

func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetLogoIconName(common.AppIconName)
	about.SetVersion(mw.app.version)
	about.SetComments("Drag the dial to set a countdown of up to an hour.\nRelease to start.")
	about.SetWebsite("https://github.com/yllada/egg-timer")
	about.SetWebsiteLabel("GitHub Repository")
	about.SetLicenseType(gtk.LicenseMITX11)
	about.SetAuthors([]string{"Yadian Llada Lopez <yadian@y3lcorp.com>"})

	about.Show()
}

// showError displays an error dialog.
func (mw *MainWindow) showError(title, message string) {
	window := gtk.NewWindow()
	window.SetTitle(title)
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(350, 150)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 12)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(24)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)
	mainBox.SetHAlign(gtk.AlignCenter)

	icon := gtk.NewImage()
	icon.SetFromIconName("dialog-error-symbolic")
	icon.SetPixelSize(48)
	mainBox.Append(icon)

	titleLabel := gtk.NewLabel(title)
	titleLabel.AddCSSClass("heading")
	mainBox.Append(titleLabel)

	msgLabel := gtk.NewLabel(message)
	msgLabel.SetWrap(true)
	msgLabel.SetMaxWidthChars(40)
	mainBox.Append(msgLabel)

	okBtn := gtk.NewButtonWithLabel("OK")
	okBtn.SetHAlign(gtk.AlignCenter)
	okBtn.SetMarginTop(12)
	okBtn.ConnectClicked(func() {
		window.Close()
	})
	mainBox.Append(okBtn)

	window.SetChild(mainBox)
	window.Show()
}
