package ui

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/config"
)

// PreferencesDialog represents the preferences dialog.
type PreferencesDialog struct {
	window        *gtk.Window
	mainWindow    *MainWindow
	config        *config.Config
	notifySwitch  *gtk.Switch
	traySwitch    *gtk.Switch
	historySwitch *gtk.Switch
	durationSpin  *gtk.SpinButton
	themeDropDown *gtk.DropDown
	themeIDs      []string
}

// NewPreferencesDialog creates a new preferences dialog.
func NewPreferencesDialog(mainWindow *MainWindow) *PreferencesDialog {
	pd := &PreferencesDialog{
		mainWindow: mainWindow,
		config:     mainWindow.app.config,
	}

	pd.build()
	return pd
}

// build constructs the dialog UI.
func (pd *PreferencesDialog) build() {
	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Settings")
	pd.window.SetTransientFor(&pd.mainWindow.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(460, 560)
	pd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)

	// ═══════════════════════════════════════════════════════════════════
	// TIMER SECTION
	// ═══════════════════════════════════════════════════════════════════
	timerSection := pd.createSection("Timer", "alarm-symbolic")
	timerCard := pd.createCard()

	pd.durationSpin = gtk.NewSpinButtonWithRange(0, common.TotalTicks, 1)
	pd.durationSpin.SetValue(float64(pd.config.DefaultDuration / common.SecondsPerTick))
	pd.durationSpin.SetVAlign(gtk.AlignCenter)
	durationRow := pd.createSettingRow(
		"Default Duration",
		"Minutes set on the dial at startup, 0 leaves it empty",
		pd.durationSpin,
	)
	timerCard.Append(durationRow)

	timerCard.Append(pd.createSeparator())

	pd.historySwitch = gtk.NewSwitch()
	pd.historySwitch.SetActive(pd.config.RecordHistory)
	pd.historySwitch.SetVAlign(gtk.AlignCenter)
	historyRow := pd.createSettingRow(
		"Record History",
		"Keep a log of finished countdowns (applies after restart)",
		pd.historySwitch,
	)
	timerCard.Append(historyRow)

	timerSection.Append(timerCard)
	mainBox.Append(timerSection)

	// ═══════════════════════════════════════════════════════════════════
	// NOTIFICATIONS SECTION
	// ═══════════════════════════════════════════════════════════════════
	notifySection := pd.createSection("Notifications", "preferences-system-notifications-symbolic")
	notifyCard := pd.createCard()

	pd.notifySwitch = gtk.NewSwitch()
	pd.notifySwitch.SetActive(pd.config.ShowNotifications)
	pd.notifySwitch.SetVAlign(gtk.AlignCenter)
	notifyRow := pd.createSettingRow(
		"Expiry Alerts",
		"Show a desktop notification when the countdown reaches zero",
		pd.notifySwitch,
	)
	notifyCard.Append(notifyRow)

	notifyCard.Append(pd.createSeparator())

	testButton := gtk.NewButtonWithLabel("Send")
	testButton.SetVAlign(gtk.AlignCenter)
	testButton.SetSensitive(pd.mainWindow.app.alerts != nil)
	testButton.ConnectClicked(pd.onTestNotification)
	testRow := pd.createSettingRow(
		"Test Notification",
		"Check that desktop notifications reach you",
		testButton,
	)
	notifyCard.Append(testRow)

	notifyCard.Append(pd.createSeparator())

	pd.traySwitch = gtk.NewSwitch()
	pd.traySwitch.SetActive(pd.config.ShowTray)
	pd.traySwitch.SetVAlign(gtk.AlignCenter)
	trayRow := pd.createSettingRow(
		"Tray Indicator",
		"Show the remaining time in the system tray (applies after restart)",
		pd.traySwitch,
	)
	notifyCard.Append(trayRow)

	notifySection.Append(notifyCard)
	mainBox.Append(notifySection)

	// ═══════════════════════════════════════════════════════════════════
	// APPEARANCE SECTION
	// ═══════════════════════════════════════════════════════════════════
	appearSection := pd.createSection("Appearance", "preferences-desktop-theme-symbolic")
	appearCard := pd.createCard()

	pd.themeIDs = []string{common.ThemeAuto, common.ThemeLight, common.ThemeDark}
	themeLabels := []string{"System Default", "Light", "Dark"}
	themeModel := gtk.NewStringList(themeLabels)
	pd.themeDropDown = gtk.NewDropDown(themeModel, nil)
	pd.themeDropDown.SetSelected(pd.findThemeIndex(pd.config.Theme))
	pd.themeDropDown.SetVAlign(gtk.AlignCenter)
	pd.themeDropDown.AddCSSClass("flat")

	themeRow := pd.createSettingRow(
		"Theme",
		"Choose the visual appearance of the application",
		pd.themeDropDown,
	)
	appearCard.Append(themeRow)

	appearSection.Append(appearCard)
	mainBox.Append(appearSection)

	scrolled.SetChild(mainBox)
	rootBox.Append(scrolled)

	// ═══════════════════════════════════════════════════════════════════
	// ACTION BUTTONS
	// ═══════════════════════════════════════════════════════════════════
	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(24)
	buttonBar.SetMarginEnd(24)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.ConnectClicked(func() {
		pd.savePreferences()
		pd.window.Close()
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)

	pd.window.SetChild(rootBox)
}

// createSection creates a section with icon and title.
func (pd *PreferencesDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	// Header with icon
	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)

	return section
}

// createCard creates a styled card container for settings.
func (pd *PreferencesDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	card.AddCSSClass("preferences-card")
	return card
}

// createSettingRow creates a row with title, description, and widget.
func (pd *PreferencesDialog) createSettingRow(title string, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	// Text container (title + description)
	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("settings-title")
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	descLabel.SetWrapMode(2) // PANGO_WRAP_WORD_CHAR
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

// createSeparator creates a styled separator for cards.
func (pd *PreferencesDialog) createSeparator() *gtk.Separator {
	sep := gtk.NewSeparator(gtk.OrientationHorizontal)
	sep.SetMarginStart(16)
	sep.SetMarginEnd(16)
	return sep
}

// findThemeIndex returns the index of a theme ID, or 0 if not found.
func (pd *PreferencesDialog) findThemeIndex(themeID string) uint {
	for i, id := range pd.themeIDs {
		if id == themeID {
			return uint(i)
		}
	}
	return 0
}

// onTestNotification sends a sample notification off the main loop.
func (pd *PreferencesDialog) onTestNotification() {
	alerts := pd.mainWindow.app.alerts
	go func() {
		err := sendTestNotification(alerts)
		glib.IdleAdd(func() {
			if err != nil {
				common.LogWarn("Test notification failed: %v", err)
				pd.mainWindow.showError("Notifications", "Could not show a notification: "+err.Error())
				return
			}
			pd.mainWindow.showToast("Notification sent")
		})
	}()
}

// durationFromMinutes converts the spin value back to seconds. An untouched
// spin keeps the configured seconds, which need not be whole minutes.
func durationFromMinutes(current, minutes int) int {
	if minutes == current/common.SecondsPerTick {
		return current
	}
	return minutes * common.SecondsPerTick
}

// savePreferences saves the current preferences to the config file.
func (pd *PreferencesDialog) savePreferences() {
	pd.config.ShowNotifications = pd.notifySwitch.Active()
	pd.config.ShowTray = pd.traySwitch.Active()
	pd.config.RecordHistory = pd.historySwitch.Active()
	pd.config.DefaultDuration = durationFromMinutes(pd.config.DefaultDuration, pd.durationSpin.ValueAsInt())

	themeIdx := pd.themeDropDown.Selected()
	if int(themeIdx) < len(pd.themeIDs) {
		pd.config.Theme = pd.themeIDs[themeIdx]
	}
	pd.mainWindow.app.ApplyTheme(pd.config.Theme)

	if err := pd.config.Save(); err != nil {
		common.LogError("Could not save preferences: %v", err)
		pd.mainWindow.showError("Error", "Could not save preferences: "+err.Error())
		return
	}

	pd.mainWindow.showToast("Settings saved")
}

// Show displays the preferences dialog.
func (pd *PreferencesDialog) Show() {
	pd.window.Show()
}
