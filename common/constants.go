// Package common provides shared constants, types, and utilities
// used across the Egg Timer application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "io.github.yllada.EggTimer"
	// AppName is the display name of the application.
	AppName = "Egg Timer"
	// AppIconName is the themed icon name of the application.
	AppIconName = "egg-timer"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "egg-timer"
)

// File names used by the application.
const (
	ConfigFileName  = "config.yaml"
	HistoryFileName = "history.db"
	LogFileName     = "egg-timer.log"
)

// Dial geometry. One revolution of the dial holds TotalTicks minutes.
const (
	// TotalTicks is the number of tick marks around the dial.
	TotalTicks = 60
	// TicksPerLabel is the spacing of the numbered ticks.
	TicksPerLabel = 5
	// SecondsPerTick is the duration one tick represents.
	SecondsPerTick = 60
	// DialCapacity is the longest settable duration, in seconds.
	DialCapacity = TotalTicks * SecondsPerTick
)

// Countdown timing.
const (
	// TickInterval is the countdown step.
	TickInterval = 1 * time.Second
	// HistoryLimit is how many sessions are listed by default.
	HistoryLimit = 20
	// PresetLimit is how many recent durations are offered as presets.
	PresetLimit = 5
)

// UI constants.
const (
	// DefaultWindowWidth is the main window width.
	DefaultWindowWidth = 420
	// DefaultWindowHeight is the main window height.
	DefaultWindowHeight = 720
	// DialSize is the side of the square dial drawing area, in pixels.
	DialSize = 390
	// DialMargin is the standard margin around the dial and controls.
	DialMargin = 15
	// RevealDuration is the control panel transition time in milliseconds.
	RevealDuration = 350
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
