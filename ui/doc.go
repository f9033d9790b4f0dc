// Package ui provides the graphical user interface for Egg Timer.
//
// This package implements the GTK4 and libadwaita user interface:
//
//   - Main window with the time label, the drawn dial and the controls
//   - System tray indicator showing the remaining time
//   - Preferences and history dialogs
//
// # Architecture
//
// The UI is built on GTK4 using the gotk4 bindings. Key components:
//
//   - Application: adw.Application lifecycle, wiring of the controller
//     with the history recorder and the notifier
//   - MainWindow: header bar, time label, dial and the revealed controls
//   - Dial: cairo drawing of the face and the drag gesture
//   - TrayIndicator: system tray integration for background operation
//
// Every widget renders from eggtimer.Event snapshots; none of them keeps
// its own copy of the countdown.
//
// # Thread Safety
//
// GTK operations and controller calls must execute on the main thread.
// Ticks and tray clicks arrive on other goroutines and are posted with
// glib.IdleAdd:
//
//	go func() {
//	    for range item.ClickedCh {
//	        glib.IdleAdd(func() {
//	            ctrl.Toggle()
//	        })
//	    }
//	}()
//
// # File Organization
//
//   - app.go: Application lifecycle and theme handling
//   - main_window.go: Main window layout, actions and shortcuts
//   - dial.go: Dial drawing and drag handling
//   - tray.go: System tray indicator
//   - icons.go: Icon generation for tray
//   - styles.go: CSS styling
//   - preferences.go: Settings dialog
//   - history_dialog.go: Recent sessions
package ui
