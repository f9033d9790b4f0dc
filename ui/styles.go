package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// CSS styles for the timer window. Colors work with both the light and
// dark variants of the system theme.
const appCSS = `
/* ============================================
   Egg Timer - UI Styles (GTK4)
   Theme-aware styles
   ============================================ */

/* Remaining time */
.time-label {
    font-family: monospace;
    font-size: 56px;
    font-weight: 700;
    letter-spacing: 2px;
}

.time-label.paused {
    opacity: 0.7;
}

/* Dial */
.dial {
    margin: 0 auto;
}

/* Control panel */
.control-panel {
    padding: 6px 0;
}

button.primary-button {
    min-height: 56px;
    border-radius: 12px;
    font-size: 20px;
    font-weight: 700;
    letter-spacing: 3px;
}

button.secondary-button {
    min-height: 40px;
    border-radius: 10px;
    font-weight: 600;
    letter-spacing: 2px;
}

button.secondary-button:disabled {
    opacity: 0.4;
}

/* Delete button - red */
button.destructive-action {
    background-color: #e01b24;
    color: white;
}

button.destructive-action:hover {
    background-color: #c01c28;
}

/* History */
.history-duration {
    font-family: monospace;
    font-weight: 600;
    font-size: 14px;
}

.outcome-completed {
    color: #2ec27e;
    font-weight: 600;
}

.outcome-reset,
.outcome-abandoned {
    color: #e01b24;
}

.outcome-restarted,
.outcome-replaced {
    color: #e5a50a;
}

/* Empty State */
.empty-state-icon {
    opacity: 0.4;
}

/* Preferences */
.preferences-card {
    border-radius: 12px;
}

.settings-title {
    font-weight: 600;
}

/* List styling - transparent to inherit theme background */
list {
    background-color: transparent;
}

list > row {
    background-color: transparent;
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
