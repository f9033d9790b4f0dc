package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
	"github.com/yllada/egg-timer/history"
)

// HistoryDialog lists recently finished countdowns.
type HistoryDialog struct {
	window     *gtk.Window
	mainWindow *MainWindow
	store      *history.Store
	list       *gtk.ListBox
	clearBtn   *gtk.Button
}

// NewHistoryDialog creates the history dialog.
func NewHistoryDialog(mainWindow *MainWindow) *HistoryDialog {
	hd := &HistoryDialog{
		mainWindow: mainWindow,
		store:      mainWindow.app.history,
	}

	hd.build()
	hd.load()
	return hd
}

func (hd *HistoryDialog) build() {
	hd.window = gtk.NewWindow()
	hd.window.SetTitle("History")
	hd.window.SetTransientFor(&hd.mainWindow.window.Window)
	hd.window.SetModal(true)
	hd.window.SetDefaultSize(420, 480)
	hd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)

	hd.list = gtk.NewListBox()
	hd.list.SetSelectionMode(gtk.SelectionNone)
	hd.list.AddCSSClass("boxed-list")
	hd.list.SetMarginTop(16)
	hd.list.SetMarginBottom(16)
	hd.list.SetMarginStart(16)
	hd.list.SetMarginEnd(16)
	scrolled.SetChild(hd.list)
	rootBox.Append(scrolled)

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(8)
	buttonBar.SetMarginBottom(16)
	buttonBar.SetMarginStart(16)
	buttonBar.SetMarginEnd(16)

	hd.clearBtn = gtk.NewButtonWithLabel("Clear")
	hd.clearBtn.AddCSSClass("destructive-action")
	hd.clearBtn.ConnectClicked(hd.onClear)
	buttonBar.Append(hd.clearBtn)

	closeBtn := gtk.NewButtonWithLabel("Close")
	closeBtn.ConnectClicked(func() {
		hd.window.Close()
	})
	buttonBar.Append(closeBtn)

	rootBox.Append(buttonBar)
	hd.window.SetChild(rootBox)
}

// load fills the list from the store.
func (hd *HistoryDialog) load() {
	for child := hd.list.FirstChild(); child != nil; child = hd.list.FirstChild() {
		hd.list.Remove(child)
	}

	if hd.store == nil {
		hd.clearBtn.SetSensitive(false)
		hd.list.Append(hd.emptyState("History is turned off"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sessions, err := hd.store.Recent(ctx, common.HistoryLimit)
	if err != nil {
		common.LogError("Failed to load history: %v", err)
		hd.clearBtn.SetSensitive(false)
		hd.list.Append(hd.emptyState("Could not load history"))
		return
	}

	hd.clearBtn.SetSensitive(len(sessions) > 0)
	if len(sessions) == 0 {
		hd.list.Append(hd.emptyState("No countdowns yet"))
		return
	}

	for _, s := range sessions {
		hd.list.Append(hd.createRow(s))
	}
}

func (hd *HistoryDialog) createRow(s history.Session) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(10)
	row.SetMarginBottom(10)
	row.SetMarginStart(12)
	row.SetMarginEnd(12)

	textBox := gtk.NewBox(gtk.OrientationVertical, 2)
	textBox.SetHExpand(true)

	duration := gtk.NewLabel(eggtimer.FormatDuration(s.Duration))
	duration.SetXAlign(0)
	duration.AddCSSClass("history-duration")
	textBox.Append(duration)

	when := gtk.NewLabel(fmt.Sprintf("%s, ran %s",
		s.EndedAt.Local().Format("Jan 2 15:04"), eggtimer.FormatDuration(s.Elapsed())))
	when.SetXAlign(0)
	when.AddCSSClass("dim-label")
	when.AddCSSClass("caption")
	textBox.Append(when)

	row.Append(textBox)

	outcome := gtk.NewLabel(string(s.Outcome))
	outcome.SetVAlign(gtk.AlignCenter)
	outcome.AddCSSClass("outcome-" + string(s.Outcome))
	row.Append(outcome)

	return row
}

func (hd *HistoryDialog) emptyState(text string) *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(48)
	box.SetMarginBottom(48)
	box.SetHAlign(gtk.AlignCenter)

	icon := gtk.NewImage()
	icon.SetFromIconName("document-open-recent-symbolic")
	icon.SetPixelSize(48)
	icon.AddCSSClass("empty-state-icon")
	box.Append(icon)

	label := gtk.NewLabel(text)
	label.AddCSSClass("dim-label")
	box.Append(label)

	return box
}

func (hd *HistoryDialog) onClear() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := hd.store.Clear(ctx)
	if err != nil {
		common.LogError("Failed to clear history: %v", err)
		hd.mainWindow.showError("Error", "Could not clear history: "+err.Error())
		return
	}

	common.LogInfo("Cleared %d history entries", n)
	if hd.mainWindow.app.tray != nil {
		hd.mainWindow.app.tray.refreshPresets()
	}
	hd.load()
}

// Show displays the dialog.
func (hd *HistoryDialog) Show() {
	hd.window.Show()
}
