// Package common provides shared constants, types, and utilities
// used across the Egg Timer application.
package common

import "context"

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(ctx context.Context, title, message string) error
}

// Dispatcher runs fn on the host event loop. GTK frontends post through
// glib.IdleAdd, the terminal frontend through tea.Program.Send.
type Dispatcher func(fn func())
