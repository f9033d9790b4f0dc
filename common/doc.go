// Package common provides shared constants, types, and utilities
// used throughout the Egg Timer application.
//
// This package holds the cross-cutting concerns:
//
//   - Constants: dial geometry, tick interval, file names and UI dimensions
//   - Errors: sentinel errors for configuration, history and notifications
//   - Interfaces: Notifier, Logger and the event loop Dispatcher
//   - Logger: leveled logging to the console and a rotated log file
//   - Utils: config/data directory helpers and duration clamping
//
// # Usage
//
//	common.LogInfo("Countdown started at %d seconds", remaining)
//
//	if errors.Is(err, common.ErrHistoryUnavailable) {
//	    // Run without history
//	}
package common
