// Package common provides shared constants, types, and utilities
// used across the Egg Timer application.
package common

import "errors"

// Sentinel errors shared by the application packages.
// These can be checked with errors.Is() for proper error handling.
var (
	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// History errors.
	ErrHistoryUnavailable = errors.New("session history unavailable")
	ErrSessionNotFound    = errors.New("session not found")

	// Notification errors.
	ErrNotificationFailed = errors.New("notification failed")

	// Input errors.
	ErrInvalidDuration = errors.New("invalid duration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
