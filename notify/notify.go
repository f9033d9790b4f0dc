// Package notify sends desktop notifications through the freedesktop
// notification service, falling back to notify-send.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/egg-timer/common"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyCall = busName + ".Notify"
)

// Urgency follows the freedesktop notification urgency levels.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// String returns the name notify-send expects.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Notification is a single desktop notification.
type Notification struct {
	Title   string
	Message string
	Icon    string
	Urgency Urgency
	// TimeoutMs is the display time; -1 lets the server decide.
	TimeoutMs int32
}

// Sender delivers notifications.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// DBusSender talks to the notification service on the session bus.
// The bus connection is opened lazily on first use.
type DBusSender struct {
	appName string

	mu     sync.Mutex
	conn   *dbus.Conn
	lastID uint32
}

// NewDBusSender creates a sender that identifies itself as appName.
func NewDBusSender(appName string) *DBusSender {
	return &DBusSender{appName: appName}
}

func (s *DBusSender) connect() (*dbus.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil && s.conn.Connected() {
		return s.conn, nil
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	s.conn = conn
	return conn, nil
}

// Send implements Sender. Consecutive notifications replace each other so
// only the latest expiry stays on screen.
func (s *DBusSender) Send(ctx context.Context, n Notification) error {
	conn, err := s.connect()
	if err != nil {
		return fmt.Errorf("%w: session bus: %v", common.ErrNotificationFailed, err)
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(n.Urgency)),
	}

	s.mu.Lock()
	replaces := s.lastID
	s.mu.Unlock()

	obj := conn.Object(busName, objectPath)
	call := obj.CallWithContext(ctx, notifyCall, 0,
		s.appName, replaces, n.Icon, n.Title, n.Message,
		[]string{}, hints, n.TimeoutMs)
	if call.Err != nil {
		return fmt.Errorf("%w: %v", common.ErrNotificationFailed, call.Err)
	}

	var id uint32
	if err := call.Store(&id); err == nil {
		s.mu.Lock()
		s.lastID = id
		s.mu.Unlock()
	}
	return nil
}

// Close releases the bus connection.
func (s *DBusSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// CommandSender shells out to notify-send.
type CommandSender struct {
	appName string
}

// NewCommandSender creates a notify-send based sender.
func NewCommandSender(appName string) *CommandSender {
	return &CommandSender{appName: appName}
}

// Send implements Sender.
func (s *CommandSender) Send(ctx context.Context, n Notification) error {
	cmd := exec.CommandContext(ctx, "notify-send", commandArgs(s.appName, n)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: notify-send: %v", common.ErrNotificationFailed, err)
	}
	return nil
}

func commandArgs(appName string, n Notification) []string {
	args := []string{
		"--app-name=" + appName,
		"--urgency=" + n.Urgency.String(),
	}
	if n.Icon != "" {
		args = append(args, "--icon="+n.Icon)
	}
	if n.TimeoutMs > 0 {
		args = append(args, fmt.Sprintf("--expire-time=%d", n.TimeoutMs))
	}
	return append(args, n.Title, n.Message)
}

// FallbackSender tries each sender in order until one succeeds.
type FallbackSender []Sender

// Send implements Sender.
func (f FallbackSender) Send(ctx context.Context, n Notification) error {
	var lastErr error
	for _, s := range f {
		if err := s.Send(ctx, n); err != nil {
			common.LogDebug("Notification sender failed: %v", err)
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr == nil {
		return fmt.Errorf("%w: no senders configured", common.ErrNotificationFailed)
	}
	return lastErr
}

// Close closes every sender that holds resources.
func (f FallbackSender) Close() error {
	var errs []error
	for _, s := range f {
		if closer, ok := s.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
