package notify

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

// sendTimeout bounds one notification round trip.
const sendTimeout = 3 * time.Second

// Notifier announces timer events on the desktop.
// It implements common.Notifier.
type Notifier struct {
	sender  Sender
	enabled func() bool
	async   bool
	pending sync.WaitGroup
}

// New creates a Notifier. enabled is consulted before every notification so
// a preferences change applies immediately; nil means always enabled.
func New(sender Sender, enabled func() bool) *Notifier {
	return &Notifier{sender: sender, enabled: enabled, async: true}
}

// NewDefault creates a Notifier using D-Bus with a notify-send fallback.
func NewDefault(enabled func() bool) *Notifier {
	return New(FallbackSender{
		NewDBusSender(common.AppName),
		NewCommandSender(common.AppName),
	}, enabled)
}

// Notify sends an informational notification.
func (n *Notifier) Notify(ctx context.Context, title, message string) error {
	return n.sender.Send(ctx, Notification{
		Title:     title,
		Message:   message,
		Icon:      "alarm-symbolic",
		Urgency:   UrgencyNormal,
		TimeoutMs: -1,
	})
}

// Attach subscribes to controller events and returns the unsubscribe func.
func (n *Notifier) Attach(c *eggtimer.Controller) func() {
	return c.Subscribe(n.Handle)
}

// Handle notifies on expiry. Sending happens off the event loop.
func (n *Notifier) Handle(ev eggtimer.Event) {
	if ev.Kind != eggtimer.EventExpired {
		return
	}
	if n.enabled != nil && !n.enabled() {
		return
	}

	send := func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		err := n.sender.Send(ctx, Notification{
			Title:     "Time's up",
			Message:   "The egg timer has finished.",
			Icon:      "alarm-symbolic",
			Urgency:   UrgencyCritical,
			TimeoutMs: -1,
		})
		if err != nil {
			common.LogWarn("Could not show expiry notification: %v", err)
		}
	}

	if n.async {
		n.pending.Add(1)
		go func() {
			defer n.pending.Done()
			send()
		}()
		return
	}
	send()
}

// Close waits for notifications in flight and releases the sender.
func (n *Notifier) Close() error {
	n.pending.Wait()
	if closer, ok := n.sender.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

var _ common.Notifier = (*Notifier)(nil)
