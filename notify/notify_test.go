package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

type recordingSender struct {
	sent []Notification
	err  error
}

func (r *recordingSender) Send(_ context.Context, n Notification) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, n)
	return nil
}

func TestUrgency_String(t *testing.T) {
	tests := []struct {
		urgency  Urgency
		expected string
	}{
		{UrgencyLow, "low"},
		{UrgencyNormal, "normal"},
		{UrgencyCritical, "critical"},
		{Urgency(9), "normal"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.urgency.String())
		})
	}
}

func TestCommandArgs(t *testing.T) {
	args := commandArgs("Egg Timer", Notification{
		Title:     "Time's up",
		Message:   "done",
		Icon:      "alarm-symbolic",
		Urgency:   UrgencyCritical,
		TimeoutMs: 5000,
	})

	assert.Equal(t, []string{
		"--app-name=Egg Timer",
		"--urgency=critical",
		"--icon=alarm-symbolic",
		"--expire-time=5000",
		"Time's up",
		"done",
	}, args)
}

func TestFallbackSender(t *testing.T) {
	broken := &recordingSender{err: errors.New("no bus")}
	working := &recordingSender{}

	err := FallbackSender{broken, working}.Send(context.Background(), Notification{Title: "t"})
	require.NoError(t, err)
	assert.Len(t, working.sent, 1)

	err = FallbackSender{broken}.Send(context.Background(), Notification{})
	assert.Error(t, err)

	err = FallbackSender{}.Send(context.Background(), Notification{})
	assert.True(t, errors.Is(err, common.ErrNotificationFailed))
}

func TestNotifier_NotifiesOnExpiry(t *testing.T) {
	sender := &recordingSender{}
	n := New(sender, nil)
	n.async = false

	sched := eggtimer.NewManualScheduler()
	c := eggtimer.NewController(sched)
	n.Attach(c)

	c.Commit(1)
	sched.Advance(1)
	assert.Empty(t, sender.sent, "no notification while counting")

	sched.Tick()
	require.Len(t, sender.sent, 1)
	assert.Equal(t, UrgencyCritical, sender.sent[0].Urgency)
}

func TestNotifier_Disabled(t *testing.T) {
	sender := &recordingSender{}
	n := New(sender, func() bool { return false })
	n.async = false

	n.Handle(eggtimer.Event{Kind: eggtimer.EventExpired})
	assert.Empty(t, sender.sent)
}

func TestNotifier_Notify(t *testing.T) {
	sender := &recordingSender{}
	n := New(sender, nil)

	require.NoError(t, n.Notify(context.Background(), "title", "body"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "body", sender.sent[0].Message)
}

type closingSender struct {
	recordingSender
	closed bool
}

func (c *closingSender) Close() error {
	c.closed = true
	return nil
}

func TestNotifier_CloseWaitsAndCloses(t *testing.T) {
	sender := &closingSender{}
	n := New(FallbackSender{sender}, nil)

	n.Handle(eggtimer.Event{Kind: eggtimer.EventExpired})
	require.NoError(t, n.Close())

	assert.True(t, sender.closed)
	assert.Len(t, sender.sent, 1, "Close waits for the pending send")
}
