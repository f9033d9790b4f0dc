package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yllada/egg-timer/common"
)

func TestDurationFromMinutes(t *testing.T) {
	tests := []struct {
		name    string
		current int
		minutes int
		want    int
	}{
		{"unchanged keeps seconds", 125, 2, 125},
		{"unchanged whole minutes", 300, 5, 300},
		{"changed", 125, 3, 180},
		{"cleared", 125, 0, 0},
		{"set from empty", 0, 10, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, durationFromMinutes(tt.current, tt.minutes))
		})
	}
}

type recordingNotifier struct {
	titles   []string
	messages []string
	err      error
}

func (r *recordingNotifier) Notify(_ context.Context, title, message string) error {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
	return r.err
}

func TestSendTestNotification(t *testing.T) {
	n := &recordingNotifier{}
	assert.NoError(t, sendTestNotification(n))
	assert.Equal(t, []string{common.AppName}, n.titles)
	assert.Equal(t, []string{"Notifications are working"}, n.messages)

	failing := &recordingNotifier{err: errors.New("no service")}
	assert.EqualError(t, sendTestNotification(failing), "no service")

	assert.ErrorIs(t, sendTestNotification(nil), common.ErrNotificationFailed)
}
