package eggtimer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{60, "01:00"},
		{90, "01:30"},
		{125, "02:05"},
		{3599, "59:59"},
		{3600, "60:00"},
		{-3, "00:00"},
		{89.4, "01:29"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.seconds))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "02:00", FormatDuration(120))
}

func TestState_Progress(t *testing.T) {
	assert.Equal(t, 0.0, State{}.Progress())
	assert.InDelta(t, 0.5, State{Remaining: 60, LastSet: 120}.Progress(), 1e-9)
	assert.Equal(t, 1.0, State{Remaining: 200, LastSet: 120}.Progress())
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "expired", EventExpired.String())
	assert.Equal(t, "committed", EventCommitted.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}
