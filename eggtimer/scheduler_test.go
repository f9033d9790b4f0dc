package eggtimer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerScheduler_DispatchesAndCancels(t *testing.T) {
	var dispatched atomic.Int32
	calls := make(chan func(), 16)

	sched := NewTickerScheduler(func(fn func()) {
		dispatched.Add(1)
		calls <- fn
	})

	var fired atomic.Int32
	cancel := sched.Every(5*time.Millisecond, func() { fired.Add(1) })

	select {
	case fn := <-calls:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never dispatched")
	}

	cancel()
	cancel()

	assert.Equal(t, int32(1), fired.Load())
	assert.GreaterOrEqual(t, dispatched.Load(), int32(1))
}

func TestManualScheduler_CancelIsIdempotent(t *testing.T) {
	m := NewManualScheduler()
	var n int
	cancel := m.Every(time.Second, func() { n++ })

	m.Advance(2)
	cancel()
	cancel()
	m.Advance(2)

	assert.Equal(t, 2, n)
	assert.Zero(t, m.Active())
}
