package eggtimer

import (
	"sync"
	"time"

	"github.com/yllada/egg-timer/common"
)

// Scheduler starts a periodic callback and returns its cancel function.
// Cancel must be safe to call more than once.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler drives callbacks from a time.Ticker. Each tick is handed
// to Dispatch so it runs on the host event loop; with a nil Dispatch the
// callback runs on the ticker goroutine.
type TickerScheduler struct {
	Dispatch common.Dispatcher
}

// NewTickerScheduler creates a scheduler posting ticks through dispatch.
func NewTickerScheduler(dispatch common.Dispatcher) *TickerScheduler {
	return &TickerScheduler{Dispatch: dispatch}
}

// Every implements Scheduler.
func (s *TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if s.Dispatch != nil {
					s.Dispatch(fn)
				} else {
					fn()
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// ManualScheduler fires callbacks only when told to. It stands in for a
// real clock in tests and keeps track of how many sources are active.
type ManualScheduler struct {
	mu      sync.Mutex
	nextID  int
	sources map[int]func()
}

// NewManualScheduler creates an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{sources: make(map[int]func())}
}

// Every implements Scheduler.
func (m *ManualScheduler) Every(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.sources[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.sources, id)
	}
}

// Active returns the number of uncancelled sources.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sources)
}

// Tick fires every active source once.
func (m *ManualScheduler) Tick() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.sources))
	for _, fn := range m.sources {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Advance fires n ticks.
func (m *ManualScheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}
