package eggtimer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCenter = Point{X: 200, Y: 200}

// pointFor returns a drag point on the dial for the given seconds.
func pointFor(seconds int) Point {
	return PointOnDial(testCenter, 120, AngleForSeconds(seconds))
}

func newTestController(t *testing.T) (*Controller, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	c := NewController(sched)
	require.True(t, c.MeasureCenter(testCenter))
	return c, sched
}

func assertConsistent(t *testing.T, s State) {
	t.Helper()
	assert.GreaterOrEqual(t, s.Remaining, 0)
	assert.InDelta(t, float64(s.Remaining), s.Angle/360*3600, 1e-9,
		"angle %v does not match remaining %d", s.Angle, s.Remaining)
}

func TestController_InitialState(t *testing.T) {
	c := NewController(NewManualScheduler())
	s := c.State()

	assert.True(t, s.Paused)
	assert.Zero(t, s.Remaining)
	assert.Zero(t, s.LastSet)
	assert.Zero(t, s.Angle)
	assert.False(t, s.ControlsVisible)
	assert.False(t, c.CanDrag(), "drag needs a measured center")
}

func TestController_MeasureCenterOnce(t *testing.T) {
	c, _ := newTestController(t)

	assert.False(t, c.MeasureCenter(Point{X: 1, Y: 1}))
	assert.Equal(t, testCenter, c.State().Center)
}

func TestController_DragSetsDuration(t *testing.T) {
	c, sched := newTestController(t)

	require.True(t, c.Drag(pointFor(600)))
	s := c.State()

	assert.Equal(t, 600, s.Remaining)
	assert.Equal(t, 600, s.LastSet)
	assert.True(t, s.Paused, "dragging does not start the countdown")
	assert.Zero(t, sched.Active())
	assertConsistent(t, s)
}

func TestController_ReleaseCommitsAndStarts(t *testing.T) {
	c, sched := newTestController(t)

	require.True(t, c.Release(pointFor(125)))
	s := c.State()

	assert.False(t, s.Paused)
	assert.Equal(t, 125, s.Remaining)
	assert.Equal(t, 125, s.LastSet)
	assert.True(t, s.ControlsVisible)
	assert.False(t, s.SecondaryVisible)
	assert.Equal(t, 1, sched.Active())
	assert.Equal(t, "02:05", s.Display())
}

func TestController_DragRefusedWhileRunning(t *testing.T) {
	c, _ := newTestController(t)
	require.True(t, c.Release(pointFor(300)))

	assert.False(t, c.CanDrag())
	assert.False(t, c.Drag(pointFor(60)))
	assert.False(t, c.Release(pointFor(60)))
	assert.False(t, c.Adjust(60))
	assert.Equal(t, 300, c.State().Remaining)
}

func TestController_TickDecrements(t *testing.T) {
	c, sched := newTestController(t)
	require.True(t, c.Release(pointFor(125)))
	before := c.State().Angle

	sched.Advance(5)
	s := c.State()

	assert.Equal(t, 120, s.Remaining)
	assert.Equal(t, "02:00", s.Display())
	assert.Less(t, s.Angle, before)
	assert.InDelta(t, before*120/125, s.Angle, 1e-9)
	assertConsistent(t, s)
}

func TestController_ScenarioPauseRestart(t *testing.T) {
	c, sched := newTestController(t)

	require.True(t, c.Release(pointFor(125)))
	assert.Equal(t, "02:05", c.State().Display())

	sched.Advance(5)
	assert.Equal(t, "02:00", c.State().Display())

	require.True(t, c.Pause())
	assert.True(t, c.State().SecondaryVisible)

	require.True(t, c.Restart())
	s := c.State()
	assert.Equal(t, "02:05", s.Display())
	assert.True(t, s.Paused, "restart does not resume")
	assertConsistent(t, s)
}

func TestController_Expiry(t *testing.T) {
	c, sched := newTestController(t)

	var kinds []EventKind
	c.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	require.True(t, c.Commit(3))
	sched.Advance(3)
	assert.Equal(t, 0, c.State().Remaining)
	assert.False(t, c.State().Paused, "still running at 00:00 until the next tick")

	sched.Tick()
	s := c.State()

	assert.True(t, s.Paused)
	assert.Zero(t, s.Remaining)
	assert.Zero(t, s.Angle)
	assert.Zero(t, s.LastSet)
	assert.False(t, s.ControlsVisible)
	assert.Zero(t, sched.Active(), "expiry cancels the tick source")
	assert.Equal(t, EventExpired, kinds[len(kinds)-1])

	sched.Advance(10)
	assert.Zero(t, c.State().Remaining)
}

func TestController_NeverNegative(t *testing.T) {
	c, sched := newTestController(t)
	require.True(t, c.Commit(2))

	for i := 0; i < 20; i++ {
		sched.Tick()
		assertConsistent(t, c.State())
	}
}

func TestController_RepeatedStartKeepsOneSource(t *testing.T) {
	c, sched := newTestController(t)
	require.True(t, c.Commit(100))

	c.Start()
	c.Start()
	c.Start()

	assert.Equal(t, 1, sched.Active())
	sched.Tick()
	assert.Equal(t, 99, c.State().Remaining)
}

func TestController_StaleTickIgnored(t *testing.T) {
	sched := NewManualScheduler()
	c := NewController(sched)
	c.MeasureCenter(testCenter)

	// Capture the first source's callback before it is replaced
	var stale func()
	capture := &capturingScheduler{inner: sched, onEvery: func(fn func()) {
		if stale == nil {
			stale = fn
		}
	}}
	c.sched = capture

	require.True(t, c.Commit(50))
	c.Pause()
	c.Start()

	stale()
	assert.Equal(t, 50, c.State().Remaining, "a tick from a cancelled source must not count")

	sched.Tick()
	assert.Equal(t, 49, c.State().Remaining)
}

func TestController_PauseGuards(t *testing.T) {
	c, _ := newTestController(t)

	assert.False(t, c.Pause(), "already paused")

	require.True(t, c.Commit(30))
	assert.False(t, c.Restart(), "restart only while paused")
	assert.False(t, c.Reset(), "reset only while paused")
}

func TestController_Reset(t *testing.T) {
	c, sched := newTestController(t)
	require.True(t, c.Release(pointFor(900)))
	sched.Advance(30)
	require.True(t, c.Pause())

	require.True(t, c.Reset())
	s := c.State()

	assert.Zero(t, s.Remaining)
	assert.Zero(t, s.Angle)
	assert.Zero(t, s.LastSet)
	assert.False(t, s.ControlsVisible)
	assert.False(t, s.SecondaryVisible)
}

func TestController_Toggle(t *testing.T) {
	c, sched := newTestController(t)
	require.True(t, c.Commit(10))

	c.Toggle()
	assert.True(t, c.State().Paused)
	assert.Zero(t, sched.Active())

	c.Toggle()
	assert.False(t, c.State().Paused)
	assert.Equal(t, 1, sched.Active())
}

func TestController_AdjustClamps(t *testing.T) {
	c, _ := newTestController(t)

	require.True(t, c.Adjust(-60))
	assert.Zero(t, c.State().Remaining)

	require.True(t, c.Adjust(5000))
	assert.Equal(t, 3600, c.State().Remaining)
	assertConsistent(t, c.State())
}

func TestController_Close(t *testing.T) {
	c, sched := newTestController(t)
	require.True(t, c.Commit(10))

	c.Close()
	assert.Zero(t, sched.Active())

	c.Start()
	assert.Zero(t, sched.Active())
	assert.False(t, c.Commit(5))
}

func TestController_SubscribeUnsubscribe(t *testing.T) {
	c, _ := newTestController(t)

	var a, b int
	unsubA := c.Subscribe(func(Event) { a++ })
	c.Subscribe(func(Event) { b++ })

	c.Adjust(60)
	unsubA()
	unsubA()
	c.Adjust(60)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

type capturingScheduler struct {
	inner   Scheduler
	onEvery func(fn func())
}

func (s *capturingScheduler) Every(d time.Duration, fn func()) func() {
	s.onEvery(fn)
	return s.inner.Every(d, fn)
}

type countingObserver struct{ events int }

func (o *countingObserver) Attach(c *Controller) func() {
	return c.Subscribe(func(Event) { o.events++ })
}

func TestAttachAll(t *testing.T) {
	c, _ := newTestController(t)
	a, b := &countingObserver{}, &countingObserver{}

	detach := AttachAll(c, a, nil, b)
	c.Adjust(60)
	detach()
	c.Adjust(60)

	assert.Equal(t, 1, a.events)
	assert.Equal(t, 1, b.events)
}
