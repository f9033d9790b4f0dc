package eggtimer

import (
	"github.com/yllada/egg-timer/common"
)

// Controller is the countdown state machine behind the dial.
//
// It starts paused with nothing set. Operations refused by a guard return
// false and leave the state untouched.
type Controller struct {
	state  State
	sched  Scheduler
	cancel func()
	// gen is bumped whenever the tick source changes; a tick carrying an
	// older generation was queued before a cancel and is dropped.
	gen    uint64
	closed bool

	subs   map[int]func(Event)
	nextID int
	order  []int
}

// NewController creates a paused controller ticking through sched.
// A nil sched falls back to a TickerScheduler calling back on its own
// goroutine.
func NewController(sched Scheduler) *Controller {
	if sched == nil {
		sched = NewTickerScheduler(nil)
	}
	return &Controller{
		state: State{Paused: true},
		sched: sched,
		subs:  make(map[int]func(Event)),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Subscribe registers fn for every Event and returns a function that
// removes it. Subscribers are called in registration order.
func (c *Controller) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.order = append(c.order, id)

	return func() {
		if _, ok := c.subs[id]; !ok {
			return
		}
		delete(c.subs, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i:i], c.order[i+1:]...)
				break
			}
		}
	}
}

func (c *Controller) emit(kind EventKind) {
	ev := Event{Kind: kind, State: c.state}
	if kind != EventTicked {
		common.LogDebug("Timer %s: remaining=%d last=%d paused=%t",
			kind, c.state.Remaining, c.state.LastSet, c.state.Paused)
	}

	ids := append([]int(nil), c.order...)
	for _, id := range ids {
		if fn, ok := c.subs[id]; ok {
			fn(ev)
		}
	}
}

// MeasureCenter records the dial center. Only the first call counts; the
// center is not re-measured afterwards.
func (c *Controller) MeasureCenter(center Point) bool {
	if c.state.CenterMeasured {
		return false
	}
	c.state.Center = center
	c.state.CenterMeasured = true
	c.emit(EventCenterMeasured)
	return true
}

// CanDrag reports whether the dial accepts a drag right now. Frontends
// evaluate it when a gesture begins.
func (c *Controller) CanDrag() bool {
	return c.state.Paused && c.state.CenterMeasured && !c.closed
}

// setDuration stores seconds as both the remaining and last set duration.
func (c *Controller) setDuration(seconds int) {
	seconds = common.ClampSeconds(seconds)
	c.state.Remaining = seconds
	c.state.LastSet = seconds
	c.state.Angle = AngleForSeconds(seconds)
}

// Drag moves the dial to the angle of p.
func (c *Controller) Drag(p Point) bool {
	if !c.CanDrag() {
		return false
	}
	c.setDuration(SecondsForAngle(Angle(p, c.state.Center)))
	c.emit(EventDragged)
	return true
}

// Release commits the angle of p as the countdown duration and starts it.
func (c *Controller) Release(p Point) bool {
	if !c.CanDrag() {
		return false
	}
	return c.Commit(SecondsForAngle(Angle(p, c.state.Center)))
}

// Commit sets seconds as the duration and starts counting down, as a drag
// release would. It is refused while running.
func (c *Controller) Commit(seconds int) bool {
	if !c.state.Paused || c.closed {
		return false
	}
	c.setDuration(seconds)
	c.state.ControlsVisible = true
	c.emit(EventCommitted)
	c.Start()
	return true
}

// Adjust moves the paused dial by delta seconds without starting.
func (c *Controller) Adjust(delta int) bool {
	if !c.state.Paused || c.closed {
		return false
	}
	c.setDuration(c.state.Remaining + delta)
	c.emit(EventDragged)
	return true
}

// Start begins ticking once per second. Any previously scheduled tick
// source is cancelled first.
func (c *Controller) Start() {
	if c.closed {
		return
	}
	c.stopTicking()

	gen := c.gen
	c.state.Paused = false
	c.state.SecondaryVisible = false
	c.cancel = c.sched.Every(common.TickInterval, func() { c.tick(gen) })
	c.emit(EventStarted)
}

// Pause stops the countdown, keeping the remaining time.
func (c *Controller) Pause() bool {
	if c.state.Paused {
		return false
	}
	c.stopTicking()
	c.state.Paused = true
	c.state.SecondaryVisible = true
	c.emit(EventPaused)
	return true
}

// Toggle starts a paused countdown or pauses a running one.
func (c *Controller) Toggle() {
	if c.state.Paused {
		c.Start()
		return
	}
	c.Pause()
}

// Restart rewinds the remaining time to the last committed duration
// without starting.
func (c *Controller) Restart() bool {
	if !c.state.Paused {
		return false
	}
	c.state.Remaining = c.state.LastSet
	c.state.Angle = AngleForSeconds(c.state.LastSet)
	c.emit(EventRestarted)
	return true
}

// Reset clears the remaining time and the last committed duration.
func (c *Controller) Reset() bool {
	if !c.state.Paused {
		return false
	}
	c.setDuration(0)
	c.state.ControlsVisible = false
	c.state.SecondaryVisible = false
	c.emit(EventReset)
	return true
}

// Close stops ticking for good. Later ticks and starts are ignored.
func (c *Controller) Close() {
	c.stopTicking()
	c.closed = true
	c.state.Paused = true
}

func (c *Controller) stopTicking() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
}

func (c *Controller) tick(gen uint64) {
	if c.closed || gen != c.gen || c.state.Paused {
		return
	}

	if c.state.Remaining < 1 {
		c.expire()
		return
	}

	c.state.Remaining--
	c.state.Angle = AngleForSeconds(c.state.Remaining)
	c.emit(EventTicked)
}

func (c *Controller) expire() {
	c.stopTicking()
	c.state.Paused = true
	c.state.Remaining = 0
	c.state.Angle = 0
	c.state.LastSet = 0
	c.state.ControlsVisible = false
	c.emit(EventExpired)
}

// Observer follows the events of a controller.
type Observer interface {
	Attach(c *Controller) (detach func())
}

// AttachAll attaches every observer to c and returns a function detaching
// them all.
func AttachAll(c *Controller, observers ...Observer) (detach func()) {
	detachers := make([]func(), 0, len(observers))
	for _, o := range observers {
		if o != nil {
			detachers = append(detachers, o.Attach(c))
		}
	}
	return func() {
		for _, d := range detachers {
			d()
		}
	}
}
