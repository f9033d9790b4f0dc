package eggtimer

// State is a snapshot of the countdown.
type State struct {
	// Paused is true whenever the countdown is not running.
	Paused bool
	// Remaining is the number of seconds left.
	Remaining int
	// LastSet is the duration last committed from the dial.
	LastSet int
	// Angle is the dial position in degrees, always derived from Remaining.
	Angle float64
	// Center is the measured dial center, valid once CenterMeasured is set.
	Center         Point
	CenterMeasured bool
	// ControlsVisible reports whether the start/pause panel is shown.
	ControlsVisible bool
	// SecondaryVisible reports whether restart and reset are shown.
	SecondaryVisible bool
}

// Running reports whether the countdown is ticking.
func (s State) Running() bool {
	return !s.Paused
}

// Display returns the MM:SS text for the remaining time.
func (s State) Display() string {
	return FormatDuration(s.Remaining)
}

// Progress returns Remaining as a fraction of LastSet, in [0, 1].
func (s State) Progress() float64 {
	if s.LastSet <= 0 {
		return 0
	}
	p := float64(s.Remaining) / float64(s.LastSet)
	if p > 1 {
		return 1
	}
	return p
}

// EventKind identifies the transition that produced an Event.
type EventKind int

const (
	EventCenterMeasured EventKind = iota
	EventDragged
	EventCommitted
	EventStarted
	EventTicked
	EventPaused
	EventExpired
	EventRestarted
	EventReset
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventCenterMeasured:
		return "center-measured"
	case EventDragged:
		return "dragged"
	case EventCommitted:
		return "committed"
	case EventStarted:
		return "started"
	case EventTicked:
		return "ticked"
	case EventPaused:
		return "paused"
	case EventExpired:
		return "expired"
	case EventRestarted:
		return "restarted"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is published to subscribers after every transition.
type Event struct {
	Kind  EventKind
	State State
}
