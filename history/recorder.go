package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

// writeTimeout bounds a single insert issued from the event loop.
const writeTimeout = 2 * time.Second

// Recorder turns controller events into stored sessions.
//
// A session opens on the first start after a commit or restart and closes
// when the countdown expires, is reset or restarted, when the dial is moved
// to a new duration, or when Flush is called at shutdown.
type Recorder struct {
	store     *Store
	open      *Session
	remaining int
	now       func() time.Time
	newID     func() string
	onSaved   func(Session)
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store *Store) *Recorder {
	return &Recorder{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// OnSaved registers a callback invoked after each session is stored.
func (r *Recorder) OnSaved(fn func(Session)) {
	r.onSaved = fn
}

// Attach subscribes the recorder to c and returns the unsubscribe func.
func (r *Recorder) Attach(c *eggtimer.Controller) func() {
	return c.Subscribe(r.Handle)
}

// Handle processes one controller event.
func (r *Recorder) Handle(ev eggtimer.Event) {
	switch ev.Kind {
	case eggtimer.EventCommitted, eggtimer.EventDragged:
		// A new duration on the dial replaces the paused session
		r.finish(OutcomeReplaced)
	case eggtimer.EventStarted:
		if r.open == nil && ev.State.Remaining > 0 {
			r.open = &Session{
				ID:        r.newID(),
				Duration:  ev.State.LastSet,
				StartedAt: r.now(),
			}
		}
		r.remaining = ev.State.Remaining
	case eggtimer.EventTicked, eggtimer.EventPaused:
		r.remaining = ev.State.Remaining
	case eggtimer.EventExpired:
		r.remaining = 0
		r.finish(OutcomeCompleted)
	case eggtimer.EventReset:
		r.finish(OutcomeReset)
	case eggtimer.EventRestarted:
		r.finish(OutcomeRestarted)
	}
}

// Flush stores the open session, if any, as abandoned.
func (r *Recorder) Flush() {
	r.finish(OutcomeAbandoned)
}

func (r *Recorder) finish(outcome Outcome) {
	if r.open == nil {
		return
	}
	session := *r.open
	r.open = nil

	session.Remaining = r.remaining
	session.Outcome = outcome
	session.EndedAt = r.now()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.store.Insert(ctx, session); err != nil {
		common.LogWarn("Could not record session: %v", err)
		return
	}
	common.LogDebug("Recorded %s session of %ds", outcome, session.Duration)

	if r.onSaved != nil {
		r.onSaved(session)
	}
}
