package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/egg-timer/eggtimer"
)

func newTestRecorder(t *testing.T) (*Recorder, *Store, *eggtimer.Controller, *eggtimer.ManualScheduler) {
	t.Helper()
	store := openTestStore(t)

	rec := NewRecorder(store)
	clock := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	rec.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	ids := 0
	rec.newID = func() string {
		ids++
		return fmt.Sprintf("session-%d", ids)
	}

	sched := eggtimer.NewManualScheduler()
	c := eggtimer.NewController(sched)
	rec.Attach(c)
	return rec, store, c, sched
}

func recent(t *testing.T, store *Store) []Session {
	t.Helper()
	sessions, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	return sessions
}

func TestRecorder_Completed(t *testing.T) {
	_, store, c, sched := newTestRecorder(t)

	require.True(t, c.Commit(3))
	sched.Advance(4)

	sessions := recent(t, store)
	require.Len(t, sessions, 1)
	assert.Equal(t, OutcomeCompleted, sessions[0].Outcome)
	assert.Equal(t, 3, sessions[0].Duration)
	assert.Equal(t, 0, sessions[0].Remaining)
}

func TestRecorder_PauseResumeIsOneSession(t *testing.T) {
	_, store, c, sched := newTestRecorder(t)

	require.True(t, c.Commit(10))
	sched.Advance(2)
	c.Pause()
	c.Start()
	sched.Advance(2)
	c.Pause()
	require.True(t, c.Reset())

	sessions := recent(t, store)
	require.Len(t, sessions, 1)
	assert.Equal(t, OutcomeReset, sessions[0].Outcome)
	assert.Equal(t, 6, sessions[0].Remaining)
	assert.Equal(t, 4, sessions[0].Elapsed())
}

func TestRecorder_RestartOpensNewSession(t *testing.T) {
	rec, store, c, sched := newTestRecorder(t)

	var saved []Session
	rec.OnSaved(func(s Session) { saved = append(saved, s) })

	require.True(t, c.Commit(20))
	sched.Advance(5)
	c.Pause()
	require.True(t, c.Restart())
	c.Start()
	sched.Advance(1)
	rec.Flush()

	require.Len(t, saved, 2)
	assert.Equal(t, OutcomeRestarted, saved[0].Outcome)
	assert.Equal(t, 15, saved[0].Remaining)
	assert.Equal(t, OutcomeAbandoned, saved[1].Outcome)
	assert.Equal(t, 19, saved[1].Remaining)
	assert.NotEqual(t, saved[0].ID, saved[1].ID)
	assert.Len(t, recent(t, store), 2)
}

func TestRecorder_CommitOverPausedSession(t *testing.T) {
	_, store, c, sched := newTestRecorder(t)

	require.True(t, c.Commit(30))
	sched.Advance(1)
	c.Pause()
	require.True(t, c.Commit(60))

	sessions := recent(t, store)
	require.Len(t, sessions, 1)
	assert.Equal(t, OutcomeReplaced, sessions[0].Outcome)
	assert.Equal(t, 30, sessions[0].Duration)
}

func TestRecorder_AdjustOverPausedSession(t *testing.T) {
	_, store, c, sched := newTestRecorder(t)

	require.True(t, c.Commit(10))
	sched.Advance(2)
	require.True(t, c.Pause())
	require.True(t, c.Adjust(60))
	c.Toggle()
	sched.Advance(71)

	sessions := recent(t, store)
	require.Len(t, sessions, 2)

	byOutcome := map[Outcome]Session{}
	for _, s := range sessions {
		byOutcome[s.Outcome] = s
	}
	replaced := byOutcome[OutcomeReplaced]
	assert.Equal(t, 10, replaced.Duration)
	assert.Equal(t, 8, replaced.Remaining)

	completed := byOutcome[OutcomeCompleted]
	assert.Equal(t, 68, completed.Duration)
	assert.Equal(t, 0, completed.Remaining)
	assert.Equal(t, 68, completed.Elapsed())
}

func TestRecorder_EmptyStartIsNotRecorded(t *testing.T) {
	rec, store, c, sched := newTestRecorder(t)

	c.Start()
	sched.Advance(1)
	rec.Flush()

	assert.Empty(t, recent(t, store))
}
