// Package cli provides command-line interface functionality for Egg Timer.
// This allows running a countdown and inspecting history from the terminal
// without launching a graphical interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
	"github.com/yllada/egg-timer/history"
)

// CLI represents the command-line interface.
type CLI struct {
	out   io.Writer
	store *history.Store
	// interactive output overwrites the clock line in place
	interactive bool
	// newScheduler builds the tick source for a countdown
	newScheduler func(dispatch common.Dispatcher) eggtimer.Scheduler
}

// New creates a new CLI writing to out. store may be nil when history is
// disabled.
func New(out io.Writer, store *history.Store) *CLI {
	return &CLI{
		out:         out,
		store:       store,
		interactive: isTerminal(out),
		newScheduler: func(dispatch common.Dispatcher) eggtimer.Scheduler {
			return eggtimer.NewTickerScheduler(dispatch)
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ParseDuration parses a countdown length. It accepts Go durations
// ("2m5s"), clock notation ("02:05") and plain seconds ("125").
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", common.ErrInvalidDuration)
	}

	var seconds int
	switch {
	case strings.Contains(s, ":"):
		minutes, secs, _ := strings.Cut(s, ":")
		if !isClockField(minutes) || !isClockField(secs) {
			return 0, fmt.Errorf("%w: %q is not MM:SS", common.ErrInvalidDuration, s)
		}
		m, _ := strconv.Atoi(minutes)
		sec, _ := strconv.Atoi(secs)
		if sec >= 60 {
			return 0, fmt.Errorf("%w: %q is not MM:SS", common.ErrInvalidDuration, s)
		}
		seconds = m*60 + sec
	default:
		if n, err := strconv.Atoi(s); err == nil {
			seconds = n
			break
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", common.ErrInvalidDuration, err)
		}
		if d%time.Second != 0 {
			return 0, fmt.Errorf("%w: %s is not a whole number of seconds", common.ErrInvalidDuration, d)
		}
		seconds = int(d / time.Second)
	}

	if seconds <= 0 || seconds > common.DialCapacity {
		return 0, fmt.Errorf("%w: %s is outside 00:01..%s", common.ErrInvalidDuration,
			s, eggtimer.FormatDuration(common.DialCapacity))
	}
	return seconds, nil
}

// isClockField reports whether f is one or two decimal digits.
func isClockField(f string) bool {
	if len(f) == 0 || len(f) > 2 {
		return false
	}
	for _, r := range f {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Countdown runs a countdown of seconds and prints the clock every tick.
// It returns nil on expiry and ctx.Err() when cancelled.
func (c *CLI) Countdown(ctx context.Context, seconds int, observers ...eggtimer.Observer) error {
	// Ticks and controller calls all run on this goroutine.
	queue := make(chan func())
	stop := make(chan struct{})
	defer close(stop)
	dispatch := func(fn func()) {
		select {
		case queue <- fn:
		case <-stop:
		case <-ctx.Done():
		}
	}

	ctrl := eggtimer.NewController(c.newScheduler(dispatch))
	defer ctrl.Close()

	detach := eggtimer.AttachAll(ctrl, observers...)
	defer detach()

	done := false
	ctrl.Subscribe(func(ev eggtimer.Event) {
		switch ev.Kind {
		case eggtimer.EventStarted, eggtimer.EventTicked:
			c.printClock(ev.State.Display())
		case eggtimer.EventExpired:
			c.printClock(ev.State.Display())
			c.endLine()
			fmt.Fprintln(c.out, "✓ Time's up!")
			done = true
		}
	})

	if !ctrl.Commit(seconds) {
		return fmt.Errorf("%w: could not start %d seconds", common.ErrInvalidDuration, seconds)
	}
	common.LogInfo("Headless countdown of %s started", eggtimer.FormatDuration(seconds))

	for !done {
		select {
		case fn := <-queue:
			fn()
		case <-ctx.Done():
			c.endLine()
			fmt.Fprintf(c.out, "Stopped with %s left\n", ctrl.State().Display())
			return ctx.Err()
		}
	}
	return nil
}

func (c *CLI) printClock(display string) {
	if c.interactive {
		fmt.Fprintf(c.out, "\r⏱  %s ", display)
		return
	}
	fmt.Fprintln(c.out, display)
}

func (c *CLI) endLine() {
	if c.interactive {
		fmt.Fprintln(c.out)
	}
}

// ListHistory prints the most recent sessions.
func (c *CLI) ListHistory(ctx context.Context, limit int) error {
	if c.store == nil {
		return common.ErrHistoryUnavailable
	}

	sessions, err := c.store.Recent(ctx, limit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(c.out, "No sessions recorded.")
		fmt.Fprintln(c.out, "Run a countdown to start a history: egg-timer -duration 5m")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENDED\tDURATION\tELAPSED\tOUTCOME")
	fmt.Fprintln(w, "--\t-----\t--------\t-------\t-------")

	for _, s := range sessions {
		// Truncate ID for display
		shortID := s.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID,
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			eggtimer.FormatDuration(s.Duration),
			eggtimer.FormatDuration(s.Elapsed()),
			s.Outcome)
	}

	return w.Flush()
}

// ClearHistory deletes every recorded session.
func (c *CLI) ClearHistory(ctx context.Context) error {
	if c.store == nil {
		return common.ErrHistoryUnavailable
	}

	n, err := c.store.Clear(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "✓ Removed %d session(s)\n", n)
	return nil
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Egg Timer - drag the dial, release to start

Usage:
  egg-timer [OPTIONS]

Options:
  -tui                Run the terminal interface
  -duration D         Start a countdown of D (2m5s, 02:05 or 125)
  -history            List recent sessions
  -clear-history      Delete all recorded sessions
  -verbose            Enable verbose logging
  -version            Show version and exit
  -help               Show this help message

Examples:
  egg-timer
  egg-timer -tui -duration 4m
  egg-timer -duration 02:05
  egg-timer -history

Notes:
  - Without -tui, -duration counts down in the terminal and exits at zero
  - The dial holds at most 60 minutes
  - Run without options to launch the desktop window`)
}
