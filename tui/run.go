package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

// Options configures a terminal session.
type Options struct {
	// Duration is committed at startup when positive, in seconds.
	Duration int
	// Observers are attached to the controller for the whole session.
	Observers []eggtimer.Observer
}

// Run shows the terminal egg timer until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	var program *tea.Program

	// Ticks only fire after Start, which happens inside the program loop,
	// so program is set by the time dispatch is called.
	sched := eggtimer.NewTickerScheduler(func(fn func()) {
		program.Send(dispatchMsg(fn))
	})
	ctrl := eggtimer.NewController(sched)
	defer ctrl.Close()

	detach := eggtimer.AttachAll(ctrl, opts.Observers...)
	defer detach()

	program = tea.NewProgram(
		NewModel(ctrl, opts.Duration),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	common.LogInfo("Starting terminal interface")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal interface: %w", err)
	}
	return nil
}
