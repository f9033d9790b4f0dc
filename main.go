// Package main provides the entry point for the Egg Timer application.
// Egg Timer is a kitchen-style countdown: drag the dial to set up to an
// hour, release to start.
//
// Features:
//   - GTK4 window with a draggable dial and animated controls
//   - Terminal interface with mouse support (-tui)
//   - Headless countdown for scripts (-duration without -tui)
//   - Desktop notification on expiry and a system tray indicator
//   - Session history stored in SQLite
//
// Usage:
//
//	egg-timer [options]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/egg-timer/cli"
	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/config"
	"github.com/yllada/egg-timer/eggtimer"
	"github.com/yllada/egg-timer/history"
	"github.com/yllada/egg-timer/notify"
	"github.com/yllada/egg-timer/tui"
	"github.com/yllada/egg-timer/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// Mode flags
	useTUI       = flag.Bool("tui", false, "Run the terminal interface")
	durationFlag = flag.String("duration", "", "Start a countdown (2m5s, 02:05 or seconds)")
	listHistory  = flag.Bool("history", false, "List recent sessions")
	clearHistory = flag.Bool("clear-history", false, "Delete all recorded sessions")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		return 0
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		return 0
	}

	// Initialize logger with file output
	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}
	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		Quiet:       *useTUI,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	// Setup graceful shutdown context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	duration := cfg.DefaultDuration
	if *durationFlag != "" {
		duration, err = cli.ParseDuration(*durationFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
	}

	// History is opened for recording and for the history commands
	var store *history.Store
	if cfg.RecordHistory || *listHistory || *clearHistory {
		store, err = history.OpenDefault()
		if err != nil {
			common.LogWarn("History disabled: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	if *listHistory || *clearHistory {
		return runHistory(ctx, store)
	}

	var recorder *history.Recorder
	if store != nil && cfg.RecordHistory {
		recorder = history.NewRecorder(store)
		// A session still open at exit is recorded as abandoned
		defer recorder.Flush()
	}

	notifier := notify.NewDefault(func() bool { return cfg.ShowNotifications })
	defer notifier.Close()

	observers := []eggtimer.Observer{notifier}
	if recorder != nil {
		observers = append(observers, recorder)
	}

	switch {
	case *useTUI:
		common.LogInfo("Starting %s v%s (terminal)", common.AppName, appVersion)
		if err := tui.Run(ctx, tui.Options{Duration: duration, Observers: observers}); err != nil {
			common.LogError("%v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0

	case *durationFlag != "":
		err := cli.New(os.Stdout, store).Countdown(ctx, duration, observers...)
		if errors.Is(err, context.Canceled) {
			return 130
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Start the GTK application (GUI mode)
	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(ui.Options{
		Version:  appVersion,
		Config:   cfg,
		History:  store,
		Recorder: recorder,
		Notifier: notifier,
		Duration: duration,
	})
	app.QuitOnDone(ctx)

	// Flags were already parsed; GTK only sees the program name
	exitCode := app.Run(os.Args[:1])
	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	return exitCode
}

// runHistory handles the history commands.
func runHistory(ctx context.Context, store *history.Store) int {
	c := cli.New(os.Stdout, store)

	var err error
	switch {
	case *clearHistory:
		err = c.ClearHistory(ctx)
	default:
		err = c.ListHistory(ctx, common.HistoryLimit)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()
}
