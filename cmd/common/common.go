package common

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// SetupLogger builds the session logger. Playback status goes to stderr so
// it never interferes with the player owning stdout/stdin.
func SetupLogger(quiet bool) *slog.Logger {
	level := log.InfoLevel
	if quiet {
		level = log.WarnLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "spindle",
		Level:           level,
	})

	return slog.New(handler)
}

// InterruptContext returns a context cancelled on SIGINT/SIGTERM. The first
// signal cancels; cancellation is what stops the running player child.
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nShutting down...")
			cancel()
		case <-ctx.Done():
			// Parent context cancelled, clean up signal handler
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// TermWidth returns the terminal width, falling back to 120 when stdout and
// stderr are both redirected.
func TermWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	if width, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && width > 0 {
		return width
	}
	return 120
}
