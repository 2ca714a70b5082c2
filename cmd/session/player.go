package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/GiGurra/cmder"
)

// Player launches an external media player for one file and blocks until it
// exits. Implementations must never run two children at once; the session
// relies on Play returning only after the child has been fully waited on.
type Player interface {
	Play(ctx context.Context, path string) error
}

// ExitError reports a player process that ran but exited nonzero.
type ExitError struct {
	Path string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("player exited with status %d for %s", e.Code, e.Path)
}

// execPlayer spawns the player binary with the file path as its only
// argument. The child inherits the session's terminal so the player's own
// keyboard controls keep working.
type execPlayer struct {
	bin string
}

// NewExecPlayer resolves bin on the PATH and returns a Player backed by it.
func NewExecPlayer(bin string) (Player, error) {
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, bin)
	}
	return &execPlayer{bin: resolved}, nil
}

func (p *execPlayer) Play(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, p.bin, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// On cancellation ask the player to shut down cleanly first; the kill
	// only happens if it ignores SIGTERM past the wait delay.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = 3 * time.Second

	err := cmd.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Path: path, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to launch player %s: %w", p.bin, err)
	}
	return nil
}

// Probe checks that the player binary exists and actually runs before any
// playback is attempted.
func Probe(ctx context.Context, bin string) error {
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, bin)
	}
	result := cmder.New(bin, "--version").
		WithAttemptTimeout(5 * time.Second).
		Run(ctx)
	if result.Err != nil {
		if result.Combined != "" {
			return fmt.Errorf("%w: %s not working: %v\n%s", ErrPlayerNotFound, bin, result.Err, result.Combined)
		}
		return fmt.Errorf("%w: %s not working: %v", ErrPlayerNotFound, bin, result.Err)
	}
	return nil
}
