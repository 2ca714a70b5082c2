package session

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/gen2brain/beeep"
	"github.com/google/uuid"
)

// Session plays files from one Library snapshot through one Player. Exactly
// one child player process exists at a time: the next selection happens only
// after the previous Play call has returned.
type Session struct {
	Library  Library
	Selector Selector
	Player   Player
	Log      *slog.Logger
	Notify   bool // desktop notification on each new file
}

// New assembles a session and tags its logger with a short session id.
func New(lib Library, sel Selector, player Player, log *slog.Logger) *Session {
	return &Session{
		Library:  lib,
		Selector: sel,
		Player:   player,
		Log:      log.With("session", uuid.NewString()[:8]),
	}
}

// Run plays selections until ctx is cancelled. A nonzero player exit is
// logged and the loop advances to the next selection; any other player error
// is fatal. Cancellation terminates the running child before Run returns.
func (s *Session) Run(ctx context.Context) error {
	if s.Library.Len() == 0 {
		return ErrEmptyLibrary
	}

	s.Log.Info("session started", "dir", s.Library.Dir, "files", s.Library.Len())

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		path := s.Selector.Next(s.Library)
		s.announce(path)

		err := s.Player.Play(ctx, path)
		if ctx.Err() != nil {
			s.Log.Info("session interrupted")
			return nil
		}
		if err != nil {
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				s.Log.Warn("player failed, skipping", "file", filepath.Base(path), "status", exitErr.Code)
				continue
			}
			return err
		}
	}
}

// PlayOnce plays a single file and returns its final status, including a
// nonzero player exit as an ExitError.
func (s *Session) PlayOnce(ctx context.Context, path string) error {
	s.announce(path)

	err := s.Player.Play(ctx, path)
	if ctx.Err() != nil {
		s.Log.Info("session interrupted")
		return nil
	}
	return err
}

func (s *Session) announce(path string) {
	name := filepath.Base(path)
	s.Log.Info("playing", "file", name)
	if s.Notify {
		if err := beeep.Notify("spindle", name, ""); err != nil {
			s.Log.Debug("notification failed", "error", err)
		}
	}
}
