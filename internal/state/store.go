package state

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no state exists for a session key.
// Callers surface it as a recoverable condition prompting a reset.
var ErrNotFound = errors.New("session state not found")

// Store is the session-state persistence contract. All backends are
// last-write-wins with no optimistic concurrency control: the caller
// must serialize turns per session key or lose updates.
type Store interface {
	Get(ctx context.Context, sessionKey string) (*SessionState, error)
	Set(ctx context.Context, sessionKey string, s *SessionState) error
	Delete(ctx context.Context, sessionKey string) error
}
