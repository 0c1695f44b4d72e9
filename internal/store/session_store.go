package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aulalab/aula/ent"
	"github.com/aulalab/aula/ent/sessionrecord"
	"github.com/aulalab/aula/internal/state"
)

// SessionStore is the SQLite-backed state.Store. State documents live as
// serialized JSON in one row per session key; writes are read-then-write
// with last-write-wins semantics, matching the other backends.
type SessionStore struct {
	client *ent.Client
}

var _ state.Store = (*SessionStore)(nil)

func (s *SessionStore) Get(ctx context.Context, sessionKey string) (*state.SessionState, error) {
	row, err := s.client.SessionRecord.Query().
		Where(sessionrecord.SessionKey(sessionKey)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, state.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %q: %w", sessionKey, err)
	}

	var st state.SessionState
	if err := json.Unmarshal([]byte(row.State), &st); err != nil {
		return nil, fmt.Errorf("decode session %q: %w", sessionKey, err)
	}
	return &st, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionKey string, st *state.SessionState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session %q: %w", sessionKey, err)
	}

	existing, err := s.client.SessionRecord.Query().
		Where(sessionrecord.SessionKey(sessionKey)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = s.client.SessionRecord.Create().
			SetSessionKey(sessionKey).
			SetState(string(raw)).
			Save(ctx)
	case err == nil:
		_, err = existing.Update().
			SetState(string(raw)).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("set session %q: %w", sessionKey, err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionKey string) error {
	_, err := s.client.SessionRecord.Delete().
		Where(sessionrecord.SessionKey(sessionKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session %q: %w", sessionKey, err)
	}
	return nil
}
