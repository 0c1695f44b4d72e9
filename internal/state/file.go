package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is the file-backed durable backend: one JSON document per
// session key, committed via write-to-temp-then-rename so readers never
// see a torn write. Single-writer by caller discipline.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// path flattens the session key into a safe filename.
func (f *FileStore) path(sessionKey string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, sessionKey)
	return filepath.Join(f.dir, safe+".json")
}

func (f *FileStore) Get(_ context.Context, sessionKey string) (*SessionState, error) {
	raw, err := os.ReadFile(f.path(sessionKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read session state: %w", err)
	}

	var s SessionState
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session state: %w", err)
	}
	return &s, nil
}

func (f *FileStore) Set(_ context.Context, sessionKey string, s *SessionState) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	dst := f.path(sessionKey)
	tmp, err := os.CreateTemp(f.dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write session state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("commit session state: %w", err)
	}
	return nil
}

func (f *FileStore) Delete(_ context.Context, sessionKey string) error {
	err := os.Remove(f.path(sessionKey))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}
