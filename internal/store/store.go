package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/aulalab/aula/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a Store connected to the SQLite database at dsn. It
// applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// TraceRepo returns the trace-event sink backed by this store.
func (s *Store) TraceRepo() TraceRepo {
	return &traceRepo{client: s.client, seq: s.seq}
}

// LLMRepo returns the LLM-request event sink backed by this store.
func (s *Store) LLMRepo() LLMRepo {
	return &llmRepo{client: s.client, seq: s.seq}
}

// SessionStore returns the document-backed session-state store.
func (s *Store) SessionStore() *SessionStore {
	return &SessionStore{client: s.client}
}

// applyPragmas configures SQLite for single-writer engine use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// AULA_DB, then $XDG_DATA_HOME/aula/aula.db, then ~/.local/share/aula/aula.db.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("AULA_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "aula", "aula.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
