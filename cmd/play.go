package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aulalab/aula/internal/embed"
	"github.com/aulalab/aula/internal/escalate"
	"github.com/aulalab/aula/internal/llm"
	"github.com/aulalab/aula/internal/state"
	"github.com/aulalab/aula/internal/store"
	"github.com/aulalab/aula/internal/tui"
	"github.com/aulalab/aula/internal/turn"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a lesson script as a conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		scriptPath, _ := cmd.Flags().GetString("script")
		if scriptPath == "" {
			return fmt.Errorf("--script is required")
		}

		sessionKey, _ := cmd.Flags().GetString("session")
		if fresh, _ := cmd.Flags().GetBool("new"); fresh && sessionKey == "" {
			sessionKey = uuid.NewString()
		}
		if sessionKey == "" {
			sessionKey = strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		// The --store flag selects the session-state backend; trace and
		// provider events always go to the SQLite store.
		sessionStore, err := resolveSessionStore(cmd, st)
		if err != nil {
			return err
		}

		policy, err := resolvePolicy(cmd)
		if err != nil {
			return err
		}

		cfg := turn.DefaultConfig()
		cfg.Policy = policy

		logger := newLogger()
		opts := []turn.Option{
			turn.WithTrace(st.TraceRepo()),
			turn.WithLogger(logger),
		}

		// The provider is optional — the engine falls back to template
		// hints and feedback without it.
		provider, err := llm.NewProviderFromEnv(ctx, st.LLMRepo(), logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Hints and feedback will use template text.")
		} else {
			opts = append(opts, turn.WithProvider(provider))
		}

		if semantic, _ := cmd.Flags().GetBool("semantic"); semantic {
			embedder, err := embed.NewEmbedderFromEnv(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Semantic fallback disabled:", err)
			} else {
				opts = append(opts, turn.WithScorer(embed.NewScorer(embedder)))
			}
		}

		engine := turn.New(sessionStore, cfg, opts...)

		resume, _ := cmd.Flags().GetBool("resume")
		return tui.Run(engine, sessionKey, scriptPath, resume)
	},
}

func init() {
	playCmd.Flags().String("script", "", "Path to the lesson-script JSON document")
	playCmd.Flags().String("session", "", "Session key (default: script file name)")
	playCmd.Flags().Bool("new", false, "Start a fresh session under a generated key")
	playCmd.Flags().Bool("resume", false, "Pick the session up where it left off")
	playCmd.Flags().String("store", "sqlite", "Session-state backend: sqlite, file or memory")
	playCmd.Flags().String("state-dir", "", "Directory for the file backend (default: alongside the database)")
	playCmd.Flags().Bool("semantic", true, "Enable the embedding-based semantic fallback when a key is configured")
	playCmd.Flags().String("course-policy", "", "Course-scope escalation policy YAML")
	playCmd.Flags().String("lesson-policy", "", "Lesson-scope escalation policy YAML")
}

func resolveSessionStore(cmd *cobra.Command, st *store.Store) (state.Store, error) {
	backend, _ := cmd.Flags().GetString("store")
	switch backend {
	case "sqlite", "":
		return st.SessionStore(), nil
	case "memory":
		return state.NewMemoryStore(), nil
	case "file":
		dir, _ := cmd.Flags().GetString("state-dir")
		if dir == "" {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(filepath.Dir(dbPath), "sessions")
		}
		return state.NewFileStore(dir)
	default:
		return nil, fmt.Errorf("unknown session-state backend %q", backend)
	}
}

// resolvePolicy merges escalation overrides by scope: lesson under
// course, both over the built-in defaults.
func resolvePolicy(cmd *cobra.Command) (escalate.Policy, error) {
	base := escalate.DefaultPolicy()

	var scopes []*escalate.Overrides
	for _, flag := range []string{"lesson-policy", "course-policy"} {
		path, _ := cmd.Flags().GetString(flag)
		if path == "" {
			continue
		}
		ov, err := escalate.LoadOverrides(path)
		if err != nil {
			return base, fmt.Errorf("load %s: %w", flag, err)
		}
		scopes = append(scopes, ov)
	}
	return escalate.Resolve(base, scopes...), nil
}

// newLogger writes to the AULA_LOG file when set; the TUI owns the
// terminal, so there is no stderr logging during play.
func newLogger() *zap.Logger {
	path := os.Getenv("AULA_LOG")
	if path == "" {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
