package turn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aulalab/aula/internal/classify"
	"github.com/aulalab/aula/internal/escalate"
	"github.com/aulalab/aula/internal/feedback"
	"github.com/aulalab/aula/internal/hint"
	"github.com/aulalab/aula/internal/llm"
	"github.com/aulalab/aula/internal/plan"
	"github.com/aulalab/aula/internal/script"
	"github.com/aulalab/aula/internal/state"
)

// TraceSink receives the audit trace. The store's trace repository
// implements it; a nil sink disables tracing.
type TraceSink interface {
	Append(ctx context.Context, entry feedback.TraceEntry) error
}

// Config bundles the per-component configurations plus the engine's own
// knobs.
type Config struct {
	Policy   escalate.Policy
	Classify classify.Config
	Hints    hint.Config

	// HintBudget is the per-question hint count after which an
	// off-topic answer refocuses instead of hinting again.
	HintBudget int

	// MaxStepsPerTurn caps how many content steps one presentation
	// turn renders.
	MaxStepsPerTurn int

	// PhraseWordLimit bounds provider-rephrased messages.
	PhraseWordLimit int

	// Flat whole-cent charges per costed call, decremented from the
	// session budget after the call returns.
	SemanticCostCents int
	PhraseCostCents   int
}

// DefaultConfig returns the built-in engine configuration.
func DefaultConfig() Config {
	return Config{
		Policy:            escalate.DefaultPolicy(),
		Classify:          classify.DefaultConfig(),
		Hints:             hint.DefaultConfig(),
		HintBudget:        2,
		MaxStepsPerTurn:   3,
		PhraseWordLimit:   60,
		SemanticCostCents: 1,
		PhraseCostCents:   1,
	}
}

// Engine composes the lesson pipeline per incoming turn.
type Engine struct {
	cfg   Config
	store state.Store

	classifier *classify.Classifier
	cheap      *classify.Classifier // semantic fallback disabled
	scorer     classify.SemanticScorer
	hints      *hint.Generator

	provider llm.Provider
	trace    TraceSink
	loader   ScriptLoader
	log      *zap.Logger
	clock    func() time.Time

	mu    sync.Mutex
	plans map[string]*plan.LessonPlan
}

// Option configures an Engine.
type Option func(*Engine)

// WithScorer enables the semantic classification fallback.
func WithScorer(s classify.SemanticScorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithProvider enables natural-language rephrasing of template messages.
func WithProvider(p llm.Provider) Option {
	return func(e *Engine) { e.provider = p }
}

// WithTrace attaches the audit-trace sink.
func WithTrace(t TraceSink) Option {
	return func(e *Engine) { e.trace = t }
}

// WithLoader swaps the default filesystem script loader.
func WithLoader(l ScriptLoader) Option {
	return func(e *Engine) { e.loader = l }
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock fixes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.clock = now }
}

// New creates an Engine over a session store.
func New(store state.Store, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		store:  store,
		hints:  hint.New(cfg.Hints),
		loader: FileLoader{},
		log:    zap.NewNop(),
		clock:  func() time.Time { return time.Now().UTC() },
		plans:  make(map[string]*plan.LessonPlan),
	}
	for _, o := range opts {
		o(e)
	}

	cheapCfg := cfg.Classify
	cheapCfg.SemanticEnabled = false
	e.cheap = classify.New(cheapCfg)

	if e.scorer != nil {
		semCfg := cfg.Classify
		semCfg.SemanticEnabled = true
		e.classifier = classify.New(semCfg, classify.WithSemanticScorer(e.scorer))
	} else {
		e.classifier = e.cheap
	}
	return e
}

// Play processes one turn. It surfaces script schema errors, missing
// state (when reset is not requested) and persistence failures; every
// other processing problem degrades inside process to a non-empty
// response.
func (e *Engine) Play(ctx context.Context, req Request) (*Response, error) {
	if req.SessionKey == "" {
		return nil, errors.New("turn: empty session key")
	}

	st, err := e.loadState(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := e.process(ctx, st, req.UserInput)

	st.UpdatedAt = e.clock()
	if err := e.store.Set(ctx, st.SessionKey, st); err != nil {
		return nil, fmt.Errorf("persist session %q: %w", st.SessionKey, err)
	}
	return resp, nil
}

func (e *Engine) loadState(ctx context.Context, req Request) (*state.SessionState, error) {
	if req.Reset {
		p, err := e.planFor(ctx, req.PlanURL)
		if err != nil {
			return nil, err
		}
		if err := e.store.Delete(ctx, req.SessionKey); err != nil {
			e.log.Warn("discard previous session", zap.String("session", req.SessionKey), zap.Error(err))
		}
		return state.New(req.SessionKey, req.PlanURL, p), nil
	}

	st, err := e.store.Get(ctx, req.SessionKey)
	if err != nil {
		// Includes state.ErrNotFound: recoverable, the caller resets.
		return nil, err
	}

	p, err := e.planFor(ctx, st.PlanURL)
	if err != nil {
		return nil, err
	}
	st.Plan = p
	return st, nil
}

// planFor compiles and caches the plan for a script URL. Compilation is
// deterministic, so the cached plan is shared across sessions.
func (e *Engine) planFor(ctx context.Context, url string) (*plan.LessonPlan, error) {
	if url == "" {
		return nil, errors.New("turn: empty plan url")
	}

	e.mu.Lock()
	if p, ok := e.plans[url]; ok {
		e.mu.Unlock()
		return p, nil
	}
	e.mu.Unlock()

	raw, err := e.loader.Load(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("load script %q: %w", url, err)
	}
	doc, err := script.Parse(raw)
	if err != nil {
		return nil, err
	}
	p := plan.Compile(doc)

	e.mu.Lock()
	e.plans[url] = p
	e.mu.Unlock()
	return p, nil
}

// process mutates the state exactly once and builds the response. It
// never returns an error: the deferred guard keeps the learner moving.
func (e *Engine) process(ctx context.Context, st *state.SessionState, input string) *Response {
	resp := &Response{}
	defer func() {
		resp.State = viewOf(st)
		if resp.Message == "" && resp.FollowUp == "" {
			resp.Message = continuationPrompt
		}
	}()

	if st.Done {
		resp.Message = closingMessage
		return resp
	}
	if st.Plan == nil || st.Plan.StepAt(st.MomentIdx, st.StepIdx) == nil {
		st.Done = true
		resp.Message = closingMessage
		return resp
	}

	step := st.Plan.StepAt(st.MomentIdx, st.StepIdx)
	input = strings.TrimSpace(input)

	if step.IsQuestion() && st.Asked[step.Code] && !st.Answered[step.Code] && input != "" {
		e.answerTurn(ctx, st, step, input, resp)
		return resp
	}

	e.presentTurn(st, resp)
	return resp
}

func viewOf(st *state.SessionState) StateView {
	v := StateView{MomentIdx: st.MomentIdx, StepIdx: st.StepIdx, Done: st.Done}
	if st.Plan != nil {
		if s := st.Plan.StepAt(st.MomentIdx, st.StepIdx); s != nil {
			v.StepCode = s.Code
		}
	}
	return v
}
