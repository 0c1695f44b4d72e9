package state

import (
	"time"

	"github.com/aulalab/aula/internal/escalate"
	"github.com/aulalab/aula/internal/plan"
)

// DefaultBudgetCents is the per-session allotment gating expensive
// (semantic/phrasing) paths.
const DefaultBudgetCents = 50

// QuestionProgress tracks per-question-code counters across turns.
type QuestionProgress struct {
	Attempts        int           `json:"attempts"`
	HintsUsed       int           `json:"hints_used"`
	NoUnderstanding int           `json:"no_understanding"`
	Rung            escalate.Rung `json:"rung"`
	LastAction      string        `json:"last_action"`
	LastAnswer      string        `json:"last_answer"`
	SawPartial      bool          `json:"saw_partial"`
}

// OpKind tags a queued remedial operation.
type OpKind string

const (
	OpReask     OpKind = "reask"
	OpHint      OpKind = "hint"
	OpJump      OpKind = "jump"
	OpRepeat    OpKind = "repeat"
	OpMicroStep OpKind = "insert_micro_step"
)

// QueuedOp is one pending remedial operation on the dynamic queue.
type QueuedOp struct {
	Kind   OpKind `json:"kind"`
	Reason string `json:"reason"`

	// Jump/repeat target.
	MomentIdx int `json:"moment_idx,omitempty"`
	StepIdx   int `json:"step_idx,omitempty"`

	// Micro-step body.
	Text string `json:"text,omitempty"`
}

// SessionState is the single mutable entity of a tutoring session. One
// logical session owns one record; turns must be serialized externally
// (the store offers last-write-wins only).
type SessionState struct {
	SessionKey string `json:"session_key"`
	PlanURL    string `json:"plan_url"`
	PlanCode   string `json:"plan_code"`

	// Plan is reattached after load; the compiled plan is deterministic
	// from PlanURL so it is never serialized.
	Plan *plan.LessonPlan `json:"-"`

	MomentIdx int `json:"moment_idx"`
	StepIdx   int `json:"step_idx"`

	Questions map[string]*QuestionProgress `json:"questions"`

	Asked             map[string]bool `json:"asked"`
	Answered          map[string]bool `json:"answered"`
	PartiallyAnswered map[string]bool `json:"partially_answered"`

	Queue []QueuedOp `json:"queue"`

	BudgetCentsLeft int  `json:"budget_cents_left"`
	EscalationsUsed int  `json:"escalations_used"`
	AdaptiveMode    bool `json:"adaptive_mode"`

	// Anti-repetition guards.
	ShownSteps   map[int]bool `json:"shown_steps"`
	ShownMoments map[int]bool `json:"shown_moments"`

	Done bool `json:"done"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a fresh SessionState: cursor at (0,0), counters empty,
// budget at the initial allotment.
func New(sessionKey, planURL string, p *plan.LessonPlan) *SessionState {
	now := time.Now().UTC()
	s := &SessionState{
		SessionKey:        sessionKey,
		PlanURL:           planURL,
		Plan:              p,
		Questions:         make(map[string]*QuestionProgress),
		Asked:             make(map[string]bool),
		Answered:          make(map[string]bool),
		PartiallyAnswered: make(map[string]bool),
		ShownSteps:        make(map[int]bool),
		ShownMoments:      make(map[int]bool),
		BudgetCentsLeft:   DefaultBudgetCents,
		AdaptiveMode:      true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if p != nil {
		s.PlanCode = p.Code
	}
	return s
}

// QuestionFor returns the progress record for a step code, creating it on
// first use.
func (s *SessionState) QuestionFor(code string) *QuestionProgress {
	if s.Questions == nil {
		s.Questions = make(map[string]*QuestionProgress)
	}
	q, ok := s.Questions[code]
	if !ok {
		q = &QuestionProgress{Rung: escalate.RungAsk}
		s.Questions[code] = q
	}
	return q
}

// SpendCents decrements the budget, clamped at zero. The budget is
// monotonically non-increasing for the life of the session.
func (s *SessionState) SpendCents(cents int) {
	if cents <= 0 {
		return
	}
	s.BudgetCentsLeft -= cents
	if s.BudgetCentsLeft < 0 {
		s.BudgetCentsLeft = 0
	}
}

// BudgetExhausted reports whether costed paths should be gated off.
func (s *SessionState) BudgetExhausted() bool {
	return s.BudgetCentsLeft <= 0
}

// RecordEscalation bumps the monotonically non-decreasing escalation
// counter.
func (s *SessionState) RecordEscalation() {
	s.EscalationsUsed++
}

// Enqueue appends a remedial operation to the dynamic queue.
func (s *SessionState) Enqueue(op QueuedOp) {
	s.Queue = append(s.Queue, op)
}

// Dequeue pops the next remedial operation, if any.
func (s *SessionState) Dequeue() (QueuedOp, bool) {
	if len(s.Queue) == 0 {
		return QueuedOp{}, false
	}
	op := s.Queue[0]
	s.Queue = s.Queue[1:]
	return op, true
}
