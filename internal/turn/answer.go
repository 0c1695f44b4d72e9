package turn

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aulalab/aula/internal/classify"
	"github.com/aulalab/aula/internal/escalate"
	"github.com/aulalab/aula/internal/feedback"
	"github.com/aulalab/aula/internal/hint"
	"github.com/aulalab/aula/internal/llm"
	"github.com/aulalab/aula/internal/plan"
	"github.com/aulalab/aula/internal/state"
)

// answerTurn classifies one answer, applies the escalation policy and
// renders the outcome. Budget is spent after each costed call; once
// exhausted the semantic fallback and rephrasing are gated off.
func (e *Engine) answerTurn(ctx context.Context, st *state.SessionState, step *plan.Step, input string, resp *Response) {
	q := st.QuestionFor(step.Code)

	cl := e.classifier
	if st.BudgetExhausted() {
		cl = e.cheap
	}

	res := cl.Classify(ctx, classify.Input{
		Utterance:      input,
		Question:       step.Question,
		Acceptable:     step.AcceptableAnswers,
		Expected:       step.Expected,
		Shape:          classify.Shape(step.Shape),
		PrevAnswer:     q.LastAnswer,
		HintsExhausted: q.HintsUsed >= e.cfg.HintBudget,
	})
	if res.Semantic != nil {
		st.SpendCents(e.cfg.SemanticCostCents)
	}

	q.Attempts++
	q.LastAnswer = input
	if res.Reason == classify.ReasonDontKnow || res.Reason == classify.ReasonVague {
		q.NoUnderstanding++
	}
	if res.Kind == classify.Partial {
		q.SawPartial = true
	}

	momentKind := ""
	if st.MomentIdx >= 0 && st.MomentIdx < len(st.Plan.Moments) {
		momentKind = st.Plan.Moments[st.MomentIdx].Kind
	}

	dec := escalate.Decide(e.cfg.Policy, res, escalate.History{
		Rung:            q.Rung,
		Attempts:        q.Attempts,
		HintsUsed:       q.HintsUsed,
		NoUnderstanding: q.NoUnderstanding,
		SawPartial:      q.SawPartial,
		MomentKind:      momentKind,
	})

	if dec.Rung != escalate.RungOK && escalate.Index(dec.Rung) > escalate.Index(q.Rung) {
		st.RecordEscalation()
	}
	q.Rung = dec.Rung

	if dec.Advance {
		e.settle(st, step, res, dec, resp)
	} else {
		e.remediate(st, step, q, res, dec, resp)
	}
	q.LastAction = string(dec.Rung)

	e.phrase(ctx, st, dec, resp)
	e.appendTrace(ctx, st, step, q, input, res, resp)
}

// settle closes the question with its credit and walks the plan forward.
func (e *Engine) settle(st *state.SessionState, step *plan.Step, res classify.Result, dec escalate.Decision, resp *Response) {
	st.Answered[step.Code] = true

	switch dec.Credit {
	case escalate.CreditFull:
		resp.Message = acceptMessage(res)
	case escalate.CreditPartial:
		st.PartiallyAnswered[step.Code] = true
		if dec.Converged {
			resp.Message = convergeMessage(res)
		} else {
			resp.Message = bridgeMessage()
		}
	default:
		resp.Message = joinNonEmpty(explainText(step), bridgeMessage())
	}
	resp.Assessment = &Assessment{Level: string(res.Kind), Score: float64(dec.Credit)}

	if m, s, done := st.Plan.Advance(st.MomentIdx, st.StepIdx); done {
		st.Done = true
	} else {
		st.MomentIdx, st.StepIdx = m, s
	}

	var cont Response
	e.presentTurn(st, &cont)
	resp.Message = joinNonEmpty(resp.Message, cont.Message)
	resp.FollowUp = cont.FollowUp
}

// remediate renders the rung-specific remediation without moving the
// cursor. A REFOCUS schedules a re-teach for the next turn instead.
func (e *Engine) remediate(st *state.SessionState, step *plan.Step, q *state.QuestionProgress, res classify.Result, dec escalate.Decision, resp *Response) {
	in := hint.Input{
		Question:  step.Question,
		Objective: step.Objective,
		Expected:  step.Expected,
		Missing:   res.Missing,
		Shape:     step.Shape,
		Attempts:  q.Attempts,
		HintsUsed: q.HintsUsed,
	}

	switch {
	case res.Kind == classify.Refocus:
		resp.Message = refocusMessage
		e.queueRefocus(st, step)

	case dec.Rung == escalate.RungHint:
		resp.Message = e.hints.Hint(in)
		resp.FollowUp = e.hints.Reask(in)
		q.HintsUsed++

	case dec.Rung == escalate.RungAskSimple:
		resp.Message = encourageMessage
		resp.FollowUp = e.hints.AskSimple(in)

	case dec.Rung == escalate.RungAskOptions:
		correct := ""
		if len(step.AcceptableAnswers) > 0 {
			correct = step.AcceptableAnswers[0]
		}
		resp.Message = encourageMessage
		resp.FollowUp = e.hints.AskOptions(in, correct)

	case dec.Rung == escalate.RungExplain:
		resp.Message = explainText(step)
		resp.FollowUp = e.hints.Reask(in)

	default: // RungAsk
		resp.FollowUp = e.hints.Reask(in)
	}

	if res.Kind == classify.Partial && len(res.Matched) > 0 {
		resp.Message = joinNonEmpty(
			fmt.Sprintf("Vas bien: ya mencionaste %s.", strings.Join(res.Matched, ", ")),
			resp.Message)
	}
}

// phrase rewrites the template message through the provider when one is
// configured and budget remains. Template text survives any failure.
func (e *Engine) phrase(ctx context.Context, st *state.SessionState, dec escalate.Decision, resp *Response) {
	if e.provider == nil || st.BudgetExhausted() || resp.Message == "" {
		return
	}

	phrased, err := llm.Phrase(ctx, e.provider, purposeFor(dec), resp.Message, e.cfg.PhraseWordLimit)
	if err != nil {
		e.log.Warn("phrasing failed, keeping template", zap.Error(err))
		return
	}
	st.SpendCents(e.cfg.PhraseCostCents)
	resp.Message = phrased
}

func purposeFor(dec escalate.Decision) llm.Purpose {
	switch {
	case dec.Advance && dec.Credit == escalate.CreditFull:
		return llm.PurposeFeedback
	case dec.Advance:
		return llm.PurposeBridge
	case dec.Rung == escalate.RungExplain:
		return llm.PurposeExplain
	default:
		return llm.PurposeHint
	}
}

func (e *Engine) appendTrace(ctx context.Context, st *state.SessionState, step *plan.Step, q *state.QuestionProgress, input string, res classify.Result, resp *Response) {
	if e.trace == nil {
		return
	}
	entry := feedback.BuildTraceEntry(
		st.SessionKey, step.Code, step.Question, input, resp.Message,
		res.Kind, q.Attempts, q.HintsUsed, e.clock())
	if err := e.trace.Append(ctx, entry); err != nil {
		e.log.Warn("trace append failed", zap.String("session", st.SessionKey), zap.Error(err))
	}
}

func acceptMessage(res classify.Result) string {
	if len(res.Matched) > 0 {
		return fmt.Sprintf("¡Muy bien! Exacto: %s.", strings.Join(res.Matched, ", "))
	}
	return "¡Muy bien! Esa es la idea."
}

func convergeMessage(res classify.Result) string {
	if len(res.Matched) > 0 {
		return fmt.Sprintf("¡Bien! Con %s es suficiente para seguir.", strings.Join(res.Matched, ", "))
	}
	return "¡Bien! Con eso es suficiente para seguir."
}

func bridgeMessage() string {
	return "No te preocupes, lo retomaremos más adelante. Sigamos."
}

func explainText(step *plan.Step) string {
	var b strings.Builder
	b.WriteString("Te lo explico.")
	if step.Objective != "" {
		b.WriteString(" ")
		b.WriteString(step.Objective)
		if !strings.HasSuffix(step.Objective, ".") {
			b.WriteString(".")
		}
	}
	if len(step.AcceptableAnswers) > 0 {
		fmt.Fprintf(&b, " La respuesta que buscábamos: %s.", strings.Join(step.AcceptableAnswers, ", "))
	}
	return b.String()
}
