package turn

import (
	"strings"

	"github.com/aulalab/aula/internal/plan"
	"github.com/aulalab/aula/internal/state"
)

const (
	continuationPrompt = "Sigamos con la lección. ¿Continuamos?"
	closingMessage     = "¡Hemos llegado al final de la lección! Buen trabajo."
	refocusMessage     = "Nos estamos alejando un poco del tema. Repasemos la idea y lo intentamos de nuevo."
	encourageMessage   = "No pasa nada, vamos a intentarlo de otra forma."
)

// presentTurn drains any queued remedial operations, then walks the plan
// from the cursor: content steps accumulate into the message, the first
// unanswered question becomes the follow-up and stops the walk.
func (e *Engine) presentTurn(st *state.SessionState, resp *Response) {
	var parts []string

	for {
		op, ok := st.Dequeue()
		if !ok {
			break
		}
		if txt := e.runOp(st, op); txt != "" {
			parts = append(parts, txt)
		}
	}

	shown := 0
	for {
		step := st.Plan.StepAt(st.MomentIdx, st.StepIdx)
		if step == nil {
			st.Done = true
			break
		}

		if step.IsQuestion() {
			if !st.Answered[step.Code] {
				st.Asked[step.Code] = true
				resp.FollowUp = step.Question
				break
			}
		} else if body := stepText(step); body != "" && !st.ShownSteps[step.GlobalIndex] {
			parts = append(parts, body)
			shown++
		}
		st.ShownSteps[step.GlobalIndex] = true
		st.ShownMoments[st.MomentIdx] = true

		m, s, done := st.Plan.Advance(st.MomentIdx, st.StepIdx)
		if done {
			st.Done = true
			break
		}
		st.MomentIdx, st.StepIdx = m, s

		if e.cfg.MaxStepsPerTurn > 0 && shown >= e.cfg.MaxStepsPerTurn {
			break
		}
	}

	resp.Message = strings.Join(parts, "\n\n")
	if st.Done {
		resp.Message = joinNonEmpty(resp.Message, closingMessage)
	}
}

// runOp applies one queued remedial operation to the cursor. Micro-steps
// return text to prepend to the presentation.
func (e *Engine) runOp(st *state.SessionState, op state.QueuedOp) string {
	switch op.Kind {
	case state.OpJump, state.OpRepeat:
		target := st.Plan.StepAt(op.MomentIdx, op.StepIdx)
		if target == nil {
			return ""
		}
		st.MomentIdx, st.StepIdx = op.MomentIdx, op.StepIdx
		// Let everything from the target onward render again.
		for gi := range st.ShownSteps {
			if gi >= target.GlobalIndex {
				delete(st.ShownSteps, gi)
			}
		}
	case state.OpMicroStep:
		return op.Text
	}
	return ""
}

// queueRefocus schedules a jump back to the content step that feeds the
// question and un-asks it, so the next presentation re-teaches before
// re-asking.
func (e *Engine) queueRefocus(st *state.SessionState, step *plan.Step) {
	momentIdx, stepIdx := st.MomentIdx, st.StepIdx
	for _, cyc := range st.Plan.ContentCycles {
		for _, qi := range cyc.Questions {
			if qi == step.GlobalIndex && cyc.ContentIndex != plan.NoContent {
				content := st.Plan.AllSteps[cyc.ContentIndex]
				momentIdx, stepIdx = content.MomentIndex, content.LocalIndex
			}
		}
	}
	delete(st.Asked, step.Code)
	st.Enqueue(state.QueuedOp{
		Kind:      state.OpRepeat,
		Reason:    "refocus",
		MomentIdx: momentIdx,
		StepIdx:   stepIdx,
	})
}

func stepText(s *plan.Step) string {
	var parts []string
	if s.Body != "" {
		parts = append(parts, s.Body)
	}
	if len(s.Items) > 0 {
		var b strings.Builder
		for i, it := range s.Items {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("• ")
			b.WriteString(it)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n")
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
