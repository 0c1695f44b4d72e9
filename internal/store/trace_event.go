package store

import (
	"context"
	"fmt"

	"github.com/aulalab/aula/ent"
	"github.com/aulalab/aula/ent/traceevent"
	"github.com/aulalab/aula/internal/classify"
	"github.com/aulalab/aula/internal/feedback"
)

// traceRepo persists trace entries as append-only events.
type traceRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *traceRepo) Append(ctx context.Context, entry feedback.TraceEntry) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.TraceEvent.Create().
		SetSequence(seq).
		SetTimestamp(entry.At).
		SetSessionKey(entry.SessionKey).
		SetStepCode(entry.StepCode).
		SetLabel(string(entry.Label)).
		SetKind(string(entry.Kind)).
		SetPrompt(entry.Prompt).
		SetResponse(entry.Response).
		SetFeedback(entry.Feedback).
		SetAttempt(entry.Attempt).
		SetHintsUsed(entry.HintsUsed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append trace event: %w", err)
	}
	return nil
}

func (r *traceRepo) BySession(ctx context.Context, sessionKey string) ([]feedback.TraceEntry, error) {
	rows, err := r.client.TraceEvent.Query().
		Where(traceevent.SessionKey(sessionKey)).
		Order(ent.Asc(traceevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query trace events: %w", err)
	}

	entries := make([]feedback.TraceEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, feedback.TraceEntry{
			SessionKey: row.SessionKey,
			StepCode:   row.StepCode,
			Label:      feedback.Label(row.Label),
			Kind:       classify.Kind(row.Kind),
			Prompt:     row.Prompt,
			Response:   row.Response,
			Feedback:   row.Feedback,
			Attempt:    row.Attempt,
			HintsUsed:  row.HintsUsed,
			At:         row.Timestamp,
		})
	}
	return entries, nil
}

func (r *traceRepo) Counts(ctx context.Context, sessionKey string) (TraceCounts, error) {
	rows, err := r.client.TraceEvent.Query().
		Where(traceevent.SessionKey(sessionKey)).
		All(ctx)
	if err != nil {
		return TraceCounts{}, fmt.Errorf("count trace events: %w", err)
	}

	var c TraceCounts
	for _, row := range rows {
		c.Attempts++
		c.Hints += row.HintsUsed
		if row.Kind == string(classify.Accept) {
			c.Accepts++
		}
	}
	return c, nil
}
