package store

import (
	"context"
	"fmt"

	"github.com/aulalab/aula/ent"
	"github.com/aulalab/aula/internal/llm"
)

// llmRepo persists provider-call events. It implements llm.RequestRecorder
// so it can be plugged into the logging decorator directly.
type llmRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *llmRepo) RecordLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(ev.Provider).
		SetModel(ev.Model).
		SetPurpose(ev.Purpose).
		SetInputTokens(ev.InputTokens).
		SetOutputTokens(ev.OutputTokens).
		SetCostCents(ev.CostCents).
		SetLatencyMs(ev.LatencyMs).
		SetSuccess(ev.Success).
		SetErrorMessage(ev.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record llm request: %w", err)
	}
	return nil
}

func (r *llmRepo) Totals(ctx context.Context) (LLMTotals, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return LLMTotals{}, fmt.Errorf("query llm events: %w", err)
	}

	var t LLMTotals
	for _, row := range rows {
		t.Requests++
		t.InputTokens += row.InputTokens
		t.OutputTokens += row.OutputTokens
		t.CostCents += row.CostCents
	}
	return t, nil
}
