package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RequestEvent captures one provider call for the audit store.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	CostCents    int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestRecorder is the audit sink for provider calls. The store package
// implements it; tests use a slice-backed fake.
type RequestRecorder interface {
	RecordLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider is a decorator that records every provider call as an
// event and logs failures. A failing sink never fails the request.
type LoggingProvider struct {
	inner    Provider
	recorder RequestRecorder
	log      *zap.Logger
}

// WithLogging wraps a Provider with event recording.
func WithLogging(p Provider, rec RequestRecorder, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, recorder: rec, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   string(PurposeFrom(ctx)),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
		ev.CostCents = CostCents(resp.Model, resp.Usage)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		l.log.Warn("phrasing request failed",
			zap.String("purpose", ev.Purpose),
			zap.String("model", ev.Model),
			zap.Error(err))
	}

	if l.recorder != nil {
		if recErr := l.recorder.RecordLLMRequest(ctx, ev); recErr != nil {
			l.log.Warn("failed to record llm request event", zap.Error(recErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
