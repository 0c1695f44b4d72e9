package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMockProviderFIFO(t *testing.T) {
	p := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"message":"uno"}`)},
		MockResponse{Err: &ErrRateLimit{}},
	)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if string(resp.Content) != `{"message":"uno"}` {
		t.Errorf("first content = %s", resp.Content)
	}

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("second call should surface the canned error")
	}

	// Queue drained: unavailable from here on.
	_, err = p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("drained queue err = %v, want ErrProviderUnavailable", err)
	}

	if p.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", p.CallCount())
	}
}

func TestCostCents(t *testing.T) {
	tests := []struct {
		name  string
		model string
		usage Usage
		want  int
	}{
		{"unknown model charges one cent", "some-future-model", Usage{InputTokens: 10, OutputTokens: 10}, 1},
		{"tiny usage rounds up to one cent", "gpt-4o-mini", Usage{InputTokens: 100, OutputTokens: 50}, 1},
		// 1M in at $2.5 + 100k out at $10 = $3.50 = 350 cents.
		{"large usage rounds up", "gpt-4o", Usage{InputTokens: 1_000_000, OutputTokens: 100_000}, 350},
		{"zero usage still charges", "gpt-4o", Usage{}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CostCents(tc.model, tc.usage); got != tc.want {
				t.Errorf("CostCents(%s, %+v) = %d, want %d", tc.model, tc.usage, got, tc.want)
			}
		})
	}
}

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     2 * time.Millisecond,
		Multiplier:  1.5,
	}
}

func TestRetryTransientError(t *testing.T) {
	p := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	r := WithRetry(p, fastRetryConfig(3))

	if _, err := r.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", p.CallCount())
	}
}

func TestRetryInvalidResponseOnce(t *testing.T) {
	p := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	r := WithRetry(p, fastRetryConfig(5))

	_, err := r.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want second ErrInvalidResponse", err)
	}
	if p.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2 (one retry only)", p.CallCount())
	}
}

func TestRetryNeverRetriesTerminalErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"context canceled", context.Canceled},
		{"max tokens", &ErrMaxTokensExceeded{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewMockProvider(
				MockResponse{Err: tc.err},
				MockResponse{Content: json.RawMessage(`{}`)},
			)
			r := WithRetry(p, fastRetryConfig(3))

			if _, err := r.Generate(context.Background(), Request{}); err == nil {
				t.Fatal("terminal error was swallowed")
			}
			if p.CallCount() != 1 {
				t.Errorf("CallCount = %d, want 1", p.CallCount())
			}
		})
	}
}

func TestPhrase(t *testing.T) {
	p := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"message":"Muy bien, sigamos adelante."}`),
	})

	got, err := Phrase(context.Background(), p, PurposeFeedback, "Correcto. Avancemos.", 60)
	if err != nil {
		t.Fatalf("Phrase: %v", err)
	}
	if got != "Muy bien, sigamos adelante." {
		t.Errorf("message = %q", got)
	}
	if len(p.Calls) != 1 || p.Calls[0].Schema != PhraseSchema {
		t.Errorf("request not bound to the phrase schema: %+v", p.Calls)
	}
}

func TestPhraseRejectsEmptyMessage(t *testing.T) {
	p := NewMockProvider(MockResponse{Content: json.RawMessage(`{"message":""}`)})

	_, err := Phrase(context.Background(), p, PurposeHint, "Pista.", 60)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}
