package events

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/nguyentantai21042004/episode-flow/internal/logger"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Emit(_ context.Context, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, nil, b}
	m.Emit(context.Background(), Event{Task: "titles", Outcome: OutcomeSuccess})
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("events = (%d, %d), want (1, 1)", len(a.events), len(b.events))
	}
}

func TestPrometheusEmitter(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := NewPrometheusEmitter(reg)
	if err != nil {
		t.Fatalf("NewPrometheusEmitter() error = %v", err)
	}

	ctx := context.Background()
	p.Emit(ctx, Event{Task: "titles", Outcome: OutcomeSuccess, Latency: time.Second})
	p.Emit(ctx, Event{Task: "titles", Outcome: OutcomeFallback, Latency: time.Second})
	p.Emit(ctx, Event{Task: "titles", Outcome: OutcomeSuccess, Latency: time.Second})

	if got := testutil.ToFloat64(p.outcomes.WithLabelValues("titles", "success")); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(p.outcomes.WithLabelValues("titles", "fallback")); got != 1 {
		t.Errorf("fallback count = %v, want 1", got)
	}

	if _, err := NewPrometheusEmitter(reg); err == nil {
		t.Error("registering twice should fail")
	}
}

func TestLogEmitter(t *testing.T) {
	var buf bytes.Buffer
	e := NewLogEmitter(logger.NewWithFormat("info", "text", &buf))
	e.Emit(context.Background(), Event{
		RunID:   "run-1",
		Task:    "hashtags",
		Outcome: OutcomeFallback,
		Err:     errors.New("quota"),
	})
	out := buf.String()
	for _, want := range []string{"task=hashtags", "outcome=fallback", "run_id=run-1", "quota"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := WithRunID(context.Background(), "abc")
	if got := RunIDFromContext(ctx); got != "abc" {
		t.Errorf("RunIDFromContext() = %q, want abc", got)
	}
	if got := RunIDFromContext(context.Background()); got != "" {
		t.Errorf("RunIDFromContext(empty) = %q", got)
	}
	if WithRunID(context.Background(), "") == nil {
		t.Error("WithRunID() returned nil")
	}
}
