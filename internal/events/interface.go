package events

import (
	"context"
	"time"
)

// Outcome classifies how a generation task finished.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	// OutcomePartial means the task succeeded but filled some elements from
	// local data instead of the generative service.
	OutcomePartial  Outcome = "partial"
	OutcomeFallback Outcome = "fallback"
	OutcomeFailed   Outcome = "failed"
)

// Event describes one task execution.
type Event struct {
	RunID   string
	Task    string
	Outcome Outcome
	Latency time.Duration
	Err     error
	Detail  string
}

// Emitter receives task events. Implementations must be safe for concurrent use.
type Emitter interface {
	Emit(ctx context.Context, ev Event)
}

type runIDKey struct{}

// WithRunID annotates ctx with the processing run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier if present.
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}
