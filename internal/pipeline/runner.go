package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/episode-flow/internal/events"
	"github.com/nguyentantai21042004/episode-flow/internal/faults"
	"github.com/nguyentantai21042004/episode-flow/internal/tasks"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

// Outcome is the settled result of one task execution.
type Outcome[T any] struct {
	OK      bool
	Value   T
	Err     error
	Latency time.Duration
}

// Execute runs task against t. Panics are recovered into ErrTaskPanic so no
// failure crosses this boundary. One event is emitted per execution.
func Execute[T any](ctx context.Context, task tasks.Task[T], t transcript.Transcript, emitter events.Emitter) (out Outcome[T]) {
	name := string(task.Name())
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			out = Outcome[T]{Err: faults.Wrap(faults.ErrTaskPanic, name, "run", fmt.Errorf("%v", r))}
		}
		out.Latency = time.Since(start)

		if emitter != nil {
			emitter.Emit(ctx, events.Event{
				RunID:   events.RunIDFromContext(ctx),
				Task:    name,
				Outcome: classify(out, task),
				Latency: out.Latency,
				Err:     out.Err,
			})
		}
	}()

	value, err := task.Run(ctx, t)
	if err != nil {
		return Outcome[T]{Err: err}
	}
	return Outcome[T]{OK: true, Value: value}
}

// Settle turns an outcome into the value stored in the bundle. present is
// false when the artifact must be omitted; degraded is true when the task's
// fallback stands in for a failed run.
func Settle[T any](out Outcome[T], task tasks.Task[T]) (value T, present, degraded bool) {
	if out.OK {
		return out.Value, true, false
	}
	if soft, ok := fallbackFor(out, task); ok {
		return soft.Fallback(), true, true
	}
	var zero T
	return zero, false, false
}

func fallbackFor[T any](out Outcome[T], task tasks.Task[T]) (tasks.SoftTask[T], bool) {
	if !faults.Recoverable(out.Err) {
		return nil, false
	}
	soft, ok := any(task).(tasks.SoftTask[T])
	return soft, ok
}

func classify[T any](out Outcome[T], task tasks.Task[T]) events.Outcome {
	if out.OK {
		return events.OutcomeSuccess
	}
	if _, ok := fallbackFor(out, task); ok {
		return events.OutcomeFallback
	}
	return events.OutcomeFailed
}
