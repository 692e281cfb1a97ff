package events

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/episode-flow/internal/logger"
)

// Nop discards events.
type Nop struct{}

func (Nop) Emit(context.Context, Event) {}

// Multi fans an event out to several emitters.
type Multi []Emitter

func (m Multi) Emit(ctx context.Context, ev Event) {
	for _, e := range m {
		if e != nil {
			e.Emit(ctx, ev)
		}
	}
}

// LogEmitter writes events as structured log entries.
type LogEmitter struct {
	log logger.Logger
}

func NewLogEmitter(log logger.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

func (l *LogEmitter) Emit(ctx context.Context, ev Event) {
	fields := map[string]interface{}{
		"task":       ev.Task,
		"outcome":    string(ev.Outcome),
		"latency_ms": ev.Latency.Milliseconds(),
	}
	if ev.RunID != "" {
		fields["run_id"] = ev.RunID
	}
	if ev.Detail != "" {
		fields["detail"] = ev.Detail
	}
	log := l.log.WithFields(fields)

	switch ev.Outcome {
	case OutcomeSuccess:
		log.Info(ctx, "task finished")
	case OutcomePartial:
		log.Warn(ctx, "task finished with local fallbacks")
	case OutcomeFallback:
		log.Warn(ctx, "task fell back to placeholder: %v", ev.Err)
	default:
		log.Error(ctx, "task failed: %v", ev.Err)
	}
}

// PrometheusEmitter records task outcomes and latencies.
type PrometheusEmitter struct {
	outcomes *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPrometheusEmitter registers its collectors on reg.
func NewPrometheusEmitter(reg prometheus.Registerer) (*PrometheusEmitter, error) {
	p := &PrometheusEmitter{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "episode_flow_task_outcomes_total",
				Help: "Generation task executions by task and outcome",
			},
			[]string{"task", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "episode_flow_task_duration_seconds",
				Help:    "Generation task duration in seconds",
				Buckets: []float64{0.001, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"task"},
		),
	}
	for _, c := range []prometheus.Collector{p.outcomes, p.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *PrometheusEmitter) Emit(_ context.Context, ev Event) {
	p.outcomes.WithLabelValues(ev.Task, string(ev.Outcome)).Inc()
	// Partial events annotate a run that reports its own latency.
	if ev.Outcome != OutcomePartial {
		p.latency.WithLabelValues(ev.Task).Observe(ev.Latency.Seconds())
	}
}
