package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/events"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
	"github.com/nguyentantai21042004/episode-flow/internal/tasks"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

const defaultMaxParallel = 6

// Orchestrator fans one transcript out to every generation task and
// assembles the results into a bundle.
type Orchestrator struct {
	keyMoments tasks.Task[[]content.KeyMoment]
	summary    tasks.Task[content.Summary]
	social     tasks.Task[content.SocialPosts]
	titles     tasks.Task[content.Titles]
	hashtags   tasks.Task[content.Hashtags]
	youtube    tasks.Task[[]content.YouTubeTimestamp]

	emitter     events.Emitter
	maxParallel int
	taskTimeout time.Duration
}

type Option func(*Orchestrator)

// WithMaxParallel bounds how many tasks run at once.
func WithMaxParallel(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxParallel = n
		}
	}
}

// WithTaskTimeout caps each task's run. Zero disables the cap.
func WithTaskTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.taskTimeout = d
	}
}

func NewOrchestrator(gen generator.Generator, emitter events.Emitter, opts ...Option) *Orchestrator {
	if emitter == nil {
		emitter = events.Nop{}
	}
	o := &Orchestrator{
		keyMoments:  tasks.NewKeyMoments(),
		summary:     tasks.NewSummary(gen),
		social:      tasks.NewSocialPosts(gen),
		titles:      tasks.NewTitles(gen),
		hashtags:    tasks.NewHashtags(gen),
		youtube:     tasks.NewYouTubeTimestamps(gen, emitter),
		emitter:     emitter,
		maxParallel: defaultMaxParallel,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes every task and always returns a bundle. Failed soft tasks
// carry their fallback and are listed in Degraded; failed hard tasks are
// omitted and listed in Failed.
func (o *Orchestrator) Run(ctx context.Context, t transcript.Transcript) *content.Bundle {
	var (
		keyMoments Outcome[[]content.KeyMoment]
		summary    Outcome[content.Summary]
		social     Outcome[content.SocialPosts]
		titles     Outcome[content.Titles]
		hashtags   Outcome[content.Hashtags]
		youtube    Outcome[[]content.YouTubeTimestamp]
	)

	var g errgroup.Group
	g.SetLimit(o.maxParallel)

	// Each goroutine owns one outcome variable and always returns nil, so a
	// failed task never cancels its siblings.
	g.Go(func() error { keyMoments = execute(ctx, o, o.keyMoments, t); return nil })
	g.Go(func() error { summary = execute(ctx, o, o.summary, t); return nil })
	g.Go(func() error { social = execute(ctx, o, o.social, t); return nil })
	g.Go(func() error { titles = execute(ctx, o, o.titles, t); return nil })
	g.Go(func() error { hashtags = execute(ctx, o, o.hashtags, t); return nil })
	g.Go(func() error { youtube = execute(ctx, o, o.youtube, t); return nil })
	_ = g.Wait()

	b := &content.Bundle{}
	if v, ok := settle(b, keyMoments, o.keyMoments); ok {
		b.KeyMoments = v
	}
	if v, ok := settle(b, summary, o.summary); ok {
		b.Summary = &v
	}
	if v, ok := settle(b, social, o.social); ok {
		b.SocialPosts = &v
	}
	if v, ok := settle(b, titles, o.titles); ok {
		b.Titles = &v
	}
	if v, ok := settle(b, hashtags, o.hashtags); ok {
		b.Hashtags = &v
	}
	if v, ok := settle(b, youtube, o.youtube); ok {
		b.YouTubeTimestamps = v
	}
	return b
}

func execute[T any](ctx context.Context, o *Orchestrator, task tasks.Task[T], t transcript.Transcript) Outcome[T] {
	if o.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.taskTimeout)
		defer cancel()
	}
	return Execute(ctx, task, t, o.emitter)
}

// settle records degraded and failed artifacts on b and returns the value to store.
func settle[T any](b *content.Bundle, out Outcome[T], task tasks.Task[T]) (T, bool) {
	value, present, degraded := Settle(out, task)
	switch {
	case !present:
		b.Failed = append(b.Failed, task.Name())
	case degraded:
		b.Degraded = append(b.Degraded, task.Name())
	}
	return value, present
}
