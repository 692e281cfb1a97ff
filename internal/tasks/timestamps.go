package tasks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/events"
	"github.com/nguyentantai21042004/episode-flow/internal/faults"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

var errNoChapters = errors.New("no chapters available, cannot anchor timestamps")

var youtubeSchema = generator.Object(map[string]*generator.Schema{
	"titles": generator.Array(
		generator.Object(map[string]*generator.Schema{
			"index": generator.Integer("Chapter index as given in the prompt"),
			"title": generator.String("3-6 word chapter title"),
		}, "index", "title"),
		"One title per chapter",
	),
}, "titles")

type youtubeTitles struct {
	Titles []struct {
		Index float64 `json:"index"`
		Title string  `json:"title"`
	} `json:"titles"`
}

// YouTubeTimestamps pairs chapter start times with short generated titles.
// It needs chapters and is the one task without a fallback.
type YouTubeTimestamps struct {
	gen     generator.Generator
	emitter events.Emitter
}

// NewYouTubeTimestamps returns the task. emitter receives a partial-outcome
// event whenever chapter headlines stand in for generated titles; it may be nil.
func NewYouTubeTimestamps(gen generator.Generator, emitter events.Emitter) *YouTubeTimestamps {
	if emitter == nil {
		emitter = events.Nop{}
	}
	return &YouTubeTimestamps{gen: gen, emitter: emitter}
}

func (y *YouTubeTimestamps) Name() content.Artifact { return content.ArtifactYouTubeTimestamps }

func (y *YouTubeTimestamps) Run(ctx context.Context, t transcript.Transcript) ([]content.YouTubeTimestamp, error) {
	if !t.HasChapters() {
		return nil, faults.Wrap(faults.ErrHardDependencyMissing, string(y.Name()), "chapters", errNoChapters)
	}

	chapters := t.Chapters
	if len(chapters) > youtubeChapterLimit {
		chapters = chapters[:youtubeChapterLimit]
	}

	inputs := make([]chapterInput, len(chapters))
	for i, ch := range chapters {
		inputs[i] = chapterInput{
			Index:    i,
			Seconds:  int64(math.Floor(ch.StartSeconds())),
			Headline: ch.Headline,
			Summary:  ch.Summary,
		}
	}

	titles, detail := y.generateTitles(ctx, inputs)

	out := make([]content.YouTubeTimestamp, len(inputs))
	missing := 0
	for i, in := range inputs {
		desc, ok := titles[i]
		if !ok {
			desc = in.Headline
			missing++
		}
		out[i] = content.YouTubeTimestamp{
			Timestamp:   content.FormatTimestamp(float64(in.Seconds), content.FormatOptions{}),
			Description: desc,
		}
	}

	if missing > 0 {
		msg := fmt.Sprintf("%d of %d chapters used headlines", missing, len(inputs))
		if detail != "" {
			msg += ": " + detail
		}
		y.emitter.Emit(ctx, events.Event{
			RunID:   events.RunIDFromContext(ctx),
			Task:    string(y.Name()),
			Outcome: events.OutcomePartial,
			Detail:  msg,
		})
	}
	return out, nil
}

// generateTitles returns the usable generated titles keyed by chapter index.
// On failure it returns no titles and a short description of the problem.
func (y *YouTubeTimestamps) generateTitles(ctx context.Context, inputs []chapterInput) (map[int]string, string) {
	raw, err := y.gen.GenerateJSON(ctx, generator.Request{
		Name:   string(y.Name()),
		System: youtubeSystemPrompt,
		Prompt: buildYouTubePrompt(inputs),
		Schema: youtubeSchema,
	})
	if err != nil {
		return nil, err.Error()
	}

	var parsed youtubeTitles
	if err := generator.DecodeJSON(raw, &parsed); err != nil {
		return nil, fmt.Sprintf("parse response: %v (raw: %s)", err, generator.Snippet(raw))
	}

	titles := make(map[int]string, len(parsed.Titles))
	for _, entry := range parsed.Titles {
		idx := int(entry.Index)
		if float64(idx) != entry.Index || idx < 0 || idx >= len(inputs) {
			continue
		}
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}
		// First entry for an index wins.
		if _, seen := titles[idx]; !seen {
			titles[idx] = title
		}
	}
	return titles, ""
}
