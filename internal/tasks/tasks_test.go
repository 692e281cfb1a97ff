package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/events"
	"github.com/nguyentantai21042004/episode-flow/internal/faults"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

type fakeReply struct {
	text string
	err  error
}

type fakeGenerator struct {
	mu       sync.Mutex
	replies  map[string]fakeReply
	requests []generator.Request
}

func newFakeGenerator(replies map[string]fakeReply) *fakeGenerator {
	return &fakeGenerator{replies: replies}
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, req generator.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	r, ok := f.replies[req.Name]
	if !ok {
		return "", errors.New("service unreachable")
	}
	return r.text, r.err
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingEmitter) Emit(_ context.Context, ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func threeChapters() transcript.Transcript {
	return transcript.Transcript{
		Text: "Welcome to the show. Today we build a pipeline.",
		Chapters: []transcript.Chapter{
			{StartMs: 0, EndMs: 120000, Headline: "Intro", Summary: "Hosts say hello."},
			{StartMs: 120000, EndMs: 600000, Headline: "Setup", Summary: "Installing tools."},
			{StartMs: 600000, EndMs: 900000, Headline: "Wrap-up", Summary: "Closing notes."},
		},
	}
}

func TestKeyMoments(t *testing.T) {
	got, err := NewKeyMoments().Run(context.Background(), threeChapters())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(Run()) = %d, want 3", len(got))
	}

	tests := []struct {
		idx     int
		time    string
		seconds float64
		text    string
	}{
		{0, "00:00:00", 0, "Intro"},
		{1, "00:02:00", 120, "Setup"},
		{2, "00:10:00", 600, "Wrap-up"},
	}
	for _, tt := range tests {
		m := got[tt.idx]
		if m.Time != tt.time || m.TimestampSeconds != tt.seconds || m.Text != tt.text {
			t.Errorf("moment[%d] = %+v, want time %s seconds %v text %s", tt.idx, m, tt.time, tt.seconds, tt.text)
		}
	}
	if got[1].Description != "Installing tools." {
		t.Errorf("Description = %q, want chapter summary", got[1].Description)
	}
}

func TestKeyMomentsNoChapters(t *testing.T) {
	got, err := NewKeyMoments().Run(context.Background(), transcript.Transcript{Text: "no chapters"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Run() = %#v, want empty non-nil slice", got)
	}
}

func TestKeyMomentsFractionalSeconds(t *testing.T) {
	tr := transcript.Transcript{Chapters: []transcript.Chapter{{StartMs: 61500, Headline: "x"}}}
	got, _ := NewKeyMoments().Run(context.Background(), tr)
	if got[0].TimestampSeconds != 61.5 || got[0].Time != "00:01:01" {
		t.Errorf("moment = %+v, want 61.5s at 00:01:01", got[0])
	}
}

func TestSocialPostsTruncatesTwitter(t *testing.T) {
	posts := content.SocialPosts{
		Twitter:   strings.Repeat("a", 400),
		LinkedIn:  "l",
		Instagram: "i",
		TikTok:    "t",
		YouTube:   "y",
		Facebook:  "f",
	}
	gen := newFakeGenerator(map[string]fakeReply{
		"socialPosts": {text: mustJSON(t, posts)},
	})

	got, err := NewSocialPosts(gen).Run(context.Background(), threeChapters())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n := utf8.RuneCountInString(got.Twitter); n != content.TwitterMaxChars {
		t.Errorf("len(Twitter) = %d, want %d", n, content.TwitterMaxChars)
	}
	if got.Twitter != strings.Repeat("a", 277)+"..." {
		t.Errorf("Twitter = %q, want 277 chars plus ...", got.Twitter)
	}
}

func TestSoftTaskFailures(t *testing.T) {
	tests := []struct {
		name   string
		reply  fakeReply
		marker error
	}{
		{"service error", fakeReply{err: errors.New("dial tcp: refused")}, faults.ErrGenerativeService},
		{"invalid json", fakeReply{text: "not json at all"}, faults.ErrGenerativeService},
		{"contract violation", fakeReply{text: `{"youtube":["#a"],"instagram":[],"tiktok":[],"linkedin":[],"twitter":[]}`}, faults.ErrSchemaValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newFakeGenerator(map[string]fakeReply{"hashtags": tt.reply})
			_, err := NewHashtags(gen).Run(context.Background(), threeChapters())
			if !errors.Is(err, tt.marker) {
				t.Errorf("Run() error = %v, want %v", err, tt.marker)
			}
			if !faults.Recoverable(err) {
				t.Errorf("Recoverable(%v) = false, want true", err)
			}
		})
	}
}

func TestHashtagsMissingHashSymbol(t *testing.T) {
	tags := content.FallbackHashtags()
	tags.Twitter[0] = "NoHash"
	gen := newFakeGenerator(map[string]fakeReply{"hashtags": {text: mustJSON(t, tags)}})

	_, err := NewHashtags(gen).Run(context.Background(), threeChapters())
	if !errors.Is(err, faults.ErrSchemaValidation) {
		t.Errorf("Run() error = %v, want ErrSchemaValidation", err)
	}
}

func TestTitlesSuccess(t *testing.T) {
	want := content.Titles{
		YoutubeShort:  []string{"a", "b", "c"},
		YoutubeLong:   []string{"d", "e", "f"},
		PodcastTitles: []string{"g", "h", "i"},
		SEOKeywords:   []string{"k1", "k2", "k3", "k4", "k5"},
	}
	gen := newFakeGenerator(map[string]fakeReply{
		"titles": {text: "```json\n" + mustJSON(t, want) + "\n```"},
	})

	got, err := NewTitles(gen).Run(context.Background(), threeChapters())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got.YoutubeLong[2] != "f" || len(got.SEOKeywords) != 5 {
		t.Errorf("Run() = %+v, want %+v", got, want)
	}

	req := gen.requests[0]
	if req.Schema == nil || req.Schema.Properties["youtubeShort"].MaxItems != 3 {
		t.Errorf("request schema = %+v, want youtubeShort capped at 3", req.Schema)
	}
	if !strings.Contains(req.Prompt, "1. Intro") {
		t.Errorf("prompt missing chapter topics: %q", req.Prompt)
	}
}

func TestSummaryUsesTextWithoutChapters(t *testing.T) {
	gen := newFakeGenerator(map[string]fakeReply{
		"summary": {text: mustJSON(t, content.Summary{
			Full:     "full",
			Bullets:  []string{"1", "2", "3"},
			Insights: []string{"1", "2", "3"},
			TLDR:     "short",
		})},
	})

	tr := transcript.Transcript{Text: "only text"}
	got, err := NewSummary(gen).Run(context.Background(), tr)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got.TLDR != "short" {
		t.Errorf("TLDR = %q, want short", got.TLDR)
	}
	if !strings.Contains(gen.requests[0].Prompt, "only text") {
		t.Errorf("prompt does not include transcript text")
	}
}

func TestFallbacksMatchContracts(t *testing.T) {
	gen := newFakeGenerator(nil)
	fallbacks := []any{
		NewSummary(gen).Fallback(),
		NewSocialPosts(gen).Fallback(),
		NewTitles(gen).Fallback(),
		NewHashtags(gen).Fallback(),
	}
	for _, fb := range fallbacks {
		if err := content.Validate(fb); err != nil {
			t.Errorf("Validate(%T) error = %v", fb, err)
		}
	}
}

func TestSchemasMatchContracts(t *testing.T) {
	tests := []struct {
		schema *generator.Schema
		field  string
		min    int
		max    int
	}{
		{hashtagsSchema, "youtube", 5, 5},
		{hashtagsSchema, "instagram", 6, 8},
		{hashtagsSchema, "tiktok", 5, 6},
		{titlesSchema, "podcastTitles", 3, 3},
		{titlesSchema, "seoKeywords", 5, 10},
		{summarySchema, "bullets", 3, 7},
		{summarySchema, "insights", 3, 5},
	}
	for _, tt := range tests {
		prop := tt.schema.Properties[tt.field]
		if prop == nil {
			t.Errorf("schema missing %s", tt.field)
			continue
		}
		if prop.MinItems != tt.min || prop.MaxItems != tt.max {
			t.Errorf("%s items = [%d, %d], want [%d, %d]", tt.field, prop.MinItems, prop.MaxItems, tt.min, tt.max)
		}
	}
}

func TestYouTubeTimestampsNoChapters(t *testing.T) {
	gen := newFakeGenerator(nil)
	_, err := NewYouTubeTimestamps(gen, nil).Run(context.Background(), transcript.Transcript{Text: "x"})
	if !errors.Is(err, faults.ErrHardDependencyMissing) {
		t.Errorf("Run() error = %v, want ErrHardDependencyMissing", err)
	}
	if len(gen.requests) != 0 {
		t.Errorf("generator called %d times, want 0", len(gen.requests))
	}
}

func fiveChapters() transcript.Transcript {
	var chapters []transcript.Chapter
	for i := 0; i < 5; i++ {
		chapters = append(chapters, transcript.Chapter{
			StartMs:  int64(i) * 90500,
			Headline: fmt.Sprintf("Headline %d", i),
		})
	}
	chapters = append(chapters[:4], transcript.Chapter{StartMs: 3725000, Headline: "Headline 4"})
	return transcript.Transcript{Chapters: chapters}
}

func TestYouTubeTimestampsMissingIndex(t *testing.T) {
	reply := `{"titles":[
		{"index":0,"title":"Opening Remarks"},
		{"index":1,"title":"Tooling Deep Dive"},
		{"index":3,"title":"Live Demo"},
		{"index":4,"title":"Final Thoughts"}
	]}`
	gen := newFakeGenerator(map[string]fakeReply{"youtubeTimestamps": {text: reply}})
	em := &recordingEmitter{}

	got, err := NewYouTubeTimestamps(gen, em).Run(context.Background(), fiveChapters())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []content.YouTubeTimestamp{
		{Timestamp: "00:00", Description: "Opening Remarks"},
		{Timestamp: "01:30", Description: "Tooling Deep Dive"},
		{Timestamp: "03:01", Description: "Headline 2"},
		{Timestamp: "04:31", Description: "Live Demo"},
		{Timestamp: "1:02:05", Description: "Final Thoughts"},
	}
	if len(got) != len(want) {
		t.Fatalf("len(Run()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("timestamp[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(em.events) != 1 || em.events[0].Outcome != events.OutcomePartial {
		t.Errorf("events = %+v, want one partial event", em.events)
	}
}

func TestYouTubeTimestampsServiceDown(t *testing.T) {
	gen := newFakeGenerator(nil)
	got, err := NewYouTubeTimestamps(gen, nil).Run(context.Background(), threeChapters())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i, h := range []string{"Intro", "Setup", "Wrap-up"} {
		if got[i].Description != h {
			t.Errorf("timestamp[%d].Description = %q, want %q", i, got[i].Description, h)
		}
	}
}

func TestYouTubeTimestampsBadEntries(t *testing.T) {
	reply := `{"titles":[
		{"index":0,"title":"   "},
		{"index":1,"title":"First"},
		{"index":1,"title":"Second"},
		{"index":7,"title":"Out of range"},
		{"index":2.5,"title":"Fractional"}
	]}`
	gen := newFakeGenerator(map[string]fakeReply{"youtubeTimestamps": {text: reply}})

	got, err := NewYouTubeTimestamps(gen, nil).Run(context.Background(), threeChapters())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []string{"Intro", "First", "Wrap-up"}
	for i := range want {
		if got[i].Description != want[i] {
			t.Errorf("timestamp[%d].Description = %q, want %q", i, got[i].Description, want[i])
		}
	}
}

func TestYouTubeTimestampsChapterLimit(t *testing.T) {
	chapters := make([]transcript.Chapter, 150)
	for i := range chapters {
		chapters[i] = transcript.Chapter{StartMs: int64(i) * 1000, Headline: "h"}
	}
	gen := newFakeGenerator(map[string]fakeReply{"youtubeTimestamps": {text: `{"titles":[]}`}})

	got, err := NewYouTubeTimestamps(gen, nil).Run(context.Background(), transcript.Transcript{Chapters: chapters})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got) != youtubeChapterLimit {
		t.Errorf("len(Run()) = %d, want %d", len(got), youtubeChapterLimit)
	}
}

func TestSocialPromptFallbacks(t *testing.T) {
	prompt := buildSocialPrompt(transcript.Transcript{Text: strings.Repeat("x", 600)})
	if !strings.Contains(prompt, "See transcript") {
		t.Errorf("prompt without chapters should mention the transcript")
	}
	if strings.Contains(prompt, strings.Repeat("x", 501)) {
		t.Errorf("prompt should include at most 500 characters of text")
	}

	if got := buildHashtagsPrompt(transcript.Transcript{}); !strings.Contains(got, "General discussion") {
		t.Errorf("hashtags prompt without chapters = %q", got)
	}
}
