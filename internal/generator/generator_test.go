package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/episode-flow/internal/logger"
)

type fakeModel struct {
	mu      sync.Mutex
	calls   int
	replies []fakeReply
	configs []*genai.GenerateContentConfig
}

type fakeReply struct {
	text string
	err  error
}

func (f *fakeModel) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs = append(f.configs, config)
	reply := f.replies[min(f.calls, len(f.replies)-1)]
	f.calls++
	if reply.err != nil {
		return nil, reply.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: reply.text}}},
		}},
	}, nil
}

func testGenerator(models ...contentModel) *implGemini {
	return newWithModels(models, Config{Model: "test-model", MaxRetries: 2}, logger.New("error"),
		WithBackoff(time.Millisecond, 2*time.Millisecond))
}

func TestGenerateJSONSendsSchema(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{text: `{"ok":true}`}}}
	g := testGenerator(model)

	req := Request{
		Name:   "hashtags",
		System: "You are a test.",
		Prompt: "Say ok",
		Schema: Object(map[string]*Schema{
			"youtube": StringArray("five tags", 5, 5),
		}, "youtube"),
	}
	text, err := g.GenerateJSON(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateJSON() error = %v", err)
	}
	if text != `{"ok":true}` {
		t.Errorf("GenerateJSON() = %q", text)
	}

	cfg := model.configs[0]
	if cfg.ResponseMIMEType != "application/json" {
		t.Errorf("ResponseMIMEType = %q, want application/json", cfg.ResponseMIMEType)
	}
	yt := cfg.ResponseSchema.Properties["youtube"]
	if yt == nil || yt.MinItems == nil || *yt.MinItems != 5 || *yt.MaxItems != 5 {
		t.Fatalf("youtube schema = %+v, want min=max=5", yt)
	}
	if yt.Items.Type != genai.TypeString {
		t.Errorf("items type = %v, want %v", yt.Items.Type, genai.TypeString)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "You are a test." {
		t.Errorf("SystemInstruction = %+v", cfg.SystemInstruction)
	}
}

func TestGenerateJSONRetriesEmptyResponse(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{text: ""}, {text: `{"ok":true}`}}}
	g := testGenerator(model)

	if _, err := g.GenerateJSON(context.Background(), Request{Name: "titles", Prompt: "p"}); err != nil {
		t.Fatalf("GenerateJSON() error = %v", err)
	}
	if model.calls != 2 {
		t.Errorf("calls = %d, want 2", model.calls)
	}
}

func TestGenerateJSONRotatesKeyOnQuota(t *testing.T) {
	limited := &fakeModel{replies: []fakeReply{{err: errors.New("Error 429, RESOURCE_EXHAUSTED")}}}
	healthy := &fakeModel{replies: []fakeReply{{text: `{"ok":true}`}}}
	g := testGenerator(limited, healthy)

	if _, err := g.GenerateJSON(context.Background(), Request{Name: "summary", Prompt: "p"}); err != nil {
		t.Fatalf("GenerateJSON() error = %v", err)
	}
	if limited.calls != 1 || healthy.calls != 1 {
		t.Errorf("calls = (%d, %d), want (1, 1)", limited.calls, healthy.calls)
	}
	if g.currentKey != 1 {
		t.Errorf("currentKey = %d, want 1", g.currentKey)
	}
}

func TestGenerateJSONDoesNotRetryPermanentError(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{err: errors.New("Error 400, INVALID_ARGUMENT")}}}
	g := testGenerator(model)

	_, err := g.GenerateJSON(context.Background(), Request{Name: "titles", Prompt: "p"})
	if err == nil {
		t.Fatal("GenerateJSON() should fail")
	}
	if model.calls != 1 {
		t.Errorf("calls = %d, want 1", model.calls)
	}
	if !strings.Contains(err.Error(), "titles") {
		t.Errorf("error %q should name the task", err)
	}
}

func TestGenerateJSONGivesUpAfterRetries(t *testing.T) {
	model := &fakeModel{replies: []fakeReply{{err: errors.New("Error 503, UNAVAILABLE")}}}
	g := testGenerator(model)

	if _, err := g.GenerateJSON(context.Background(), Request{Name: "titles", Prompt: "p"}); err == nil {
		t.Fatal("GenerateJSON() should fail")
	}
	if model.calls != 3 {
		t.Errorf("calls = %d, want 3 (1 + 2 retries)", model.calls)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"server error code", genai.APIError{Code: 500, Message: "boom"}, true},
		{"unavailable code", fmt.Errorf("generate: %w", genai.APIError{Code: 503}), true},
		{"rate limit code", genai.APIError{Code: 429}, true},
		{"bad request mentioning 500", genai.APIError{Code: 400, Message: "prompt has 500 tokens, INTERNAL note"}, false},
		{"not found", &genai.APIError{Code: 404}, false},
		{"plain unavailable", errors.New("rpc error: UNAVAILABLE"), true},
		{"plain number in text", errors.New("field value 500 is invalid"), false},
		{"empty response", errEmptyResponse, true},
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGenerateJSONRequiresPrompt(t *testing.T) {
	g := testGenerator(&fakeModel{replies: []fakeReply{{text: "{}"}}})
	if _, err := g.GenerateJSON(context.Background(), Request{Name: "x", Prompt: "  "}); err == nil {
		t.Error("GenerateJSON() should reject an empty prompt")
	}
}

func TestNewRequiresKeys(t *testing.T) {
	if _, err := New(context.Background(), Config{}, logger.New("error")); err == nil {
		t.Error("New() should fail without api keys")
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		OK bool `json:"ok"`
	}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", `{"ok":true}`, false},
		{"code fence", "```json\n{\"ok\":true}\n```", false},
		{"prose around", "Here you go: {\"ok\":true} thanks", false},
		{"empty", "   ", true},
		{"garbage", "not json at all", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := DecodeJSON(tt.input, &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !p.OK {
				t.Error("DecodeJSON() did not populate target")
			}
		})
	}
}

func TestSnippet(t *testing.T) {
	if got := Snippet(""); got != "<empty>" {
		t.Errorf("Snippet(\"\") = %q", got)
	}
	if got := Snippet("a\n\tb"); got != "a b" {
		t.Errorf("Snippet() = %q, want %q", got, "a b")
	}
	long := strings.Repeat("x", 200)
	if got := Snippet(long); len([]rune(got)) != 163 {
		t.Errorf("len(Snippet(long)) = %d, want 163", len([]rune(got)))
	}
}
