package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"google.golang.org/genai"
)

var errEmptyResponse = errors.New("empty response from Gemini")

// GenerateJSON sends the request with a JSON response schema and returns the
// raw text. Rate-limited calls rotate to the next key before retrying.
func (g *implGemini) GenerateJSON(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("%s: prompt required", req.Name)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema.toGenai(),
	}
	if system := strings.TrimSpace(req.System); system != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	contents := genai.Text(req.Prompt)

	policy := retrypolicy.NewBuilder[string]().
		HandleIf(func(_ string, err error) bool {
			return err != nil && isRetryable(err)
		}).
		WithBackoff(g.baseDelay, g.maxDelay).
		WithMaxRetries(g.maxRetries).
		Build()

	text, err := failsafe.With[string](policy).WithContext(ctx).Get(func() (string, error) {
		return g.callOnce(ctx, req.Name, contents, config)
	})
	if err != nil {
		return "", fmt.Errorf("%s: generate content: %w", req.Name, err)
	}
	return text, nil
}

func (g *implGemini) callOnce(ctx context.Context, name string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	idx, model := g.pick()

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	result, err := model.GenerateContent(callCtx, g.model, contents, config)
	if err != nil {
		if isRateLimited(err) {
			g.logger.Warn(ctx, "%s: key %d rate limited, rotating...", name, idx+1)
			g.rotateFrom(idx)
		} else {
			g.logger.Debug(ctx, "%s: Gemini call failed: %v", name, err)
		}
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text += part.Text
			}
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	g.logger.Debug(ctx, "%s: Gemini returned no text", name)
	return "", errEmptyResponse
}

func (g *implGemini) pick() (int, contentModel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.models[g.currentKey]
}

// rotateFrom advances past idx unless another caller already rotated.
func (g *implGemini) rotateFrom(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.models)
	}
}

func isRateLimited(err error) bool {
	if apiErr, ok := asAPIError(err); ok {
		return apiErr.Code == http.StatusTooManyRequests
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, errEmptyResponse) || errors.Is(err, context.DeadlineExceeded) || isRateLimited(err) {
		return true
	}
	// A structured API error is decided by its status code alone.
	if apiErr, ok := asAPIError(err); ok {
		return apiErr.Code >= http.StatusInternalServerError
	}
	msg := err.Error()
	for _, marker := range []string{"UNAVAILABLE", "INTERNAL", "502 Bad Gateway", "503 Service Unavailable", "504 Gateway Timeout"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}
