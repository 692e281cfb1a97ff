package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/episode-flow/internal/logger"
)

// contentModel is the slice of *genai.Models the generator uses.
type contentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config captures the Gemini settings a generator needs.
type Config struct {
	APIKeys    []string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

type implGemini struct {
	models  []contentModel
	model   string
	timeout time.Duration
	logger  logger.Logger

	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration

	mu         sync.Mutex
	currentKey int
}

// Option customizes the generator.
type Option func(*implGemini)

// WithBackoff overrides the retry backoff delays.
func WithBackoff(baseDelay, maxDelay time.Duration) Option {
	return func(g *implGemini) {
		g.baseDelay = baseDelay
		g.maxDelay = maxDelay
	}
}

// New creates a Gemini-backed Generator with one client per API key.
// Keys are rotated when a call is rate limited.
func New(ctx context.Context, cfg Config, log logger.Logger, opts ...Option) (Generator, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, errors.New("gemini: at least one api key is required")
	}

	models := make([]contentModel, 0, len(cfg.APIKeys))
	for i, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create client for key %d: %w", i+1, err)
		}
		models = append(models, client.Models)
	}

	return newWithModels(models, cfg, log, opts...), nil
}

func newWithModels(models []contentModel, cfg Config, log logger.Logger, opts ...Option) *implGemini {
	g := &implGemini{
		models:     models,
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		logger:     log,
		maxRetries: cfg.MaxRetries,
		baseDelay:  time.Second,
		maxDelay:   10 * time.Second,
	}
	if g.model == "" {
		g.model = "gemini-2.5-flash"
	}
	if g.maxRetries < 0 {
		g.maxRetries = 0
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
