package generator

import "context"

// Generator calls an external generative-text service and returns the raw
// text payload, which callers parse and validate themselves.
// Implementations must be safe for concurrent use.
type Generator interface {
	GenerateJSON(ctx context.Context, req Request) (string, error)
}

// Request is one schema-constrained generation call.
type Request struct {
	// Name identifies the calling task in logs.
	Name   string
	System string
	Prompt string
	Schema *Schema
}
