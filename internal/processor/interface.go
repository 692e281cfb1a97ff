package processor

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/pipeline"
	"github.com/nguyentantai21042004/episode-flow/internal/store"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

// Processor turns transcript files into stored content bundles.
type Processor interface {
	Process(ctx context.Context, transcriptPath string) error
	// ProcessAll processes several files, bounded by performance.max_concurrent.
	// It returns the first error after every file has been attempted.
	ProcessAll(ctx context.Context, paths []string) error
}

// Orchestrator produces a bundle for one transcript.
type Orchestrator interface {
	Run(ctx context.Context, t transcript.Transcript) *content.Bundle
}

// Store is the project store used around a run.
type Store interface {
	pipeline.Gateway
	Register(ctx context.Context, p store.Project) error
	MarkFailed(ctx context.Context, projectID, reason string) error
}
