// Package tasks implements the generation tasks that turn one transcript into
// the artifacts of a content bundle.
//
// Tasks return their result or an error. Substituting placeholders for failed
// soft tasks is left to the caller, see SoftTask.
package tasks

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

// Task derives one artifact from a transcript.
type Task[T any] interface {
	Name() content.Artifact
	Run(ctx context.Context, t transcript.Transcript) (T, error)
}

// SoftTask is a Task whose failures are absorbed by a fixed fallback value.
type SoftTask[T any] interface {
	Task[T]
	Fallback() T
}
