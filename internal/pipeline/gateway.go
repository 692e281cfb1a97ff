package pipeline

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/faults"
)

// Gateway is the durable store for generated content. Both calls must be
// idempotent: a run may be re-invoked after a partial failure.
type Gateway interface {
	SaveContent(ctx context.Context, projectID string, bundle *content.Bundle) error
	SetStatus(ctx context.Context, projectID string, status content.Status) error
}

// Persist writes bundle and then marks the project completed, so the
// completed status is never visible before its content. Every failure is
// tagged ErrPersistence and returned for the caller to retry.
func Persist(ctx context.Context, gw Gateway, projectID string, bundle *content.Bundle) error {
	if err := ctx.Err(); err != nil {
		return faults.Wrap(faults.ErrPersistence, projectID, "persist", err)
	}
	if bundle == nil {
		return faults.Wrap(faults.ErrPersistence, projectID, "persist", errors.New("nil bundle"))
	}
	if err := gw.SaveContent(ctx, projectID, bundle); err != nil {
		return faults.Wrap(faults.ErrPersistence, projectID, "save content", err)
	}
	if err := gw.SetStatus(ctx, projectID, content.StatusCompleted); err != nil {
		return faults.Wrap(faults.ErrPersistence, projectID, "set status", err)
	}
	return nil
}
