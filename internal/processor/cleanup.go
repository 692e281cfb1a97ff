package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed transcript out of the inbox.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	return p.moveFile(ctx, path, p.cfg.Paths.Archived)
}

// moveToFailed parks a transcript that could not be processed; errors are only logged.
func (p *implProcessor) moveToFailed(ctx context.Context, path string) {
	if err := p.moveFile(ctx, path, p.cfg.Paths.Failed); err != nil {
		p.logger.Warn(ctx, "Failed to move %s to failed folder: %v", path, err)
	}
}

func (p *implProcessor) moveFile(ctx context.Context, path, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	destPath := filepath.Join(dir, filepath.Base(path))

	p.logger.Debug(ctx, "Moving %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move %s: %w", filepath.Base(path), err)
	}
	return nil
}
