package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/events"
	"github.com/nguyentantai21042004/episode-flow/internal/pipeline"
	"github.com/nguyentantai21042004/episode-flow/internal/store"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

// Process loads one transcript file, generates its content bundle and
// persists it. The file is moved to the archived folder on success and to the
// failed folder when it cannot be read or persisted.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()

	doc, err := transcript.LoadFile(transcriptPath)
	if err != nil {
		p.logger.Error(ctx, "Failed to load transcript %s: %v", transcriptPath, err)
		p.moveToFailed(ctx, transcriptPath)
		return fmt.Errorf("load transcript: %w", err)
	}

	projectID := p.projectID(doc, transcriptPath)
	runID := p.newID()
	ctx = events.WithRunID(ctx, runID)
	log := p.logger.WithFields(map[string]interface{}{
		"project_id": projectID,
		"run_id":     runID,
	})

	log.Info(ctx, "Processing transcript: %s (%d chapters)", transcriptPath, len(doc.Chapters))

	if err := p.store.Register(ctx, store.Project{
		ID:        projectID,
		Title:     doc.Title,
		RunID:     runID,
		SizeBytes: doc.SizeBytes,
	}); err != nil {
		return p.fail(ctx, projectID, transcriptPath, fmt.Errorf("register project: %w", err))
	}
	if err := p.store.SetStatus(ctx, projectID, content.StatusProcessing); err != nil {
		return p.fail(ctx, projectID, transcriptPath, fmt.Errorf("set processing: %w", err))
	}

	bundle := p.orchestrator.Run(ctx, doc.Transcript)

	if err := pipeline.Persist(ctx, p.store, projectID, bundle); err != nil {
		return p.fail(ctx, projectID, transcriptPath, err)
	}

	if p.exporter != nil && p.cfg.Pipeline.ExportDocx {
		title := doc.Title
		if title == "" {
			title = projectID
		}
		if _, err := p.exporter.Export(ctx, projectID, title, bundle); err != nil {
			log.Warn(ctx, "Failed to export content kit: %v", err)
		}
	}

	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		log.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}

	if len(bundle.Degraded) > 0 {
		log.Warn(ctx, "Fallback content used for: %s", joinArtifacts(bundle.Degraded))
	}
	if len(bundle.Failed) > 0 {
		log.Warn(ctx, "Not generated: %s", joinArtifacts(bundle.Failed))
	}
	if secs := transcript.EstimateDurationFromSize(doc.SizeBytes); secs > 0 {
		log.Info(ctx, "Estimated audio duration: %s", content.FormatTimestamp(float64(secs), content.FormatOptions{}))
	}
	log.Info(ctx, "Processing completed in %s", time.Since(startTime))
	return nil
}

func (p *implProcessor) ProcessAll(ctx context.Context, paths []string) error {
	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, path := range paths {
		if err := sem.acquire(ctx); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()
			if err := p.Process(ctx, path); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(path), err))
				mu.Unlock()
			}
		}(path)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// fail records the failure on a best-effort basis and parks the input file.
func (p *implProcessor) fail(ctx context.Context, projectID, transcriptPath string, err error) error {
	if markErr := p.store.MarkFailed(context.WithoutCancel(ctx), projectID, err.Error()); markErr != nil {
		p.logger.Error(ctx, "Failed to mark %s as failed: %v", projectID, markErr)
	}
	p.moveToFailed(ctx, transcriptPath)
	return err
}

// projectID prefers the id carried by the document, then the file name.
func (p *implProcessor) projectID(doc transcript.Document, path string) string {
	if doc.ProjectID != "" {
		return doc.ProjectID
	}
	if stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)); stem != "" {
		return stem
	}
	return p.newID()
}

func joinArtifacts(list []content.Artifact) string {
	names := make([]string, len(list))
	for i, a := range list {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
