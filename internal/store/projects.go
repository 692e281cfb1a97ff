package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
)

// Project is one stored episode record.
type Project struct {
	ID        string
	Title     string
	Status    content.Status
	RunID     string
	SizeBytes int64
	Content   *content.Bundle
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const projectColumns = `project_id, title, status, run_id, size_bytes, content_json, error_message, created_at, updated_at`

// Register records a project as uploaded, or refreshes its metadata and run
// identifier when it already exists. Stored content is kept.
func (s *Store) Register(ctx context.Context, p Project) error {
	if p.ID == "" {
		return errors.New("project id is required")
	}
	now := timestamp()
	err := s.exec(ctx,
		`INSERT INTO projects (project_id, title, status, run_id, size_bytes, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(project_id) DO UPDATE SET
             title = excluded.title,
             run_id = excluded.run_id,
             size_bytes = excluded.size_bytes,
             updated_at = excluded.updated_at`,
		p.ID, nullableString(p.Title), content.StatusUploaded, nullableString(p.RunID), p.SizeBytes, now, now,
	)
	if err != nil {
		return fmt.Errorf("register project %s: %w", p.ID, err)
	}
	return nil
}

// SaveContent replaces the project's generated content. Writing the same
// bundle twice leaves the same record.
func (s *Store) SaveContent(ctx context.Context, projectID string, bundle *content.Bundle) error {
	if bundle == nil {
		return errors.New("bundle is nil")
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}
	now := timestamp()
	err = s.exec(ctx,
		`INSERT INTO projects (project_id, status, content_json, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(project_id) DO UPDATE SET
             content_json = excluded.content_json,
             updated_at = excluded.updated_at`,
		projectID, content.StatusProcessing, string(data), now, now,
	)
	if err != nil {
		return fmt.Errorf("save content for %s: %w", projectID, err)
	}
	return nil
}

// SetStatus moves the project to status. Any non-failed status clears the
// stored error message.
func (s *Store) SetStatus(ctx context.Context, projectID string, status content.Status) error {
	return s.setStatus(ctx, projectID, status, "")
}

// MarkFailed records a failed run with its reason.
func (s *Store) MarkFailed(ctx context.Context, projectID, reason string) error {
	return s.setStatus(ctx, projectID, content.StatusFailed, reason)
}

func (s *Store) setStatus(ctx context.Context, projectID string, status content.Status, reason string) error {
	now := timestamp()
	err := s.exec(ctx,
		`INSERT INTO projects (project_id, status, error_message, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(project_id) DO UPDATE SET
             status = excluded.status,
             error_message = excluded.error_message,
             updated_at = excluded.updated_at`,
		projectID, status, nullableString(reason), now, now,
	)
	if err != nil {
		return fmt.Errorf("set status %s for %s: %w", status, projectID, err)
	}
	return nil
}

// Get returns the project or nil when it does not exist.
func (s *Store) Get(ctx context.Context, projectID string) (*Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE project_id = ?`, projectID)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", projectID, err)
	}
	return p, nil
}

// List returns projects ordered by most recent update, optionally filtered by status.
func (s *Store) List(ctx context.Context, statuses ...content.Status) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, st := range statuses {
			placeholders[i] = "?"
			args = append(args, st)
		}
		query += ` WHERE status IN (` + strings.Join(placeholders, ",") + `)`
	}
	query += ` ORDER BY updated_at DESC, project_id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

func scanProject(scanner interface{ Scan(dest ...any) error }) (*Project, error) {
	var (
		p                          Project
		title, runID, body, errMsg sql.NullString
		status                     string
		created, updated           string
	)
	if err := scanner.Scan(&p.ID, &title, &status, &runID, &p.SizeBytes, &body, &errMsg, &created, &updated); err != nil {
		return nil, err
	}
	p.Title = title.String
	p.Status = content.Status(status)
	p.RunID = runID.String
	p.Error = errMsg.String

	if body.Valid && body.String != "" {
		var b content.Bundle
		if err := json.Unmarshal([]byte(body.String), &b); err != nil {
			return nil, fmt.Errorf("decode content for %s: %w", p.ID, err)
		}
		p.Content = &b
	}

	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &p, nil
}
