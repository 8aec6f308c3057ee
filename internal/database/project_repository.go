package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/cardi/internal/models"
)

// ProjectRepo stores projects in the SQLite projects table.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo wraps an initialized database (see InitDB)
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// OpenProjectRepo opens the database at dbPath and returns a store over it
func OpenProjectRepo(ctx context.Context, dbPath string) (*ProjectRepo, error) {
	db, err := InitDB(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	return NewProjectRepo(db), nil
}

const projectColumns = `name, craft, current_row, notes, progress, status, started`

// Get retrieves a project by name
func (r *ProjectRepo) Get(ctx context.Context, name string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE name = ?`, name)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project '%s': %w", name, err)
	}
	return p, nil
}

// Put inserts or replaces the project stored under name
func (r *ProjectRepo) Put(ctx context.Context, name string, project *models.Project) error {
	if err := validateKey(name); err != nil {
		return err
	}

	craft, err := project.Craft.MarshalText()
	if err != nil {
		return err
	}
	status, err := project.Status.MarshalText()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			craft = excluded.craft,
			current_row = excluded.current_row,
			notes = excluded.notes,
			progress = excluded.progress,
			status = excluded.status,
			started = excluded.started`,
		name,
		string(craft),
		project.CurrentRow,
		project.Notes,
		project.Progress,
		string(status),
		project.Started.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save project '%s': %w", name, err)
	}
	return nil
}

// Delete removes the project stored under name
func (r *ProjectRepo) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete project '%s': %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project '%s': %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// List retrieves all projects ordered by name
func (r *ProjectRepo) List(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Close closes the underlying database
func (r *ProjectRepo) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	var (
		p       models.Project
		craft   string
		status  string
		started string
	)
	if err := s.Scan(&p.Name, &craft, &p.CurrentRow, &p.Notes, &p.Progress, &status, &started); err != nil {
		return nil, err
	}

	if err := p.Craft.UnmarshalText([]byte(craft)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, p.Name, err)
	}
	if err := p.Status.UnmarshalText([]byte(status)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, p.Name, err)
	}
	t, err := time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, p.Name, err)
	}
	p.Started = t

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, p.Name, err)
	}
	return &p, nil
}
