package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// PostgresStore keeps each project as one JSONB document per row,
// mirroring the Redis layout for installations that already run
// Postgres.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgresStore on the given handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	doc        JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the projects table when it is missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createProjectsTable); err != nil {
		return fmt.Errorf("failed to ensure projects table: %w", err)
	}
	return nil
}

// LoadAll returns every stored project, oldest first.
func (s *PostgresStore) LoadAll(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM projects`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0, 8)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		var project domain.Project
		if err := json.Unmarshal(doc, &project); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project: %w", err)
		}
		project.Normalize()
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rows: %w", err)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

// Load retrieves one project by id.
func (s *PostgresStore) Load(ctx context.Context, id string) (*domain.Project, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM projects WHERE id = $1`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	var project domain.Project
	if err := json.Unmarshal(doc, &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project %s: %w", id, err)
	}
	project.Normalize()
	return &project, nil
}

// Save upserts the whole document.
func (s *PostgresStore) Save(ctx context.Context, project *domain.Project) error {
	doc, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		project.ID, doc)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// Delete removes the project row.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Ping reports whether the backing database answers.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
