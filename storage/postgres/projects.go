package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub/pkg/pg"
	"github.com/taskhub/taskhub/svc/tracker"
)

// TrackerStore implements tracker.Storage. Its methods are spread across
// projects.go, tasks.go, and comments.go.
type TrackerStore struct {
	pool querier
}

// NewTrackerStore creates a tracker repository over the given pool.
func NewTrackerStore(pool *pgxpool.Pool) *TrackerStore {
	return &TrackerStore{pool: pool}
}

const projectColumns = `id, name, version, title, description, file_path,
	status, start_date, end_date, manager_id, created_at, updated_at`

func scanProject(row pgx.Row) (*tracker.Project, error) {
	var p tracker.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Version,
		&p.Title,
		&p.Description,
		&p.FilePath,
		&p.Status,
		&p.StartDate,
		&p.EndDate,
		&p.ManagerID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracker.ErrProjectNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &p, nil
}

func (s *TrackerStore) CreateProject(ctx context.Context, p *tracker.Project) error {
	const q = `
		INSERT INTO projects (id, name, version, title, description, file_path,
			status, start_date, end_date, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.pool.Exec(ctx, q,
		p.ID, p.Name, p.Version, p.Title, p.Description, p.FilePath,
		p.Status, p.StartDate, p.EndDate, p.ManagerID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return tracker.ErrInvalidReference
		}
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *TrackerStore) GetProject(ctx context.Context, id uuid.UUID) (*tracker.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(s.pool.QueryRow(ctx, q, id))
}

func (s *TrackerStore) ListProjects(ctx context.Context) ([]tracker.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	return s.queryProjects(ctx, q)
}

func (s *TrackerStore) ListProjectsByManager(ctx context.Context, managerID uuid.UUID) ([]tracker.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE manager_id = $1 ORDER BY created_at`
	return s.queryProjects(ctx, q, managerID)
}

func (s *TrackerStore) queryProjects(ctx context.Context, q string, args ...any) ([]tracker.Project, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []tracker.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *TrackerStore) UpdateProject(ctx context.Context, p *tracker.Project) error {
	const q = `
		UPDATE projects
		SET name = $2, version = $3, title = $4, description = $5, file_path = $6,
			status = $7, start_date = $8, end_date = $9, updated_at = $10
		WHERE id = $1
	`
	tag, err := s.pool.Exec(ctx, q,
		p.ID, p.Name, p.Version, p.Title, p.Description, p.FilePath,
		p.Status, p.StartDate, p.EndDate, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrProjectNotFound
	}
	return nil
}

func (s *TrackerStore) DeleteProject(ctx context.Context, id uuid.UUID) error {
	// Memberships go with the project; restrict FKs on tasks and comments
	// still block deletion of projects with work attached.
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete project: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM project_members WHERE project_id = $1`, id); err != nil {
		return fmt.Errorf("delete project members: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return tracker.ErrHasDependents
		}
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrProjectNotFound
	}

	return tx.Commit(ctx)
}

func (s *TrackerStore) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	const q = `INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)`
	if _, err := s.pool.Exec(ctx, q, projectID, userID); err != nil {
		if pg.IsDuplicateKeyError(err) {
			return tracker.ErrAlreadyMember
		}
		if pg.IsForeignKeyViolationError(err) {
			return tracker.ErrInvalidReference
		}
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

func (s *TrackerStore) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	const q = `DELETE FROM project_members WHERE project_id = $1 AND user_id = $2`
	tag, err := s.pool.Exec(ctx, q, projectID, userID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrNotMember
	}
	return nil
}

func (s *TrackerStore) ListMembers(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT user_id FROM project_members WHERE project_id = $1 ORDER BY user_id`
	rows, err := s.pool.Query(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, id)
	}
	return members, rows.Err()
}
