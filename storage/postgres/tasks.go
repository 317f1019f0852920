package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskhub/taskhub/pkg/pg"
	"github.com/taskhub/taskhub/svc/tracker"
)

const taskColumns = `id, project_id, assignee_id, title, description,
	due_date, status, priority, file_path, created_at, updated_at`

func scanTask(row pgx.Row) (*tracker.Task, error) {
	var t tracker.Task
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.AssigneeID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Status,
		&t.Priority,
		&t.FilePath,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracker.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}

func (s *TrackerStore) CreateTask(ctx context.Context, t *tracker.Task) error {
	const q = `
		INSERT INTO tasks (id, project_id, assignee_id, title, description,
			due_date, status, priority, file_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.pool.Exec(ctx, q,
		t.ID, t.ProjectID, t.AssigneeID, t.Title, t.Description,
		t.DueDate, t.Status, t.Priority, t.FilePath, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return tracker.ErrInvalidReference
		}
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *TrackerStore) GetTask(ctx context.Context, id uuid.UUID) (*tracker.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(s.pool.QueryRow(ctx, q, id))
}

func (s *TrackerStore) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]tracker.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 ORDER BY created_at DESC`
	return s.queryTasks(ctx, q, projectID)
}

func (s *TrackerStore) ListTasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]tracker.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE assignee_id = $1 ORDER BY created_at DESC`
	return s.queryTasks(ctx, q, assigneeID)
}

func (s *TrackerStore) queryTasks(ctx context.Context, q string, args ...any) ([]tracker.Task, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []tracker.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (s *TrackerStore) UpdateTask(ctx context.Context, t *tracker.Task) error {
	const q = `
		UPDATE tasks
		SET assignee_id = $2, title = $3, description = $4, due_date = $5,
			status = $6, priority = $7, file_path = $8, updated_at = $9
		WHERE id = $1
	`
	tag, err := s.pool.Exec(ctx, q,
		t.ID, t.AssigneeID, t.Title, t.Description, t.DueDate,
		t.Status, t.Priority, t.FilePath, t.UpdatedAt,
	)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return tracker.ErrInvalidReference
		}
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrTaskNotFound
	}
	return nil
}

func (s *TrackerStore) DeleteTask(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return tracker.ErrHasDependents
		}
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrTaskNotFound
	}
	return nil
}
