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

const commentColumns = `id, task_id, project_id, author_id, title, content,
	created_at, updated_at`

func scanComment(row pgx.Row) (*tracker.Comment, error) {
	var c tracker.Comment
	err := row.Scan(
		&c.ID,
		&c.TaskID,
		&c.ProjectID,
		&c.AuthorID,
		&c.Title,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracker.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}
	return &c, nil
}

func (s *TrackerStore) CreateComment(ctx context.Context, c *tracker.Comment) error {
	const q = `
		INSERT INTO comments (id, task_id, project_id, author_id, title, content,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.pool.Exec(ctx, q,
		c.ID, c.TaskID, c.ProjectID, c.AuthorID, c.Title, c.Content,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return tracker.ErrInvalidReference
		}
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (s *TrackerStore) GetComment(ctx context.Context, id uuid.UUID) (*tracker.Comment, error) {
	q := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return scanComment(s.pool.QueryRow(ctx, q, id))
}

func (s *TrackerStore) ListCommentsByTask(ctx context.Context, taskID uuid.UUID) ([]tracker.Comment, error) {
	q := `SELECT ` + commentColumns + ` FROM comments WHERE task_id = $1 ORDER BY created_at`
	return s.queryComments(ctx, q, taskID)
}

func (s *TrackerStore) ListCommentsByAuthor(ctx context.Context, authorID uuid.UUID) ([]tracker.Comment, error) {
	q := `SELECT ` + commentColumns + ` FROM comments WHERE author_id = $1 ORDER BY created_at`
	return s.queryComments(ctx, q, authorID)
}

func (s *TrackerStore) queryComments(ctx context.Context, q string, args ...any) ([]tracker.Comment, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []tracker.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (s *TrackerStore) UpdateComment(ctx context.Context, c *tracker.Comment) error {
	const q = `
		UPDATE comments SET title = $2, content = $3, updated_at = $4 WHERE id = $1
	`
	tag, err := s.pool.Exec(ctx, q, c.ID, c.Title, c.Content, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrCommentNotFound
	}
	return nil
}

func (s *TrackerStore) DeleteComment(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrCommentNotFound
	}
	return nil
}
