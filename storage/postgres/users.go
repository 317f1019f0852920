package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub/pkg/pg"
	"github.com/taskhub/taskhub/svc/identity"
)

// UsersStore implements identity.Storage.
type UsersStore struct {
	pool querier
}

// NewUsersStore creates a user repository over the given pool.
func NewUsersStore(pool *pgxpool.Pool) *UsersStore {
	return &UsersStore{pool: pool}
}

const userColumns = `id, username, email, email_confirmed, first_name, last_name,
	phone_number, profile_picture_path, secret_key, two_factor_enabled,
	lockout_enabled, lockout_until, created_at, updated_at`

func scanUser(row pgx.Row) (*identity.User, error) {
	var u identity.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.EmailConfirmed,
		&u.FirstName,
		&u.LastName,
		&u.PhoneNumber,
		&u.ProfilePicturePath,
		&u.SecretKey,
		&u.TwoFactorEnabled,
		&u.LockoutEnabled,
		&u.LockoutUntil,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func mapUserWriteError(err error) error {
	if pg.IsDuplicateKeyError(err) {
		constraint := pg.ConstraintName(err)
		switch {
		case strings.Contains(constraint, "email"):
			return identity.ErrEmailTaken
		case strings.Contains(constraint, "username"):
			return identity.ErrUsernameTaken
		}
		return identity.ErrEmailTaken
	}
	return err
}

func (s *UsersStore) CreateUser(ctx context.Context, user *identity.User, passwordHash []byte) error {
	const q = `
		INSERT INTO users (id, username, email, email_confirmed, password_hash,
			first_name, last_name, phone_number, profile_picture_path, secret_key,
			two_factor_enabled, lockout_enabled, lockout_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := s.pool.Exec(ctx, q,
		user.ID, user.Username, user.Email, user.EmailConfirmed, passwordHash,
		user.FirstName, user.LastName, user.PhoneNumber, user.ProfilePicturePath,
		user.SecretKey, user.TwoFactorEnabled, user.LockoutEnabled,
		user.LockoutUntil, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return mapUserWriteError(err)
	}
	return nil
}

func (s *UsersStore) GetUserByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(s.pool.QueryRow(ctx, q, id))
}

func (s *UsersStore) GetUserByEmail(ctx context.Context, email string) (*identity.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(s.pool.QueryRow(ctx, q, email))
}

func (s *UsersStore) ListUsers(ctx context.Context) ([]identity.User, error) {
	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []identity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *UsersStore) UpdateProfile(ctx context.Context, user *identity.User) error {
	const q = `
		UPDATE users
		SET username = $2, first_name = $3, last_name = $4, phone_number = $5,
			profile_picture_path = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := s.pool.Exec(ctx, q,
		user.ID, user.Username, user.FirstName, user.LastName,
		user.PhoneNumber, user.ProfilePicturePath, user.UpdatedAt,
	)
	if err != nil {
		return mapUserWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrUserNotFound
	}
	return nil
}

func (s *UsersStore) DeleteUser(ctx context.Context, id uuid.UUID) error {
	// Membership rows are removed first; restrict FKs on tasks, comments,
	// and managed projects still block deletion of accounts with history.
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete user: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user roles: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM project_members WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user memberships: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return identity.ErrUserHasDependents
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrUserNotFound
	}

	return tx.Commit(ctx)
}

func (s *UsersStore) SetEmailConfirmed(ctx context.Context, id uuid.UUID) error {
	return s.execOnUser(ctx, `UPDATE users SET email_confirmed = TRUE, updated_at = now() WHERE id = $1`, id)
}

func (s *UsersStore) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	const q = `UPDATE users SET email = $2, updated_at = now() WHERE id = $1`
	tag, err := s.pool.Exec(ctx, q, id, email)
	if err != nil {
		return mapUserWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrUserNotFound
	}
	return nil
}

func (s *UsersStore) GetPasswordHash(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var hash []byte
	err := s.pool.QueryRow(ctx, `SELECT password_hash FROM users WHERE id = $1`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get password hash: %w", err)
	}
	return hash, nil
}

func (s *UsersStore) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash []byte) error {
	return s.execOnUser(ctx, `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, hash)
}

func (s *UsersStore) SetLockout(ctx context.Context, id uuid.UUID, until *time.Time) error {
	return s.execOnUser(ctx, `UPDATE users SET lockout_until = $2, updated_at = now() WHERE id = $1`, id, until)
}

func (s *UsersStore) SetTwoFactor(ctx context.Context, id uuid.UUID, enabled bool) error {
	return s.execOnUser(ctx, `UPDATE users SET two_factor_enabled = $2, updated_at = now() WHERE id = $1`, id, enabled)
}

func (s *UsersStore) AssignRole(ctx context.Context, userID uuid.UUID, role string) error {
	const q = `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2
		ON CONFLICT DO NOTHING
	`
	if _, err := s.pool.Exec(ctx, q, userID, role); err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return identity.ErrUserNotFound
		}
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

func (s *UsersStore) UserRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const q = `
		SELECT r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("user roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

func (s *UsersStore) execOnUser(ctx context.Context, q string, id uuid.UUID, args ...any) error {
	tag, err := s.pool.Exec(ctx, q, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrUserNotFound
	}
	return nil
}
