package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role names seeded by the migrations.
const (
	RoleProjectManager = "ProjectManager"
	RoleUser           = "User"
)

// Token purposes for account tokens.
const (
	SubjectEmailConfirm = "email_confirm"
	SubjectEmailChange  = "email_change"
)

// User is an account record. PasswordHash never leaves the storage layer;
// the service fetches it separately when verifying credentials.
type User struct {
	ID                 uuid.UUID  `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	EmailConfirmed     bool       `json:"email_confirmed"`
	FirstName          string     `json:"first_name,omitempty"`
	LastName           string     `json:"last_name,omitempty"`
	PhoneNumber        string     `json:"phone_number,omitempty"`
	ProfilePicturePath string     `json:"profile_picture_path,omitempty"`
	SecretKey          string     `json:"-"`
	TwoFactorEnabled   bool       `json:"two_factor_enabled"`
	LockoutEnabled     bool       `json:"lockout_enabled"`
	LockoutUntil       *time.Time `json:"lockout_until,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Locked reports whether the account is currently locked out.
func (u *User) Locked() bool {
	return u.LockoutEnabled && u.LockoutUntil != nil && u.LockoutUntil.After(time.Now())
}

// RegisterParams carries new-account data.
type RegisterParams struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// UpdateProfileParams carries profile fields for UpdateProfile. Zero-value
// strings leave the stored field unchanged.
type UpdateProfileParams struct {
	Username           string
	FirstName          string
	LastName           string
	PhoneNumber        string
	ProfilePicturePath string
}

// Session is the result of a successful authentication.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

// EmailChangeRequest describes a pending email change.
type EmailChangeRequest struct {
	CurrentEmail string
	NewEmail     string
	Token        string
	ExpiresAt    time.Time
}

// Storage is the persistence surface the service depends on. Implementations
// map storage-level failures to the package's sentinel errors: duplicate keys
// to ErrEmailTaken/ErrUsernameTaken, missing rows to ErrUserNotFound, and
// foreign-key violations on delete to ErrUserHasDependents.
type Storage interface {
	CreateUser(ctx context.Context, user *User, passwordHash []byte) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	SetEmailConfirmed(ctx context.Context, id uuid.UUID) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	GetPasswordHash(ctx context.Context, id uuid.UUID) ([]byte, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash []byte) error

	SetLockout(ctx context.Context, id uuid.UUID, until *time.Time) error
	SetTwoFactor(ctx context.Context, id uuid.UUID, enabled bool) error

	AssignRole(ctx context.Context, userID uuid.UUID, role string) error
	UserRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
}
