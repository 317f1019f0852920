package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub/taskhub/pkg/email"
	"github.com/taskhub/taskhub/pkg/jwt"
	"github.com/taskhub/taskhub/pkg/logger"
	"github.com/taskhub/taskhub/pkg/sanitizer"
	"github.com/taskhub/taskhub/pkg/token"
	"github.com/taskhub/taskhub/pkg/validator"
)

// Service orchestrates account workflows: registration, email confirmation,
// authentication, password management, lockout, two-factor flags, and email
// changes.
type Service struct {
	storage        Storage
	sender         email.EmailSender
	jwtService     *jwt.Service
	tokenSecret    string
	bcryptCost     int
	logger         *slog.Logger
	passwordPolicy validator.PasswordPolicy
	sessionTTL     time.Duration
	confirmTTL     time.Duration
	emailChangeTTL time.Duration
	issuer         string
	audience       string
	publicBaseURL  string
}

// Option is a functional option for Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithPasswordPolicy overrides the default password policy.
func WithPasswordPolicy(policy validator.PasswordPolicy) Option {
	return func(s *Service) {
		s.passwordPolicy = policy
	}
}

// New creates the account service. cfg supplies secrets, token lifetimes,
// and the public base URL used in email links.
func New(storage Storage, sender email.EmailSender, cfg Config, opts ...Option) (*Service, error) {
	if storage == nil {
		return nil, errors.New("identity: storage is required")
	}
	if sender == nil {
		return nil, errors.New("identity: email sender is required")
	}

	jwtService, err := jwt.NewFromString(cfg.SessionSigningKey)
	if err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}

	s := &Service{
		storage:        storage,
		sender:         sender,
		jwtService:     jwtService,
		tokenSecret:    cfg.TokenSecret,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		passwordPolicy: validator.DefaultPasswordPolicy(),
		sessionTTL:     cfg.SessionTTL,
		confirmTTL:     cfg.ConfirmTTL,
		emailChangeTTL: cfg.EmailChangeTTL,
		issuer:         cfg.Issuer,
		audience:       cfg.Audience,
		publicBaseURL:  cfg.PublicBaseURL,
	}

	if s.sessionTTL <= 0 {
		s.sessionTTL = time.Hour
	}
	if s.confirmTTL <= 0 {
		s.confirmTTL = 24 * time.Hour
	}
	if s.emailChangeTTL <= 0 {
		s.emailChangeTTL = time.Hour
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// TokenVerifier exposes the session token service so transport middleware
// can verify Bearer tokens with the same signing key.
func (s *Service) TokenVerifier() *jwt.Service {
	return s.jwtService
}

// Register creates an unconfirmed account, assigns the default role, and
// sends a confirmation email. A failed email send does not roll the account
// back; it is logged and registration still succeeds.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	username := sanitizer.Trim(params.Username)
	emailAddr := sanitizer.NormalizeEmail(params.Email)

	rules := []validator.Rule{
		validator.Required("username", username),
		validator.MinLen("username", username, 3),
		validator.MaxLen("username", username, 64),
		validator.Required("email", emailAddr),
		validator.ValidEmail("email", emailAddr),
	}
	rules = append(rules, validator.PasswordRules("password", params.Password, s.passwordPolicy)...)
	if params.PhoneNumber != "" {
		rules = append(rules, validator.ValidPhone("phoneNumber", params.PhoneNumber))
	}
	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	// Pre-check; the unique index still guards against races.
	if _, err := s.storage.GetUserByEmail(ctx, emailAddr); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	secretKey, err := randomSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret key: %w", err)
	}

	now := time.Now()
	user := &User{
		ID:             uuid.New(),
		Username:       username,
		Email:          emailAddr,
		EmailConfirmed: false,
		FirstName:      sanitizer.Trim(params.FirstName),
		LastName:       sanitizer.Trim(params.LastName),
		PhoneNumber:    sanitizer.Trim(params.PhoneNumber),
		SecretKey:      secretKey,
		LockoutEnabled: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.storage.CreateUser(ctx, user, hash); err != nil {
		return nil, err
	}

	if err := s.storage.AssignRole(ctx, user.ID, RoleUser); err != nil {
		return nil, fmt.Errorf("failed to assign default role: %w", err)
	}

	confirmToken, err := s.issueConfirmationToken(user)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue confirmation token",
			logger.UserID(user.ID), logger.Error(err))
		return user, nil
	}
	if err := s.sender.SendEmail(ctx, s.confirmationEmail(user, confirmToken)); err != nil {
		s.logger.ErrorContext(ctx, "failed to send confirmation email",
			logger.UserID(user.ID), logger.Error(err))
	}

	return user, nil
}

// ConfirmEmail validates a confirmation token and marks the address confirmed.
// The token is checked even for already-confirmed accounts, so the endpoint
// never reveals confirmation state to callers without a valid token.
func (s *Service) ConfirmEmail(ctx context.Context, userID uuid.UUID, confirmToken string) error {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	claims, err := token.ParseClaims(confirmToken, s.tokenSecret, SubjectEmailConfirm)
	if err != nil {
		return ErrInvalidToken
	}
	if claims.ID != user.ID.String() || claims.Email != user.Email {
		return ErrInvalidToken
	}
	if user.EmailConfirmed {
		return nil
	}

	return s.storage.SetEmailConfirmed(ctx, user.ID)
}

// Login authenticates by email and password and returns a session token.
// Checks run in order and short-circuit: account exists, email confirmed,
// not locked, password matches. Unknown email and wrong password share
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (*Session, error) {
	user, err := s.storage.GetUserByEmail(ctx, sanitizer.NormalizeEmail(emailAddr))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.EmailConfirmed {
		return nil, ErrEmailNotConfirmed
	}
	if user.Locked() {
		return nil, ErrAccountLocked
	}

	hash, err := s.storage.GetPasswordHash(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(user)
}

// ChangePassword verifies the current password, validates the new one
// against the policy, stores the new hash, and returns a fresh session.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (*Session, error) {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hash, err := s.storage.GetPasswordHash(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(currentPassword)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := validator.Apply(validator.PasswordRules("newPassword", newPassword, s.passwordPolicy)...); err != nil {
		return nil, err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.storage.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return nil, err
	}

	return s.issueSession(user)
}

// lockoutHorizon is effectively "until unlocked" for administrative locks.
const lockoutHorizon = 100 * 365 * 24 * time.Hour

// LockAccount locks the account; locked accounts cannot log in until unlocked.
func (s *Service) LockAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
		return err
	}
	until := time.Now().Add(lockoutHorizon)
	return s.storage.SetLockout(ctx, userID, &until)
}

// UnlockAccount clears the lockout.
func (s *Service) UnlockAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.storage.SetLockout(ctx, userID, nil)
}

// EnableTwoFactor turns on the two-factor flag for the account.
func (s *Service) EnableTwoFactor(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.storage.SetTwoFactor(ctx, userID, true)
}

// DisableTwoFactor turns off the two-factor flag for the account.
func (s *Service) DisableTwoFactor(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.storage.SetTwoFactor(ctx, userID, false)
}

// RequestEmailChange re-verifies the password, checks the new address is
// free, and sends a change link to the NEW address. The stored email stays
// unchanged until ConfirmEmailChange.
func (s *Service) RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail, currentPassword string) (*EmailChangeRequest, error) {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	newEmail = sanitizer.NormalizeEmail(newEmail)
	if err := validator.Apply(
		validator.Required("newEmail", newEmail),
		validator.ValidEmail("newEmail", newEmail),
	); err != nil {
		return nil, err
	}
	if newEmail == user.Email {
		return nil, ErrSameEmail
	}

	hash, err := s.storage.GetPasswordHash(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(currentPassword)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.storage.GetUserByEmail(ctx, newEmail); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	expiresAt := time.Now().Add(s.emailChangeTTL)
	changeToken, err := token.Generate(token.Claims{
		ID:       user.ID.String(),
		Email:    user.Email,
		NewEmail: newEmail,
		Subject:  SubjectEmailChange,
		ExpireAt: expiresAt.Unix(),
	}, s.tokenSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate email change token: %w", err)
	}

	if err := s.sender.SendEmail(ctx, s.emailChangeEmail(user, newEmail, changeToken)); err != nil {
		s.logger.ErrorContext(ctx, "failed to send email change message",
			logger.UserID(user.ID), logger.Error(err))
	}

	return &EmailChangeRequest{
		CurrentEmail: user.Email,
		NewEmail:     newEmail,
		Token:        changeToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// ConfirmEmailChange validates the change token and applies the new address.
// A mismatched token or address leaves the record untouched.
func (s *Service) ConfirmEmailChange(ctx context.Context, userID uuid.UUID, newEmail, changeToken string) error {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	newEmail = sanitizer.NormalizeEmail(newEmail)

	claims, err := token.ParseClaims(changeToken, s.tokenSecret, SubjectEmailChange)
	if err != nil {
		return ErrInvalidToken
	}
	if claims.ID != user.ID.String() || claims.Email != user.Email || claims.NewEmail != newEmail {
		return ErrInvalidToken
	}

	return s.storage.UpdateEmail(ctx, user.ID, newEmail)
}

// UpdateProfile updates profile fields; empty params leave fields unchanged.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (*User, error) {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username := sanitizer.Trim(params.Username); username != "" {
		if err := validator.Apply(
			validator.MinLen("username", username, 3),
			validator.MaxLen("username", username, 64),
		); err != nil {
			return nil, err
		}
		user.Username = username
	}
	if params.FirstName != "" {
		user.FirstName = sanitizer.Trim(params.FirstName)
	}
	if params.LastName != "" {
		user.LastName = sanitizer.Trim(params.LastName)
	}
	if params.PhoneNumber != "" {
		phone := sanitizer.Trim(params.PhoneNumber)
		if err := validator.Apply(validator.ValidPhone("phoneNumber", phone)); err != nil {
			return nil, err
		}
		user.PhoneNumber = phone
	}
	if params.ProfilePicturePath != "" {
		user.ProfilePicturePath = sanitizer.Trim(params.ProfilePicturePath)
	}
	user.UpdatedAt = time.Now()

	if err := s.storage.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account. Fails with ErrUserHasDependents while
// tasks, comments, managed projects, or memberships still reference it.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.storage.DeleteUser(ctx, userID)
}

// GetUser fetches one account.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	return s.storage.GetUserByID(ctx, userID)
}

// ListUsers fetches all accounts.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.storage.ListUsers(ctx)
}

// UserRoles fetches the account's role names.
func (s *Service) UserRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.storage.UserRoles(ctx, userID)
}

func (s *Service) issueSession(user *User) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.sessionTTL)

	sessionToken, err := s.jwtService.Generate(jwt.SessionClaims{
		Subject:   user.ID.String(),
		Email:     user.Email,
		Name:      user.Username,
		Issuer:    s.issuer,
		Audience:  s.audience,
		ExpiresAt: expiresAt.Unix(),
		IssuedAt:  now.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &Session{Token: sessionToken, ExpiresAt: expiresAt, User: user}, nil
}

func (s *Service) issueConfirmationToken(user *User) (string, error) {
	return token.Generate(token.Claims{
		ID:       user.ID.String(),
		Email:    user.Email,
		Subject:  SubjectEmailConfirm,
		ExpireAt: time.Now().Add(s.confirmTTL).Unix(),
	}, s.tokenSecret)
}

func randomSecretKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
