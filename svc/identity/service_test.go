package identity_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub/taskhub/pkg/email"
	"github.com/taskhub/taskhub/pkg/jwt"
	"github.com/taskhub/taskhub/pkg/validator"
	"github.com/taskhub/taskhub/svc/identity"
)

func testConfig() identity.Config {
	return identity.Config{
		SessionSigningKey: "test-jwt-signing-key-0123456789",
		TokenSecret:       "test-token-secret",
		SessionTTL:        time.Hour,
		ConfirmTTL:        24 * time.Hour,
		EmailChangeTTL:    time.Hour,
		Issuer:            "taskhub",
		Audience:          "taskhub",
		PublicBaseURL:     "http://localhost:8080",
	}
}

func newService(t *testing.T, storage *MockStorage, sender *MockEmailSender) *identity.Service {
	t.Helper()
	svc, err := identity.New(storage, sender, testConfig(),
		identity.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)
	return svc
}

func hashPassword(t *testing.T, password string) []byte {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func confirmedUser() *identity.User {
	return &identity.User{
		ID:             uuid.New(),
		Username:       "jdoe",
		Email:          "jdoe@example.com",
		EmailConfirmed: true,
		LockoutEnabled: true,
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates unconfirmed user with default role and sends email", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		storage.On("GetUserByEmail", ctx, "new@example.com").Return(nil, identity.ErrUserNotFound)
		storage.On("CreateUser", ctx, mock.AnythingOfType("*identity.User"), mock.Anything).Return(nil)
		storage.On("AssignRole", ctx, mock.AnythingOfType("uuid.UUID"), identity.RoleUser).Return(nil)

		var sent email.SendEmailParams
		sender.On("SendEmail", ctx, mock.AnythingOfType("email.SendEmailParams")).
			Run(func(args mock.Arguments) { sent = args.Get(1).(email.SendEmailParams) }).
			Return(nil)

		user, err := svc.Register(ctx, identity.RegisterParams{
			Username: "newuser",
			Email:    "New@Example.com",
			Password: "Sup3r$ecret",
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.False(t, user.EmailConfirmed)
		assert.NotEmpty(t, user.SecretKey)

		assert.Equal(t, "new@example.com", sent.SendTo)
		assert.Contains(t, sent.BodyHTML, "ConfirmEmail?userId="+user.ID.String())

		storage.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("validation failure creates no record", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		_, err := svc.Register(ctx, identity.RegisterParams{
			Username: "u",
			Email:    "not-an-email",
			Password: "weak",
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotEmpty(t, verrs)
		assert.True(t, verrs.Has("email"))
		assert.True(t, verrs.Has("password"))

		storage.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("each password policy violation reported separately", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		_, err := svc.Register(ctx, identity.RegisterParams{
			Username: "newuser",
			Email:    "new@example.com",
			Password: "abc",
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		messages := verrs.Get("password")
		assert.GreaterOrEqual(t, len(messages), 4)
	})

	t.Run("password over the bcrypt byte limit is a validation error", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		_, err := svc.Register(ctx, identity.RegisterParams{
			Username: "newuser",
			Email:    "new@example.com",
			Password: "Aa1!" + strings.Repeat("x", 76),
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotEmpty(t, verrs)
		assert.True(t, verrs.Has("password"))

		storage.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		storage.On("GetUserByEmail", ctx, "taken@example.com").Return(confirmedUser(), nil)

		_, err := svc.Register(ctx, identity.RegisterParams{
			Username: "newuser",
			Email:    "taken@example.com",
			Password: "Sup3r$ecret",
		})
		assert.ErrorIs(t, err, identity.ErrEmailTaken)
	})

	t.Run("email send failure does not fail registration", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		storage.On("GetUserByEmail", ctx, "new@example.com").Return(nil, identity.ErrUserNotFound)
		storage.On("CreateUser", ctx, mock.Anything, mock.Anything).Return(nil)
		storage.On("AssignRole", ctx, mock.Anything, identity.RoleUser).Return(nil)
		sender.On("SendEmail", ctx, mock.Anything).Return(assert.AnError)

		user, err := svc.Register(ctx, identity.RegisterParams{
			Username: "newuser",
			Email:    "new@example.com",
			Password: "Sup3r$ecret",
		})
		require.NoError(t, err)
		assert.NotNil(t, user)
	})
}

func TestConfirmEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	registerAndCapture := func(t *testing.T, storage *MockStorage, sender *MockEmailSender, svc *identity.Service) (*identity.User, string) {
		t.Helper()

		storage.On("GetUserByEmail", ctx, "new@example.com").Return(nil, identity.ErrUserNotFound)
		storage.On("CreateUser", ctx, mock.Anything, mock.Anything).Return(nil)
		storage.On("AssignRole", ctx, mock.Anything, identity.RoleUser).Return(nil)

		var sent email.SendEmailParams
		sender.On("SendEmail", ctx, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(email.SendEmailParams) }).
			Return(nil)

		user, err := svc.Register(ctx, identity.RegisterParams{
			Username: "newuser",
			Email:    "new@example.com",
			Password: "Sup3r$ecret",
		})
		require.NoError(t, err)

		// Pull the token out of the confirmation link.
		const marker = "&token="
		idx := strings.Index(sent.BodyHTML, marker)
		require.Positive(t, idx)
		rest := sent.BodyHTML[idx+len(marker):]
		end := strings.IndexAny(rest, `"`)
		require.Positive(t, end)
		tok, err := url.QueryUnescape(rest[:end])
		require.NoError(t, err)

		return user, tok
	}

	t.Run("valid token confirms the address", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user, tok := registerAndCapture(t, storage, sender, svc)

		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("SetEmailConfirmed", ctx, user.ID).Return(nil)

		require.NoError(t, svc.ConfirmEmail(ctx, user.ID, tok))
		storage.AssertCalled(t, "SetEmailConfirmed", ctx, user.ID)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user, tok := registerAndCapture(t, storage, sender, svc)

		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)

		err := svc.ConfirmEmail(ctx, user.ID, tok+"x")
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
		storage.AssertNotCalled(t, "SetEmailConfirmed", mock.Anything, mock.Anything)
	})

	t.Run("token for a different user rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		_, tok := registerAndCapture(t, storage, sender, svc)

		other := confirmedUser()
		other.EmailConfirmed = false
		storage.On("GetUserByID", ctx, other.ID).Return(other, nil)

		err := svc.ConfirmEmail(ctx, other.ID, tok)
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})

	t.Run("already confirmed with valid token is a no-op", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user, tok := registerAndCapture(t, storage, sender, svc)
		user.EmailConfirmed = true
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)

		require.NoError(t, svc.ConfirmEmail(ctx, user.ID, tok))
		storage.AssertNotCalled(t, "SetEmailConfirmed", mock.Anything, mock.Anything)
	})

	t.Run("already confirmed still rejects a bad token", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)

		err := svc.ConfirmEmail(ctx, user.ID, "anything")
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success returns session token with claims", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByEmail", ctx, user.Email).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Sup3r$ecret"), nil)

		session, err := svc.Login(ctx, user.Email, "Sup3r$ecret")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.NotEmpty(t, session.Token)

		jwtSvc, err := jwt.NewFromString(testConfig().SessionSigningKey)
		require.NoError(t, err)
		var claims jwt.SessionClaims
		require.NoError(t, jwtSvc.Parse(session.Token, &claims))
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.Username, claims.Name)
		assert.InDelta(t, time.Now().Add(time.Hour).Unix(), claims.ExpiresAt, 5)
	})

	t.Run("unknown email and wrong password share one error", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		storage.On("GetUserByEmail", ctx, "ghost@example.com").Return(nil, identity.ErrUserNotFound)

		user := confirmedUser()
		storage.On("GetUserByEmail", ctx, user.Email).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Sup3r$ecret"), nil)

		_, errUnknown := svc.Login(ctx, "ghost@example.com", "whatever")
		_, errWrongPass := svc.Login(ctx, user.Email, "wrong-password")

		assert.ErrorIs(t, errUnknown, identity.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, identity.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("unconfirmed email cannot log in", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		user.EmailConfirmed = false
		storage.On("GetUserByEmail", ctx, user.Email).Return(user, nil)

		_, err := svc.Login(ctx, user.Email, "Sup3r$ecret")
		assert.ErrorIs(t, err, identity.ErrEmailNotConfirmed)
		storage.AssertNotCalled(t, "GetPasswordHash", mock.Anything, mock.Anything)
	})

	t.Run("locked account cannot log in", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		until := time.Now().Add(time.Hour)
		user.LockoutUntil = &until
		storage.On("GetUserByEmail", ctx, user.Email).Return(user, nil)

		_, err := svc.Login(ctx, user.Email, "Sup3r$ecret")
		assert.ErrorIs(t, err, identity.ErrAccountLocked)
	})

	t.Run("expired lockout allows login again", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		until := time.Now().Add(-time.Minute)
		user.LockoutUntil = &until
		storage.On("GetUserByEmail", ctx, user.Email).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Sup3r$ecret"), nil)

		_, err := svc.Login(ctx, user.Email, "Sup3r$ecret")
		assert.NoError(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success stores new hash and returns fresh session", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Old$ecret1"), nil)

		var storedHash []byte
		storage.On("UpdatePasswordHash", ctx, user.ID, mock.Anything).
			Run(func(args mock.Arguments) { storedHash = args.Get(2).([]byte) }).
			Return(nil)

		session, err := svc.ChangePassword(ctx, user.ID, "Old$ecret1", "New$ecret2")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.NoError(t, bcrypt.CompareHashAndPassword(storedHash, []byte("New$ecret2")))
	})

	t.Run("wrong current password rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Old$ecret1"), nil)

		_, err := svc.ChangePassword(ctx, user.ID, "not-the-password", "New$ecret2")
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
		storage.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weak new password rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Old$ecret1"), nil)

		_, err := svc.ChangePassword(ctx, user.ID, "Old$ecret1", "weak")
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("new password over the bcrypt byte limit rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Old$ecret1"), nil)

		_, err := svc.ChangePassword(ctx, user.ID, "Old$ecret1", "Aa1!"+strings.Repeat("x", 76))
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		storage.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEmailChange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("request sends link to the new address and keeps stored email", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Sup3r$ecret"), nil)
		storage.On("GetUserByEmail", ctx, "next@example.com").Return(nil, identity.ErrUserNotFound)

		var sent email.SendEmailParams
		sender.On("SendEmail", ctx, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(email.SendEmailParams) }).
			Return(nil)

		req, err := svc.RequestEmailChange(ctx, user.ID, "Next@Example.com", "Sup3r$ecret")
		require.NoError(t, err)
		assert.Equal(t, "next@example.com", req.NewEmail)
		assert.Equal(t, user.Email, req.CurrentEmail)
		assert.Equal(t, "next@example.com", sent.SendTo)

		storage.AssertNotCalled(t, "UpdateEmail", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Sup3r$ecret"), nil)

		_, err := svc.RequestEmailChange(ctx, user.ID, "next@example.com", "wrong")
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("taken new address rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Sup3r$ecret"), nil)
		storage.On("GetUserByEmail", ctx, "next@example.com").Return(confirmedUser(), nil)

		_, err := svc.RequestEmailChange(ctx, user.ID, "next@example.com", "Sup3r$ecret")
		assert.ErrorIs(t, err, identity.ErrEmailTaken)
	})

	t.Run("same address rejected", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)

		_, err := svc.RequestEmailChange(ctx, user.ID, user.Email, "Sup3r$ecret")
		assert.ErrorIs(t, err, identity.ErrSameEmail)
	})

	t.Run("confirm applies the new address", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Sup3r$ecret"), nil)
		storage.On("GetUserByEmail", ctx, "next@example.com").Return(nil, identity.ErrUserNotFound)
		sender.On("SendEmail", ctx, mock.Anything).Return(nil)

		req, err := svc.RequestEmailChange(ctx, user.ID, "next@example.com", "Sup3r$ecret")
		require.NoError(t, err)

		storage.On("UpdateEmail", ctx, user.ID, "next@example.com").Return(nil)
		require.NoError(t, svc.ConfirmEmailChange(ctx, user.ID, "next@example.com", req.Token))
		storage.AssertCalled(t, "UpdateEmail", ctx, user.ID, "next@example.com")
	})

	t.Run("mismatched new address leaves record untouched", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		sender := &MockEmailSender{}
		svc := newService(t, storage, sender)

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("GetPasswordHash", ctx, user.ID).Return(hashPassword(t, "Sup3r$ecret"), nil)
		storage.On("GetUserByEmail", ctx, "next@example.com").Return(nil, identity.ErrUserNotFound)
		sender.On("SendEmail", ctx, mock.Anything).Return(nil)

		req, err := svc.RequestEmailChange(ctx, user.ID, "next@example.com", "Sup3r$ecret")
		require.NoError(t, err)

		err = svc.ConfirmEmailChange(ctx, user.ID, "other@example.com", req.Token)
		assert.ErrorIs(t, err, identity.ErrInvalidToken)
		storage.AssertNotCalled(t, "UpdateEmail", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLockoutAndTwoFactor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lock sets a future lockout", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := newService(t, storage, &MockEmailSender{})

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)

		var until *time.Time
		storage.On("SetLockout", ctx, user.ID, mock.Anything).
			Run(func(args mock.Arguments) { until = args.Get(2).(*time.Time) }).
			Return(nil)

		require.NoError(t, svc.LockAccount(ctx, user.ID))
		require.NotNil(t, until)
		assert.True(t, until.After(time.Now()))
	})

	t.Run("unlock clears the lockout", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := newService(t, storage, &MockEmailSender{})

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("SetLockout", ctx, user.ID, (*time.Time)(nil)).Return(nil)

		require.NoError(t, svc.UnlockAccount(ctx, user.ID))
		storage.AssertExpectations(t)
	})

	t.Run("two-factor toggles", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := newService(t, storage, &MockEmailSender{})

		user := confirmedUser()
		storage.On("GetUserByID", ctx, user.ID).Return(user, nil)
		storage.On("SetTwoFactor", ctx, user.ID, true).Return(nil).Once()
		storage.On("SetTwoFactor", ctx, user.ID, false).Return(nil).Once()

		require.NoError(t, svc.EnableTwoFactor(ctx, user.ID))
		require.NoError(t, svc.DisableTwoFactor(ctx, user.ID))
		storage.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := newService(t, storage, &MockEmailSender{})

		id := uuid.New()
		storage.On("GetUserByID", ctx, id).Return(nil, identity.ErrUserNotFound)

		assert.ErrorIs(t, svc.LockAccount(ctx, id), identity.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("dependents block deletion", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := newService(t, storage, &MockEmailSender{})

		id := uuid.New()
		storage.On("DeleteUser", ctx, id).Return(identity.ErrUserHasDependents)

		assert.ErrorIs(t, svc.DeleteUser(ctx, id), identity.ErrUserHasDependents)
	})
}
