package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub/pkg/validator"
)

func TestPasswordRules(t *testing.T) {
	t.Parallel()

	policy := validator.DefaultPasswordPolicy()

	t.Run("valid password passes all rules", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.PasswordRules("password", "Str0ng!pass", policy)...)
		assert.NoError(t, err)
	})

	t.Run("each violation is reported separately", func(t *testing.T) {
		t.Parallel()

		// too short, no digit, no uppercase, no special char
		err := validator.Apply(validator.PasswordRules("password", "abc", policy)...)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.Len(t, errs, 4)
		for _, e := range errs {
			assert.Equal(t, "password", e.Field)
		}
	})

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"missing digit", "Abcdefg!", "password must contain at least one digit"},
		{"missing uppercase", "abcdefg1!", "password must contain at least one uppercase letter"},
		{"missing special char", "Abcdefg1", "password must contain at least one special character"},
		{"too short", "Ab1!", "must be at least 8 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validator.Apply(validator.PasswordRules("password", tt.password, policy)...)
			require.Error(t, err)

			errs := validator.ExtractValidationErrors(err)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs.Get("password"), tt.wantMsg)
		})
	}
}

func TestPasswordMaxBytes(t *testing.T) {
	t.Parallel()

	policy := validator.DefaultPasswordPolicy()

	t.Run("password over 72 bytes fails validation", func(t *testing.T) {
		t.Parallel()

		long := "Aa1!" + strings.Repeat("x", 76)
		err := validator.Apply(validator.PasswordRules("password", long, policy)...)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs.Get("password"), "password must be at most 72 bytes long")
	})

	t.Run("multibyte password over 72 bytes fails even when short in runes", func(t *testing.T) {
		t.Parallel()

		// 44 runes, well under the rune cap, but 84 bytes
		long := "Aa1!" + strings.Repeat("é", 40)
		err := validator.Apply(validator.PasswordRules("password", long, policy)...)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs.Get("password"), "password must be at most 72 bytes long")
	})

	t.Run("72-byte password is accepted", func(t *testing.T) {
		t.Parallel()

		exact := "Aa1!" + strings.Repeat("x", 68)
		require.Len(t, exact, 72)
		assert.NoError(t, validator.Apply(validator.PasswordRules("password", exact, policy)...))
	})
}

func TestNotCommonPassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, validator.Apply(validator.NotCommonPassword("password", "password123")))
	assert.Error(t, validator.Apply(validator.NotCommonPassword("password", "QWERTY")))
	assert.NoError(t, validator.Apply(validator.NotCommonPassword("password", "xK9#mQv2pL")))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"user@example.com", "first.last@sub.domain.org"}
	for _, email := range valid {
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}

	invalid := []string{"", "not-an-email", "user@", "@example.com", "user@nodot", "user@.com"}
	for _, email := range invalid {
		assert.Error(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}
}
