package jwt_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub/pkg/jwt"
)

const signingKey = "0123456789abcdef0123456789abcdef"

func newService(t *testing.T) *jwt.Service {
	t.Helper()

	svc, err := jwt.NewFromString(signingKey)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New(nil)
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	_, err = jwt.NewFromString("")
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)
}

func TestGenerateParse(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	claims := jwt.SessionClaims{
		Subject:   "user-1",
		Email:     "user@example.com",
		Name:      "user1",
		Issuer:    "taskhub",
		Audience:  "taskhub-api",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
		IssuedAt:  time.Now().Unix(),
	}

	tok, err := svc.Generate(claims)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	var parsed jwt.SessionClaims
	require.NoError(t, svc.Parse(tok, &parsed))
	assert.Equal(t, claims, parsed)

	t.Run("expired token rejected", func(t *testing.T) {
		t.Parallel()

		expired := claims
		expired.ExpiresAt = time.Now().Add(-time.Minute).Unix()
		tok, err := svc.Generate(expired)
		require.NoError(t, err)

		var out jwt.SessionClaims
		assert.ErrorIs(t, svc.Parse(tok, &out), jwt.ErrExpiredToken)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		t.Parallel()

		var out jwt.SessionClaims
		assert.ErrorIs(t, svc.Parse(tok+"x", &out), jwt.ErrInvalidSignature)
	})

	t.Run("different keys produce distinct signatures", func(t *testing.T) {
		t.Parallel()

		other, err := jwt.NewFromString("another-signing-key-of-decent-len")
		require.NoError(t, err)

		otherTok, err := other.Generate(claims)
		require.NoError(t, err)
		assert.NotEqual(t, tok, otherTok)

		var out jwt.SessionClaims
		assert.ErrorIs(t, svc.Parse(otherTok, &out), jwt.ErrInvalidSignature)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.GetClaims(r.Context())
		require.True(t, ok)
		assert.Equal(t, "user-1", claims.Subject)
		w.WriteHeader(http.StatusNoContent)
	})

	handler := jwt.Middleware(svc)(next)

	t.Run("valid bearer token", func(t *testing.T) {
		t.Parallel()

		tok, err := svc.Generate(jwt.SessionClaims{
			Subject:   "user-1",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
