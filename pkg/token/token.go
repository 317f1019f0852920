package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Generate creates a token by JSON encoding the payload and appending an
// 8-byte truncated HMAC-SHA256 signature.
//
// Token format: base64url(payload).base64url(signature)
func Generate[T any](payload T, secret string) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	payloadEnc := base64.RawURLEncoding.EncodeToString(data)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	sig := h.Sum(nil)[:8]
	sigEnc := base64.RawURLEncoding.EncodeToString(sig)

	return payloadEnc + "." + sigEnc, nil
}

// Parse verifies the token's signature and decodes the JSON payload into the
// generic type. The signature is checked in constant time before the payload
// is trusted.
func Parse[T any](token string, secret string) (T, error) {
	var payload T
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return payload, ErrInvalidToken
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return payload, ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return payload, ErrInvalidToken
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	expectedSig := h.Sum(nil)[:8]

	if subtle.ConstantTimeCompare(sig, expectedSig) != 1 {
		return payload, ErrSignatureInvalid
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, ErrInvalidToken
	}

	return payload, nil
}

// Claims is the payload shape used by purpose-scoped account tokens.
// Subject binds a token to a single purpose so a token issued for one flow
// cannot be replayed in another.
type Claims struct {
	ID       string `json:"id"`            // account ID the token was issued for
	Email    string `json:"email"`         // address the token proves control of
	NewEmail string `json:"new,omitempty"` // pending address for email-change tokens
	Subject  string `json:"sub"`           // token purpose
	ExpireAt int64  `json:"exp"`           // unix expiry timestamp
}

// Expired reports whether the claims' expiry has passed.
func (c Claims) Expired() bool {
	return time.Now().Unix() > c.ExpireAt
}

// ParseClaims parses a Claims token and enforces its purpose and expiry.
func ParseClaims(token, secret, subject string) (Claims, error) {
	claims, err := Parse[Claims](token, secret)
	if err != nil {
		return Claims{}, err
	}
	if claims.Subject != subject {
		return Claims{}, ErrInvalidToken
	}
	if claims.Expired() {
		return Claims{}, ErrTokenExpired
	}
	return claims, nil
}
