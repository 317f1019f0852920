// Package token provides compact, signed tokens for embedding JSON payloads.
//
// Tokens use HMAC-SHA256 with truncated 8-byte signatures for balance between
// security and compactness. Suitable for email confirmation and email-change
// links. Not recommended for high-value or long-lived credentials.
//
// Token format: base64url(payload).base64url(signature)
//
// The Claims type covers the common case of account tokens scoped to one
// purpose with an expiry; ParseClaims enforces both:
//
//	tok, _ := token.Generate(token.Claims{
//	    ID:       user.ID.String(),
//	    Email:    user.Email,
//	    Subject:  "email_confirm",
//	    ExpireAt: time.Now().Add(24 * time.Hour).Unix(),
//	}, secret)
//
//	claims, err := token.ParseClaims(tok, secret, "email_confirm")
package token
