// Package jwt implements HS256 JSON Web Tokens for stateless session
// authentication.
//
// Session tokens are self-contained: validation checks the signature and
// expiry locally with no revocation store, so an issued token stays valid
// until it expires. SessionClaims carries the identity claims embedded at
// login ({sub, email, name, iss, aud, exp, iat}).
//
// Middleware validates Bearer tokens on protected routes and injects the
// parsed claims into the request context:
//
//	svc, _ := jwt.NewFromString(cfg.SigningKey)
//	r.Use(jwt.Middleware(svc))
//
//	claims, ok := jwt.GetClaims(r.Context())
package jwt
