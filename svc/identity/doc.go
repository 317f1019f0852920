// Package identity implements account management: registration with email
// confirmation, password authentication issuing session JWTs, password
// changes, administrative lockout, two-factor flags, and verified email
// changes.
//
// The service depends on a Storage implementation for persistence and an
// email.EmailSender for outgoing messages. Business-rule failures are
// reported through sentinel errors; credential failures intentionally share
// ErrInvalidCredentials so responses cannot be used to enumerate accounts.
package identity
