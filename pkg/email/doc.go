// Package email sends transactional messages (confirmation links, email
// change notifications) through a pluggable EmailSender.
//
// Two implementations are provided: a Postmark client for production and a
// DevSender that writes messages to disk for local development. Callers
// depend only on the EmailSender interface.
package email
