// Package redis provides Redis connection management with environment-based
// configuration, retry logic, and a healthcheck helper.
package redis
