package ratelimit

import "errors"

var (
	// ErrStoreRequired is returned when a limiter is created without a store.
	ErrStoreRequired = errors.New("ratelimit: store is required")

	// ErrInvalidLimit is returned when the limit is not positive.
	ErrInvalidLimit = errors.New("ratelimit: limit must be positive")

	// ErrInvalidInterval is returned when the window duration is not positive.
	ErrInvalidInterval = errors.New("ratelimit: window must be positive")

	// ErrKeyRequired is returned when an empty key is passed to the limiter.
	ErrKeyRequired = errors.New("ratelimit: key is required")

	// ErrStoreFailure is returned when the backing store reports an error.
	ErrStoreFailure = errors.New("ratelimit: store operation failed")
)
