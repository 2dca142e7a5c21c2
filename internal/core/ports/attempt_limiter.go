package ports

import "context"

// AttemptLimiter tracks failed logins per key (the submitted email).
type AttemptLimiter interface {
	// Locked reports whether key is currently locked out.
	Locked(ctx context.Context, key string) (bool, error)
	// RecordFailure counts a failed attempt and returns the failures so far
	// in the current window.
	RecordFailure(ctx context.Context, key string) (int, error)
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, key string) error
}
