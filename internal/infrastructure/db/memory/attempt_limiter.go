package memory

import (
	"context"
	"sync"
	"time"
)

type attemptWindow struct {
	count   int
	expires time.Time
}

// AttemptLimiter counts failed logins per key within a fixed window that
// starts at the first failure.
type AttemptLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	failures map[string]attemptWindow
}

func NewAttemptLimiter(max int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		max:      max,
		window:   window,
		now:      time.Now,
		failures: make(map[string]attemptWindow),
	}
}

func (l *AttemptLimiter) Locked(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.current(key)
	return ok && w.count >= l.max, nil
}

func (l *AttemptLimiter) RecordFailure(_ context.Context, key string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.current(key)
	if !ok {
		w = attemptWindow{expires: l.now().Add(l.window)}
	}
	w.count++
	l.failures[key] = w
	return w.count, nil
}

func (l *AttemptLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, key)
	return nil
}

// current returns the live window for key, dropping it when expired.
// Caller holds l.mu.
func (l *AttemptLimiter) current(key string) (attemptWindow, bool) {
	w, ok := l.failures[key]
	if !ok {
		return w, false
	}
	if !l.now().Before(w.expires) {
		delete(l.failures, key)
		return attemptWindow{}, false
	}
	return w, true
}
