package memory

import (
	"context"
	"sync"
	"time"
)

// RevocationList keeps revoked tokens until their ttl elapses.
type RevocationList struct {
	now func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{now: time.Now, revoked: make(map[string]time.Time)}
}

func (r *RevocationList) Revoke(_ context.Context, token string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for t, exp := range r.revoked {
		if !now.Before(exp) {
			delete(r.revoked, t)
		}
	}
	r.revoked[token] = now.Add(ttl)
	return nil
}

func (r *RevocationList) IsRevoked(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.revoked[token]
	if !ok {
		return false, nil
	}
	if !r.now().Before(exp) {
		delete(r.revoked, token)
		return false, nil
	}
	return true, nil
}
