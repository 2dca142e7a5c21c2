package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCredential struct {
	password string
	cred     domain.Credential
}

type stubCredentialStore struct {
	records []stubCredential
	calls   int
	err     error
	// block, when set, holds Lookup until ctx is done or the channel closes.
	block chan struct{}
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{records: []stubCredential{
		{password: "admin123", cred: domain.Credential{Email: "admin@homeaid.com", Password: "h-admin", Role: domain.RoleAdmin, Name: "Admin User"}},
		{password: "manager123", cred: domain.Credential{Email: "manager@homeaid.com", Password: "h-manager", Role: domain.RoleManager, Name: "Manager User"}},
		{password: "provider123", cred: domain.Credential{Email: "provider@homeaid.com", Password: "h-provider", Role: domain.RoleProvider, Name: "Provider User"}},
	}}
}

func (s *stubCredentialStore) Lookup(ctx context.Context, email, password string) (*domain.Credential, error) {
	s.calls++
	if s.block != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.block:
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.records {
		if r.cred.Email == email && r.password == password {
			c := r.cred
			return &c, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

type stubLimiter struct {
	failures map[string]int
	max      int
	resets   int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), max: max}
}

func (l *stubLimiter) Locked(_ context.Context, key string) (bool, error) {
	return l.failures[key] >= l.max, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, key string) (int, error) {
	l.failures[key]++
	return l.failures[key], nil
}

func (l *stubLimiter) Reset(_ context.Context, key string) error {
	l.resets++
	delete(l.failures, key)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.AuditEvent
}

func (p *recordingPublisher) Publish(e ports.AuditEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []ports.AuditEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.AuditEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Authenticate_KnownAccounts(t *testing.T) {
	svc := NewAuthService(newStubCredentialStore())

	cases := []struct {
		email, password string
		role            domain.Role
		name            string
	}{
		{"admin@homeaid.com", "admin123", domain.RoleAdmin, "Admin User"},
		{"manager@homeaid.com", "manager123", domain.RoleManager, "Manager User"},
		{"provider@homeaid.com", "provider123", domain.RoleProvider, "Provider User"},
	}
	for _, tc := range cases {
		cred, err := svc.Authenticate(context.Background(), tc.email, tc.password)
		if err != nil {
			t.Fatalf("Authenticate(%s) returned error: %v", tc.email, err)
		}
		if cred.Role != tc.role || cred.Name != tc.name || cred.Email != tc.email {
			t.Fatalf("Authenticate(%s) = %+v", tc.email, cred)
		}
	}
}

func TestAuthService_Authenticate_MissingFieldSkipsStore(t *testing.T) {
	store := newStubCredentialStore()
	svc := NewAuthService(store)

	for _, in := range [][2]string{{"", "admin123"}, {"admin@homeaid.com", ""}, {"", ""}} {
		_, err := svc.Authenticate(context.Background(), in[0], in[1])
		if !errors.Is(err, domain.ErrMissingField) {
			t.Fatalf("Authenticate(%q, %q) err = %v, want ErrMissingField", in[0], in[1], err)
		}
	}
	if store.calls != 0 {
		t.Fatalf("store consulted %d times for empty input", store.calls)
	}
}

func TestAuthService_Authenticate_InvalidCredentials(t *testing.T) {
	svc := NewAuthService(newStubCredentialStore())

	cases := [][2]string{
		{"admin@homeaid.com", "wrong"},
		{"nobody@homeaid.com", "admin123"},
		{"Admin@homeaid.com", "admin123"},
		{"admin@homeaid.com", "manager123"},
	}
	for _, in := range cases {
		_, err := svc.Authenticate(context.Background(), in[0], in[1])
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q, %q) err = %v, want ErrInvalidCredentials", in[0], in[1], err)
		}
	}
}

func TestAuthService_Authenticate_StoreErrorIsWrapped(t *testing.T) {
	store := newStubCredentialStore()
	store.err = errors.New("connection refused")
	svc := NewAuthService(store)

	_, err := svc.Authenticate(context.Background(), "admin@homeaid.com", "admin123")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if !errors.Is(err, store.err) {
		t.Fatalf("expected error to wrap %v, got %v", store.err, err)
	}
}

func TestAuthService_Authenticate_LocksOutAfterFailures(t *testing.T) {
	limiter := newStubLimiter(3)
	pub := &recordingPublisher{}
	svc := NewAuthService(newStubCredentialStore(), WithAttemptLimiter(limiter), WithAuditPublisher(pub))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Authenticate(ctx, "admin@homeaid.com", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: err = %v", i+1, err)
		}
	}

	_, err := svc.Authenticate(ctx, "admin@homeaid.com", "admin123")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts once locked, got %v", err)
	}

	got := pub.types()
	want := []ports.AuditEventType{ports.AuditLoginFailed, ports.AuditLoginFailed, ports.AuditLoginFailed, ports.AuditLoginLocked}
	if len(got) != len(want) {
		t.Fatalf("audit events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("audit events = %v, want %v", got, want)
		}
	}
}

func TestAuthService_Authenticate_SuccessResetsFailures(t *testing.T) {
	limiter := newStubLimiter(5)
	pub := &recordingPublisher{}
	svc := NewAuthService(newStubCredentialStore(), WithAttemptLimiter(limiter), WithAuditPublisher(pub))
	ctx := context.Background()

	_, _ = svc.Authenticate(ctx, "provider@homeaid.com", "bad")
	if limiter.failures["provider@homeaid.com"] != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.failures["provider@homeaid.com"])
	}

	if _, err := svc.Authenticate(ctx, "provider@homeaid.com", "provider123"); err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if _, ok := limiter.failures["provider@homeaid.com"]; ok || limiter.resets != 1 {
		t.Fatalf("expected failures to be reset, got %v (resets=%d)", limiter.failures, limiter.resets)
	}

	events := pub.types()
	if events[len(events)-1] != ports.AuditLoginSucceeded {
		t.Fatalf("last audit event = %s, want %s", events[len(events)-1], ports.AuditLoginSucceeded)
	}
}

func TestAuthService_Authenticate_LatencyHonoursCancel(t *testing.T) {
	store := newStubCredentialStore()
	svc := NewAuthService(store, WithLatency(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Authenticate(ctx, "admin@homeaid.com", "admin123")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store consulted before latency elapsed")
	}
}
