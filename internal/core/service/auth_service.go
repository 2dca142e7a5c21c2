package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

// AuthService implements ports.Authenticator on top of a CredentialStore.
type AuthService struct {
	store   ports.CredentialStore
	limiter ports.AttemptLimiter
	audit   ports.AuditPublisher
	latency time.Duration
	log     zerolog.Logger
	now     func() time.Time
}

type AuthOption func(*AuthService)

// WithAttemptLimiter enables lockout after repeated failures.
func WithAttemptLimiter(l ports.AttemptLimiter) AuthOption {
	return func(s *AuthService) { s.limiter = l }
}

func WithAuditPublisher(p ports.AuditPublisher) AuthOption {
	return func(s *AuthService) { s.audit = p }
}

// WithLatency delays every store lookup. The wait honours ctx cancellation.
func WithLatency(d time.Duration) AuthOption {
	return func(s *AuthService) { s.latency = d }
}

func WithAuthLogger(log zerolog.Logger) AuthOption {
	return func(s *AuthService) { s.log = log }
}

func NewAuthService(store ports.CredentialStore, opts ...AuthOption) *AuthService {
	s := &AuthService{
		store: store,
		log:   zerolog.Nop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.Credential, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	if s.limiter != nil {
		locked, err := s.limiter.Locked(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("lockout check failed, continuing")
		} else if locked {
			s.log.Warn().Str("email", email).Msg("login rejected: account locked")
			s.publish(ports.AuditLoginLocked, email, "")
			return nil, domain.ErrTooManyAttempts
		}
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	cred, err := s.store.Lookup(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to reset login failures")
		}
	}

	s.log.Info().Str("email", cred.Email).Str("role", string(cred.Role)).Msg("login succeeded")
	s.publish(ports.AuditLoginSucceeded, cred.Email, cred.Role)

	return cred, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	failures := 0
	if s.limiter != nil {
		n, err := s.limiter.RecordFailure(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
		}
		failures = n
	}
	s.log.Info().Str("email", email).Int("failures", failures).Msg("login failed")
	s.publish(ports.AuditLoginFailed, email, "")
}

func (s *AuthService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *AuthService) publish(typ ports.AuditEventType, email string, role domain.Role) {
	if s.audit == nil {
		return
	}
	s.audit.Publish(ports.AuditEvent{Type: typ, Email: email, Role: role, At: s.now().UTC()})
}
