package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

// SessionService starts, resolves and ends sessions. It owns the only place
// tokens are minted.
type SessionService struct {
	codec       ports.SessionCodec
	revocations ports.RevocationList
	audit       ports.AuditPublisher
	ttl         time.Duration
	log         zerolog.Logger
	now         func() time.Time
}

// NewSessionService builds a SessionService. revocations and audit may be nil.
func NewSessionService(codec ports.SessionCodec, revocations ports.RevocationList, audit ports.AuditPublisher, ttl time.Duration, log zerolog.Logger) *SessionService {
	return &SessionService{
		codec:       codec,
		revocations: revocations,
		audit:       audit,
		ttl:         ttl,
		log:         log,
		now:         time.Now,
	}
}

// Start routes an authenticated credential to its dashboard. The navigation
// replaces the login screen and carries a freshly encoded token. The stored
// password hash stays server-side; the token carries an empty password.
func (s *SessionService) Start(c domain.Credential) (domain.Navigation, error) {
	dest, err := RouteFor(c)
	if err != nil {
		s.log.Error().Err(err).Str("email", c.Email).Msg("refusing to route credential")
		return domain.Navigation{}, err
	}

	c.Password = ""
	token, err := s.codec.Encode(c)
	if err != nil {
		return domain.Navigation{}, fmt.Errorf("start session: %w", err)
	}

	return domain.Navigation{Destination: dest, Replace: true, Session: token}, nil
}

// Resolve decodes a presented token. Absent, malformed and revoked tokens
// all resolve to no session.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, bool) {
	if token == "" {
		return nil, false
	}

	c, ok := s.codec.Decode(token)
	if !ok {
		return nil, false
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, token)
		if err != nil {
			s.log.Warn().Err(err).Msg("revocation check failed, treating session as absent")
			return nil, false
		}
		if revoked {
			return nil, false
		}
	}

	return &domain.Session{User: c, Token: token}, true
}

// Logout asks for confirmation first. Once confirmed it revokes the current
// token (if any) and always lands on the login screen without a token.
func (s *SessionService) Logout(ctx context.Context, sess *domain.Session, confirmed bool) (ports.Confirmation, error) {
	if !confirmed {
		p := domain.LogoutPrompt
		return ports.Confirmation{Prompt: &p}, nil
	}

	if sess != nil {
		if s.revocations != nil {
			if err := s.revocations.Revoke(ctx, sess.Token, s.ttl); err != nil {
				s.log.Warn().Err(err).Str("email", sess.User.Email).Msg("failed to revoke session token")
			}
		}
		s.log.Info().Str("email", sess.User.Email).Str("role", string(sess.User.Role)).Msg("logout")
		if s.audit != nil {
			s.audit.Publish(ports.AuditEvent{
				Type:  ports.AuditLogout,
				Email: sess.User.Email,
				Role:  sess.User.Role,
				At:    s.now().UTC(),
			})
		}
	}

	nav := LogoutNavigation()
	return ports.Confirmation{Navigation: &nav}, nil
}
