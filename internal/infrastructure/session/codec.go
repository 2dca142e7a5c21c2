package session

import (
	"fmt"
	"time"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

const (
	KindJWT   = "jwt"
	KindPlain = "plain"
)

// NewCodec builds the codec named by kind. The secret is only used by the
// signed form.
func NewCodec(kind, secret string, ttl time.Duration) (ports.SessionCodec, error) {
	switch kind {
	case KindJWT, "":
		return NewJWTCodec(secret, ttl)
	case KindPlain:
		return PlainCodec{}, nil
	}
	return nil, fmt.Errorf("session codec: unknown kind %q", kind)
}

// usable reports whether a decoded credential can stand for a signed-in user.
func usable(c domain.Credential) bool {
	return c.Email != "" && c.Role.Valid()
}
