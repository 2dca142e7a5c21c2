package ports

import (
	"context"
	"time"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// SessionCodec turns an authenticated credential into the token carried
// between screens and back.
//
// Decode never fails loudly: malformed, expired, forged or empty tokens all
// yield ok == false, which callers treat as "no authenticated user".
type SessionCodec interface {
	Encode(c domain.Credential) (string, error)
	Decode(token string) (c domain.Credential, ok bool)
}

// RevocationList remembers tokens discarded by logout until they expire.
type RevocationList interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
