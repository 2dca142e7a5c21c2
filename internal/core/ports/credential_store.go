package ports

import (
	"context"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// CredentialStore is the read-only identity backend. Lookup returns
// domain.ErrInvalidCredentials when no record matches both email and password;
// it never tells an unknown email apart from a wrong password.
type CredentialStore interface {
	Lookup(ctx context.Context, email, password string) (*domain.Credential, error)
}

// DemoDirectory exposes the plaintext demo login of a role, when the backend has one.
type DemoDirectory interface {
	DemoAccount(role domain.Role) (email, password string, ok bool)
}
