package ports

import (
	"context"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// Authenticator checks submitted credentials.
//
// Errors: domain.ErrMissingField when either field is empty (the store is not
// consulted), domain.ErrInvalidCredentials when nothing matches,
// domain.ErrTooManyAttempts while the email is locked out.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.Credential, error)
}
