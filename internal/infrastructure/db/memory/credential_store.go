package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// Account is a seed entry for the mock credential store.
type Account struct {
	Email    string
	Password string
	Role     domain.Role
	Name     string
}

// DefaultAccounts are the demo staff logins.
var DefaultAccounts = []Account{
	{Email: "admin@homeaid.com", Password: "admin123", Role: domain.RoleAdmin, Name: "Admin User"},
	{Email: "manager@homeaid.com", Password: "manager123", Role: domain.RoleManager, Name: "Manager User"},
	{Email: "provider@homeaid.com", Password: "provider123", Role: domain.RoleProvider, Name: "Provider User"},
}

type record struct {
	cred  domain.Credential
	plain string
}

// CredentialStore is an ordered, read-only list of accounts. Passwords are
// hashed once at construction.
type CredentialStore struct {
	records []record
}

func NewCredentialStore(accounts []Account) (*CredentialStore, error) {
	return newCredentialStore(accounts, bcrypt.DefaultCost)
}

func newCredentialStore(accounts []Account, cost int) (*CredentialStore, error) {
	s := &CredentialStore{records: make([]record, 0, len(accounts))}
	for _, a := range accounts {
		h, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", a.Email, err)
		}
		s.records = append(s.records, record{
			cred:  domain.Credential{Email: a.Email, Password: string(h), Role: a.Role, Name: a.Name},
			plain: a.Password,
		})
	}
	return s, nil
}

// Lookup returns the first account whose email matches exactly and whose
// password verifies.
func (s *CredentialStore) Lookup(ctx context.Context, email, password string) (*domain.Credential, error) {
	for _, r := range s.records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r.cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(r.cred.Password), []byte(password)) == nil {
			c := r.cred
			return &c, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// DemoAccount returns the first account of role.
func (s *CredentialStore) DemoAccount(role domain.Role) (string, string, bool) {
	for _, r := range s.records {
		if r.cred.Role == role {
			return r.cred.Email, r.plain, true
		}
	}
	return "", "", false
}
