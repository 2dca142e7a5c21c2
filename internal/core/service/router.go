package service

import (
	"fmt"

	"github.com/homeaid/care-portal/internal/core/domain"
)

var roleDestinations = map[domain.Role]domain.Destination{
	domain.RoleAdmin:    domain.DestinationAdminDashboard,
	domain.RoleManager:  domain.DestinationManagerDashboard,
	domain.RoleProvider: domain.DestinationProviderDashboard,
}

// RouteFor maps a credential's role to its dashboard. Roles outside the
// closed set are a data error and yield domain.ErrUnroutableRole.
func RouteFor(c domain.Credential) (domain.Destination, error) {
	dest, ok := roleDestinations[c.Role]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnroutableRole, c.Role)
	}
	return dest, nil
}

// Push navigates forward, re-threading the current session token when there is one.
func Push(dest domain.Destination, sess *domain.Session) domain.Navigation {
	nav := domain.Navigation{Destination: dest}
	if sess != nil {
		nav.Session = sess.Token
	}
	return nav
}

// LogoutNavigation returns to the login screen, replacing the stack and
// carrying no token.
func LogoutNavigation() domain.Navigation {
	return domain.Navigation{Destination: domain.DestinationLogin, Replace: true}
}
