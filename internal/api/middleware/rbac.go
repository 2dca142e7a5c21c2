package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// RBAC enforces role-based access control on top of Session. Requests without
// a session get 401, sessions of another role get domain.ErrForbidden.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get("session").(*domain.Session)
			if sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[sess.User.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
