package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// SessionQueryParam is the navigation parameter carrying the session token.
const SessionQueryParam = "session"

// SessionResolver turns a raw token into a session, or reports none.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, bool)
}

// Session resolves the presented token and injects the session into context
// under "session". It never rejects a request: an absent, malformed or
// revoked token simply leaves the request unauthenticated.
//
// Token sources, first non-empty wins: ?session=, Authorization: Bearer,
// then the session cookie.
func Session(resolver SessionResolver, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := presentedToken(c, cookieName); token != "" {
				if sess, ok := resolver.Resolve(c.Request().Context(), token); ok {
					c.Set("session", sess)
				}
			}
			return next(c)
		}
	}
}

func presentedToken(c echo.Context, cookieName string) string {
	if t := c.QueryParam(SessionQueryParam); t != "" {
		return t
	}

	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			return parts[1]
		}
	}

	if cookieName != "" {
		if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
			return ck.Value
		}
	}
	return ""
}
