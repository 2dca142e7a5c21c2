package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// sessionFrom returns the session injected by the Session middleware, or nil
// when the request is unauthenticated.
func sessionFrom(c echo.Context) *domain.Session {
	sess, _ := c.Get("session").(*domain.Session)
	return sess
}
