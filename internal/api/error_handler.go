package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Title is
// the heading the client shows on its alert.
type errorResponse struct {
	Error string `json:"error"`
	Title string `json:"title"`
}

const defaultTitle = "Error"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "title": "<title>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, rate limiter, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message), Title: defaultTitle}
	}

	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, errorResponse{Error: "Please enter both email and password", Title: defaultTitle}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "Invalid email or password. Please try again.", Title: "Login Failed"}
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, errorResponse{Error: "Too many failed attempts. Please try again later.", Title: "Login Failed"}
	case errors.Is(err, domain.ErrAuthInProgress):
		return http.StatusConflict, errorResponse{Error: "Login already in progress", Title: defaultTitle}
	case errors.Is(err, domain.ErrScreenNotFound):
		return http.StatusNotFound, errorResponse{Error: "login screen not found", Title: defaultTitle}
	case errors.Is(err, domain.ErrVisitNotFound):
		return http.StatusNotFound, errorResponse{Error: "visit not found", Title: defaultTitle}
	case errors.Is(err, domain.ErrVisitNotStartable):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Title: defaultTitle}
	case errors.Is(err, domain.ErrInvalidSelector):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Title: defaultTitle}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden", Title: defaultTitle}
	}

	// Unexpected error (including unroutable roles): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error", Title: defaultTitle}
}
