package domain

import "errors"

// Authentication.
var (
	ErrMissingField       = errors.New("missing email or password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrAuthInProgress     = errors.New("authentication already in progress")
	ErrScreenNotFound     = errors.New("login screen not found")
)

// Routing and access.
var (
	ErrUnroutableRole = errors.New("unroutable role")
	ErrForbidden      = errors.New("access forbidden")
)

// Schedule.
var (
	ErrVisitNotFound     = errors.New("visit not found")
	ErrVisitNotStartable = errors.New("visit cannot be started")
	ErrInvalidSelector   = errors.New("invalid schedule selector")
)
