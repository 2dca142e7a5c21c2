package ports

import (
	"context"
	"time"

	"github.com/homeaid/care-portal/internal/core/domain"
)

type AuditEventType string

const (
	AuditLoginSucceeded AuditEventType = "login_succeeded"
	AuditLoginFailed    AuditEventType = "login_failed"
	AuditLoginLocked    AuditEventType = "login_locked"
	AuditLogout         AuditEventType = "logout"
)

// AuditEvent records a security-relevant action. Passwords never appear here.
type AuditEvent struct {
	Type  AuditEventType
	Email string
	Role  domain.Role
	At    time.Time
}

// AuditPublisher hands events off without blocking the request path.
type AuditPublisher interface {
	Publish(event AuditEvent)
}

// AuditSink persists audit events.
type AuditSink interface {
	Write(ctx context.Context, event AuditEvent) error
}
