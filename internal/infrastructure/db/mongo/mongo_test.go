package mongo

import (
	"testing"
	"time"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

var (
	_ ports.CredentialStore = (*CredentialRepository)(nil)
	_ ports.AuditSink       = (*AuditRepository)(nil)
)

func TestMongoCredential_ToDomain(t *testing.T) {
	mc := mongoCredential{Email: "manager@homeaid.com", PasswordHash: "$2a$10$x", Role: "manager", Name: "Manager User"}

	got := mc.toDomain()
	want := domain.Credential{Email: "manager@homeaid.com", Password: "$2a$10$x", Role: domain.RoleManager, Name: "Manager User"}
	if *got != want {
		t.Fatalf("toDomain = %+v, want %+v", *got, want)
	}
}

func TestAuditRepository_Document(t *testing.T) {
	recorded := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r := &AuditRepository{now: func() time.Time { return recorded }}
	at := time.Date(2026, 3, 1, 9, 59, 0, 0, time.FixedZone("X", 3600))

	doc := r.document(ports.AuditEvent{Type: ports.AuditLoginFailed, Email: "admin@homeaid.com", At: at})
	if doc["type"] != "login_failed" || doc["email"] != "admin@homeaid.com" {
		t.Fatalf("unexpected document %v", doc)
	}
	if _, ok := doc["role"]; ok {
		t.Fatalf("role should be omitted when empty")
	}
	if doc["occurred_at"] != at.UTC() || doc["recorded_at"] != recorded {
		t.Fatalf("unexpected timestamps %v", doc)
	}

	doc = r.document(ports.AuditEvent{Type: ports.AuditLogout, Email: "admin@homeaid.com", Role: domain.RoleAdmin, At: at})
	if doc["role"] != "admin" {
		t.Fatalf("expected role in document, got %v", doc)
	}
}

func TestConfigClientOptions(t *testing.T) {
	opts := Config{URI: "mongodb://db:27017"}.clientOptions()
	if opts.AppName == nil || *opts.AppName != appName {
		t.Fatalf("expected app name %q", appName)
	}
	if *opts.ConnectTimeout != defaultTimeout || *opts.ServerSelectionTimeout != defaultTimeout {
		t.Fatalf("expected default timeouts")
	}
	if opts.MaxPoolSize != nil {
		t.Fatalf("pool size should be left to the driver, got %d", *opts.MaxPoolSize)
	}

	opts = Config{URI: "mongodb://db:27017", MaxPoolSize: 20, Timeout: 3 * time.Second}.clientOptions()
	if *opts.ConnectTimeout != 3*time.Second || *opts.MaxPoolSize != 20 {
		t.Fatalf("unexpected options: timeout=%s pool=%d", *opts.ConnectTimeout, *opts.MaxPoolSize)
	}
}
