package redis

import (
	"strings"
	"testing"
	"time"

	"github.com/homeaid/care-portal/internal/core/ports"
)

var (
	_ ports.AttemptLimiter = (*AttemptLimiter)(nil)
	_ ports.RevocationList = (*RevocationList)(nil)
)

func TestRevocationKey(t *testing.T) {
	a := revocationKey("header.payload.signature")
	b := revocationKey("header.payload.signature")
	c := revocationKey("header.payload.other")

	if a != b {
		t.Fatalf("revocation key is not deterministic")
	}
	if a == c {
		t.Fatalf("distinct tokens share a key")
	}
	if !strings.HasPrefix(a, "session:revoked:") || len(a) != len("session:revoked:")+64 {
		t.Fatalf("unexpected key %q", a)
	}
	if strings.Contains(a, "payload") {
		t.Fatalf("key leaks the raw token")
	}
}

func TestAttemptLimiterKey(t *testing.T) {
	l := NewAttemptLimiter(nil, 5, time.Minute)
	if got := l.key("admin@homeaid.com"); got != "login:failures:admin@homeaid.com" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestConfigOptions(t *testing.T) {
	opts := Config{Addr: "cache:6379", Password: "pw", DB: 2}.options()
	if opts.Addr != "cache:6379" || opts.Password != "pw" || opts.DB != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.DialTimeout != defaultTimeout || opts.ReadTimeout != defaultTimeout {
		t.Fatalf("expected default timeouts, got dial=%s read=%s", opts.DialTimeout, opts.ReadTimeout)
	}

	opts = Config{Timeout: time.Second}.options()
	if opts.DialTimeout != time.Second || opts.WriteTimeout != time.Second {
		t.Fatalf("expected configured timeout, got dial=%s write=%s", opts.DialTimeout, opts.WriteTimeout)
	}
}
