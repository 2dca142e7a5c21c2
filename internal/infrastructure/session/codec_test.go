package session

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

var (
	_ ports.SessionCodec = (*JWTCodec)(nil)
	_ ports.SessionCodec = PlainCodec{}
)

var sampleCredentials = []domain.Credential{
	{Email: "admin@homeaid.com", Password: "$2a$10$hash", Role: domain.RoleAdmin, Name: "Admin User"},
	{Email: "manager@homeaid.com", Password: "$2a$10$other", Role: domain.RoleManager, Name: "Manager User"},
	{Email: "provider@homeaid.com", Password: "", Role: domain.RoleProvider, Name: "Zoë \"Pat\" O'Neil"},
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec, err := NewJWTCodec("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewJWTCodec returned error: %v", err)
	}

	for _, c := range sampleCredentials {
		token, err := codec.Encode(c)
		if err != nil {
			t.Fatalf("Encode(%s) returned error: %v", c.Email, err)
		}
		got, ok := codec.Decode(token)
		if !ok {
			t.Fatalf("Decode failed for %s", c.Email)
		}
		if got != c {
			t.Fatalf("round trip = %+v, want %+v", got, c)
		}
	}
}

func TestJWTCodec_TokensAreUnique(t *testing.T) {
	codec, _ := NewJWTCodec("secret", time.Hour)

	a, _ := codec.Encode(sampleCredentials[0])
	b, _ := codec.Encode(sampleCredentials[0])
	if a == b {
		t.Fatalf("expected distinct tokens for separate logins")
	}
}

func TestJWTCodec_RejectsBadTokens(t *testing.T) {
	codec, _ := NewJWTCodec("secret", time.Hour)
	other, _ := NewJWTCodec("other-secret", time.Hour)

	forged, _ := other.Encode(sampleCredentials[0])

	for _, token := range []string{"", "garbage", "a.b.c", forged} {
		if c, ok := codec.Decode(token); ok {
			t.Fatalf("Decode(%q) = %+v, expected failure", token, c)
		}
	}
}

func TestJWTCodec_RejectsExpiredToken(t *testing.T) {
	codec, _ := NewJWTCodec("secret", time.Minute)
	issued := time.Now()
	codec.now = func() time.Time { return issued }

	token, err := codec.Encode(sampleCredentials[1])
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	codec.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, ok := codec.Decode(token); ok {
		t.Fatalf("expired token decoded successfully")
	}
}

func TestNewJWTCodec_RequiresSecret(t *testing.T) {
	if _, err := NewJWTCodec("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestPlainCodec_RoundTrip(t *testing.T) {
	var codec PlainCodec
	for _, c := range sampleCredentials {
		token, err := codec.Encode(c)
		if err != nil {
			t.Fatalf("Encode returned error: %v", err)
		}
		got, ok := codec.Decode(token)
		if !ok || got != c {
			t.Fatalf("round trip = %+v (ok=%v), want %+v", got, ok, c)
		}
	}
}

func TestPlainCodec_RejectsGarbage(t *testing.T) {
	var codec PlainCodec
	tokens := []string{"", "!!!", "bm90IGpzb24", "W10"}
	for _, payload := range []string{`null`, `{}`, `{"role":"root"}`, `{"email":"a@homeaid.com","role":"root"}`, `{"role":"admin"}`} {
		tokens = append(tokens, base64.RawURLEncoding.EncodeToString([]byte(payload)))
	}
	for _, token := range tokens {
		if c, ok := codec.Decode(token); ok {
			t.Fatalf("Decode(%q) = %+v, expected failure", token, c)
		}
	}
}

func TestJWTCodec_RejectsUnknownRole(t *testing.T) {
	codec, _ := NewJWTCodec("secret", time.Hour)

	for _, c := range []domain.Credential{
		{Email: "root@homeaid.com", Role: "root"},
		{Role: domain.RoleAdmin},
	} {
		token, err := codec.Encode(c)
		if err != nil {
			t.Fatalf("Encode returned error: %v", err)
		}
		if got, ok := codec.Decode(token); ok {
			t.Fatalf("Decode accepted %+v", got)
		}
	}
}

func TestNewCodec(t *testing.T) {
	if c, err := NewCodec(KindJWT, "secret", time.Hour); err != nil {
		t.Fatalf("jwt codec: %v", err)
	} else if _, ok := c.(*JWTCodec); !ok {
		t.Fatalf("expected *JWTCodec, got %T", c)
	}
	if c, err := NewCodec(KindPlain, "", time.Hour); err != nil {
		t.Fatalf("plain codec: %v", err)
	} else if _, ok := c.(PlainCodec); !ok {
		t.Fatalf("expected PlainCodec, got %T", c)
	}
	if _, err := NewCodec("rot13", "secret", time.Hour); err == nil {
		t.Fatalf("expected error for unknown codec")
	}
}
