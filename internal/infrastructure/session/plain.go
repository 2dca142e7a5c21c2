package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// PlainCodec is the unsigned structural form: base64url of the credential
// JSON. It carries no integrity protection, so config only allows it in
// development. Payloads without an email or a known role decode as no session.
type PlainCodec struct{}

func (PlainCodec) Encode(c domain.Credential) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (PlainCodec) Decode(token string) (domain.Credential, bool) {
	if token == "" {
		return domain.Credential{}, false
	}
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return domain.Credential{}, false
	}
	var c domain.Credential
	if err := json.Unmarshal(b, &c); err != nil || !usable(c) {
		return domain.Credential{}, false
	}
	return c, true
}
