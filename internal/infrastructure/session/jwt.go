package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/homeaid/care-portal/internal/core/domain"
)

type credentialClaims struct {
	Email    string      `json:"email"`
	Password string      `json:"password,omitempty"`
	Role     domain.Role `json:"role"`
	Name     string      `json:"name"`
	jwt.RegisteredClaims
}

// JWTCodec signs session tokens with HS256.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTCodec(secret string, ttl time.Duration) (*JWTCodec, error) {
	if secret == "" {
		return nil, errors.New("jwt codec: empty secret")
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (c *JWTCodec) Encode(cred domain.Credential) (string, error) {
	now := c.now()
	claims := credentialClaims{
		Email:    cred.Email,
		Password: cred.Password,
		Role:     cred.Role,
		Name:     cred.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Decode verifies and unpacks a token. Any failure yields ok == false.
func (c *JWTCodec) Decode(token string) (domain.Credential, bool) {
	if token == "" {
		return domain.Credential{}, false
	}

	var claims credentialClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil || !tkn.Valid {
		return domain.Credential{}, false
	}

	cred := domain.Credential{
		Email:    claims.Email,
		Password: claims.Password,
		Role:     claims.Role,
		Name:     claims.Name,
	}
	if !usable(cred) {
		return domain.Credential{}, false
	}
	return cred, true
}
