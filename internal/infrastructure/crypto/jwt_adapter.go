package crypto

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret  = errors.New("jwt: empty signing secret")
	ErrInvalidToken = errors.New("jwt: invalid token")
)

type claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTAdapter signs and verifies access tokens carrying a single identity
// claim. The secret is fixed at construction; a zero TTL means tokens do
// not expire (expiry policy is a deployment parameter).
type JWTAdapter struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTAdapter(secret string, ttl time.Duration) *JWTAdapter {
	return &JWTAdapter{secret: []byte(secret), ttl: ttl}
}

func (a *JWTAdapter) Encrypt(_ context.Context, value string) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrEmptySecret
	}
	c := &claims{
		ID: value,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if a.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(a.ttl))
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: signing failed: %w", err)
	}
	return token, nil
}

func (a *JWTAdapter) Decrypt(_ context.Context, token string) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrEmptySecret
	}
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || c.ID == "" {
		return "", ErrInvalidToken
	}
	return c.ID, nil
}
