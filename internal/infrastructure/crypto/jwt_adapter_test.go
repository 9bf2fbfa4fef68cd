package crypto

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	sut := NewJWTAdapter("any-secret", 0)

	token, err := sut.Encrypt(ctx, "account-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := sut.Decrypt(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "account-123", id)
}

func TestJWTAdapterEmptySecret(t *testing.T) {
	ctx := context.Background()
	sut := NewJWTAdapter("", 0)

	_, err := sut.Encrypt(ctx, "account-123")
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = sut.Decrypt(ctx, "whatever")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestJWTAdapterRejectsForeignAndTamperedTokens(t *testing.T) {
	ctx := context.Background()
	sut := NewJWTAdapter("right-secret", 0)
	other := NewJWTAdapter("wrong-secret", 0)

	foreign, err := other.Encrypt(ctx, "account-123")
	require.NoError(t, err)

	_, err = sut.Decrypt(ctx, foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err := sut.Encrypt(ctx, "account-123")
	require.NoError(t, err)
	corrupted := token + "x"
	_, err = sut.Decrypt(ctx, corrupted)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = sut.Decrypt(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTAdapterRejectsExpiredTokens(t *testing.T) {
	ctx := context.Background()
	sut := NewJWTAdapter("any-secret", -time.Minute)

	token, err := sut.Encrypt(ctx, "account-123")
	require.NoError(t, err)

	_, err = sut.Decrypt(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTAdapterTokenIsOpaqueish(t *testing.T) {
	ctx := context.Background()
	sut := NewJWTAdapter("any-secret", 0)

	token, err := sut.Encrypt(ctx, "account-123")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))
}
