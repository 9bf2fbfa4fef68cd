package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/infrastructure/memory"
)

type stubEncrypter struct {
	token string
	err   error
	got   string
}

func (e *stubEncrypter) Encrypt(_ context.Context, value string) (string, error) {
	e.got = value
	return e.token, e.err
}

func seedAccount(t *testing.T, repo *memory.AccountRepository, email, password string) *entity.Account {
	t.Helper()
	acc, err := repo.Add(context.Background(), entity.AddAccountInput{
		Name:     "Jane",
		Email:    email,
		Password: "hashed:" + password,
	})
	require.NoError(t, err)
	return acc
}

func TestAuthIssuesTokenForValidCredentials(t *testing.T) {
	repo := memory.NewAccountRepository()
	acc := seedAccount(t, repo, "jane@x.com", "p1")
	enc := &stubEncrypter{token: "any_token"}
	sut := NewAuthService(repo, plainComparer{}, enc)

	token, err := sut.Auth(context.Background(), entity.AuthenticationInput{Email: "jane@x.com", Password: "p1"})

	require.NoError(t, err)
	assert.Equal(t, "any_token", token)
	assert.Equal(t, acc.ID, enc.got)
}

func TestAuthRejectsUnknownEmailAndWrongPasswordAlike(t *testing.T) {
	repo := memory.NewAccountRepository()
	seedAccount(t, repo, "jane@x.com", "p1")
	sut := NewAuthService(repo, plainComparer{}, &stubEncrypter{token: "any_token"})

	tests := []struct {
		desc  string
		input entity.AuthenticationInput
	}{
		{desc: "unknown email", input: entity.AuthenticationInput{Email: "nobody@x.com", Password: "p1"}},
		{desc: "wrong password", input: entity.AuthenticationInput{Email: "jane@x.com", Password: "nope"}},
	}
	for _, tt := range tests {
		token, err := sut.Auth(context.Background(), tt.input)
		assert.ErrorIs(t, err, ErrInvalidCredentials, tt.desc)
		assert.Empty(t, token, tt.desc)
	}
}

func TestAuthPropagatesRepoFailureUnwrapped(t *testing.T) {
	wantErr := errors.New("store unavailable")
	sut := NewAuthService(failingAccountRepo{err: wantErr}, plainComparer{}, &stubEncrypter{})

	_, err := sut.Auth(context.Background(), entity.AuthenticationInput{Email: "jane@x.com", Password: "p1"})

	assert.Equal(t, wantErr, err)
}

func TestAuthPropagatesEncrypterFailure(t *testing.T) {
	repo := memory.NewAccountRepository()
	seedAccount(t, repo, "jane@x.com", "p1")
	wantErr := errors.New("signing broke")
	sut := NewAuthService(repo, plainComparer{}, &stubEncrypter{err: wantErr})

	_, err := sut.Auth(context.Background(), entity.AuthenticationInput{Email: "jane@x.com", Password: "p1"})

	assert.Equal(t, wantErr, err)
}
