package application

import (
	"context"
	"errors"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authentication verifies credentials and issues an access token.
type Authentication interface {
	Auth(ctx context.Context, input entity.AuthenticationInput) (string, error)
}

type AuthService struct {
	Repo      repository.AccountRepository
	Comparer  HashComparer
	Encrypter Encrypter
}

func NewAuthService(repo repository.AccountRepository, comparer HashComparer, encrypter Encrypter) *AuthService {
	return &AuthService{Repo: repo, Comparer: comparer, Encrypter: encrypter}
}

func (s *AuthService) Auth(ctx context.Context, input entity.AuthenticationInput) (string, error) {
	acc, err := s.Repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", ErrInvalidCredentials
	}
	if !s.Comparer.Compare(acc.Password, input.Password) {
		return "", ErrInvalidCredentials
	}
	return s.Encrypter.Encrypt(ctx, acc.ID)
}

var _ Authentication = (*AuthService)(nil)
