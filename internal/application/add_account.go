package application

import (
	"context"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
)

// AddAccount creates a new account. A (nil, nil) return signals a
// duplicate email, which is a business outcome, not a failure.
type AddAccount interface {
	Add(ctx context.Context, input entity.AddAccountInput) (*entity.Account, error)
}

type AddAccountService struct {
	Repo   repository.AccountRepository
	Hasher Hasher
}

func NewAddAccountService(repo repository.AccountRepository, hasher Hasher) *AddAccountService {
	return &AddAccountService{Repo: repo, Hasher: hasher}
}

func (s *AddAccountService) Add(ctx context.Context, input entity.AddAccountInput) (*entity.Account, error) {
	existing, err := s.Repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}
	hashed, err := s.Hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	input.Password = hashed
	return s.Repo.Add(ctx, input)
}

var _ AddAccount = (*AddAccountService)(nil)
