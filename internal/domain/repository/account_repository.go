package repository

import (
	"context"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
)

// AccountRepository is the persistence boundary for accounts. Absence is
// a normal result: FindByEmail and LoadByID return (nil, nil) when no
// account matches, and a non-nil error only on storage failure.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	Add(ctx context.Context, input entity.AddAccountInput) (*entity.Account, error)
	LoadAll(ctx context.Context) ([]entity.Account, error)
	LoadByID(ctx context.Context, id string) (*entity.Account, error)
}
