package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
)

// AccountRepository keeps accounts in a map. It backs tests and local
// runs that have no document store available.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]entity.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: map[string]entity.Account{}}
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Email == email {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AccountRepository) Add(_ context.Context, input entity.AddAccountInput) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := entity.Account{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}
	r.accounts[a.ID] = a
	return &a, nil
}

func (r *AccountRepository) LoadAll(_ context.Context) ([]entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		all = append(all, a)
	}
	return all, nil
}

func (r *AccountRepository) LoadByID(_ context.Context, id string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.accounts[id]; ok {
		return &a, nil
	}
	return nil, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
