package helpers

import "golang.org/x/crypto/bcrypt"

// BcryptAdapter is the production hashing strategy. It satisfies both
// the Hasher and HashComparer capabilities of the application layer.
type BcryptAdapter struct {
	Cost int
}

func NewBcryptAdapter(cost int) *BcryptAdapter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptAdapter{Cost: cost}
}

func (b *BcryptAdapter) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b *BcryptAdapter) Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
