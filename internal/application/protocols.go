package application

import "context"

// Encrypter turns an account identity into an opaque signed token.
type Encrypter interface {
	Encrypt(ctx context.Context, value string) (string, error)
}

// Decrypter verifies a token and returns the identity it embeds.
type Decrypter interface {
	Decrypt(ctx context.Context, token string) (string, error)
}

// Hasher derives the stored form of a password before persistence.
type Hasher interface {
	Hash(plain string) (string, error)
}

// HashComparer checks a presented password against stored material.
// The comparison strategy is injected so tests can substitute it.
type HashComparer interface {
	Compare(hashed, plain string) bool
}
