// Package security holds the credential hashing and bearer token primitives.
package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.PasswordHasher = BcryptHasher{}

// BcryptHasher stores credentials as bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
