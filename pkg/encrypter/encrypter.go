package encrypter

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a password does not match its hash.
var ErrMismatch = errors.New("encrypter: password mismatch")

// Encrypter hashes and verifies passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}

type bcryptEncrypter struct {
	cost int
}

// New returns a bcrypt-backed Encrypter. Out-of-range costs fall back to bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptEncrypter{cost: cost}
}

func (e *bcryptEncrypter) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("encrypter: hash: %w", err)
	}
	return string(b), nil
}

func (e *bcryptEncrypter) ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
