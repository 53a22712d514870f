package encrypter

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	e := New(bcrypt.MinCost)

	hash, err := e.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must differ from the password")
	}
	if err := e.ComparePassword(hash, "s3cret"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := e.ComparePassword(hash, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}
