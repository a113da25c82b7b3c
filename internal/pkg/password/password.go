// Package password hashes admin credentials with bcrypt.
package password

import (
	"errors"
	"sync"

	"resqcart/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrMismatch = errs.New("password does not match")
)

const MinCost = bcrypt.MinCost

// dummyHash is compared against when no account matches, so an unknown email
// takes as long to reject as a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("resqcart-unknown-account"), bcrypt.DefaultCost)
	return h
})

func Hash(plain string) (string, error) {
	return HashWithCost(plain, bcrypt.DefaultCost)
}

func HashWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(h), nil
}

func Compare(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// CompareMissing burns one bcrypt comparison and always reports a mismatch.
func CompareMissing(plain string) error {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(plain))
	return ErrMismatch
}
