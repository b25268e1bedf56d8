package managers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptySecret is returned when an empty password is hashed.
var ErrEmptySecret = errors.New("secret must not be empty")

type PasswordMgr interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// PasswordManager hashes passwords with bcrypt. The salt is part of the digest.
type PasswordManager struct {
	cost int
}

func NewPasswordManager() *PasswordManager {
	return &PasswordManager{cost: bcrypt.DefaultCost}
}

// NewPasswordManagerWithCost is used by tests to keep hashing fast.
func NewPasswordManagerWithCost(cost int) *PasswordManager {
	return &PasswordManager{cost: cost}
}

func (pm *PasswordManager) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptySecret
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), pm.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest never matches.
func (pm *PasswordManager) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
