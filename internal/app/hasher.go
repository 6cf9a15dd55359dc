package app

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare when the password
// does not produce the stored hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordHasher turns plaintext passwords into stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Digester is implemented by hashers whose output depends only on the
// password. Login then matches the digest in the store directly.
type Digester interface {
	Digest(password string) string
}

// SHA256Hasher stores the hex SHA-256 of the password.
//
// The digest is unsalted and fast. It is kept because existing quiz
// databases hold such digests; prefer BcryptHasher for new deployments.
type SHA256Hasher struct{}

// Digest returns the 64-character hex digest of password.
func (SHA256Hasher) Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Hash implements PasswordHasher.
func (h SHA256Hasher) Hash(password string) (string, error) {
	return h.Digest(password), nil
}

// Compare implements PasswordHasher.
func (h SHA256Hasher) Compare(hash, password string) error {
	if !ConstantTimeCompare(hash, h.Digest(password)) {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptHasher stores salted bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

// Hash implements PasswordHasher.
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare implements PasswordHasher.
func (BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// NewHasher returns the hasher registered under name ("sha256" or "bcrypt").
func NewHasher(name string) (PasswordHasher, error) {
	switch name {
	case "", "sha256":
		return SHA256Hasher{}, nil
	case "bcrypt":
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

// ConstantTimeCompare performs a constant-time comparison of two strings.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
