package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrHashFailed = errors.New("password hashing failed")

// HashPassword hashes a password with bcrypt at the default cost.
// The salt is embedded in the returned hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashFailed
	}
	return string(hash), nil
}

// VerifyPassword checks a password against a bcrypt hash in constant time.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
