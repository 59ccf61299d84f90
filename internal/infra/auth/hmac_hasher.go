// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"

	"timesheet/internal/domain/service"
	"timesheet/internal/errors"
)

// saltLength is the size of the per-member random key. Matches the SHA-512
// output size so the key never needs to be stretched or truncated by HMAC.
const saltLength = sha512.Size

// hmacHasher derives password digests as HMAC-SHA512 over the UTF-8 password
// with the per-member salt as key. Digest and salt are stored separately on
// the identity record.
type hmacHasher struct{}

// NewHMACHasher is the constructor for hmacHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewHMACHasher() service.PasswordHasher {
	return &hmacHasher{}
}

// Hash generates a fresh random salt and computes the keyed digest.
func (h *hmacHasher) Hash(password string) ([]byte, []byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate password salt")
	}

	return h.compute(password, salt), salt, nil
}

// Verify recomputes the digest with the stored salt and compares it against
// expected with a constant-time comparison, so timing never distinguishes a
// prefix match from a full mismatch.
func (h *hmacHasher) Verify(password string, salt, expected []byte) bool {
	return hmac.Equal(h.compute(password, salt), expected)
}

func (h *hmacHasher) compute(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}
