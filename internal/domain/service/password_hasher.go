// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

// PasswordHasher derives and verifies salted password digests. It abstracts
// the keyed-hash construction from the account service.
type PasswordHasher interface {
	// Hash generates a fresh cryptographically random salt and returns the
	// fixed-length digest of the password keyed by that salt. Called once per
	// registration; the salt is never reused across identities.
	Hash(password string) (digest, salt []byte, err error)

	// Verify recomputes the digest for password with the stored salt and
	// compares it against expected in constant time. A wrong password is a
	// false result, never an error.
	Verify(password string, salt, expected []byte) bool
}
