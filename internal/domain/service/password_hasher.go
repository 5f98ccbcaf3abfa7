// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (argon2id, with a legacy
// verification path for pre-migration hashes), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash encoding.
	// Corrupt or unrecognised encodings report false rather than erroring;
	// verification failure is an expected outcome, not a programmer error.
	Check(password, encoded string) bool
}
