// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	"wishlist/internal/domain/entity"
	"wishlist/internal/domain/service"
)

// Argon2id parameters for newly created hashes.
const (
	argon2Time    uint32 = 3
	argon2Memory  uint32 = 256 * 1024 // KiB
	argon2Threads uint8  = 1
	argon2KeyLen  uint32 = 32
	argon2SaltLen        = 16

	// Passwords are truncated before hashing so that verification
	// behaves identically for stored hashes created under the same rule.
	maxPasswordBytes = 72
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id. It also verifies legacy pbkdf2-sha256 hashes so that
// accounts created before the migration keep working.
type argon2Hasher struct{}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{}
}

// Hash generates a salted argon2id hash in PHC string format.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	digest := argon2.IDKey(truncate(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Check compares a plaintext password with a stored hash. The stored
// format decides which algorithm runs; unknown formats never match.
func (h *argon2Hasher) Check(password, encoded string) bool {
	cred, err := entity.ParseCredential(encoded)
	if err != nil {
		return false
	}

	switch cred.Scheme {
	case entity.SchemeArgon2id:
		return checkArgon2(password, cred.Argon2)
	case entity.SchemePBKDF2SHA256:
		return checkLegacy(password, cred.Legacy)
	default:
		return false
	}
}

func checkArgon2(password string, cred *entity.Argon2Credential) bool {
	digest := argon2.IDKey(truncate(password), cred.Salt, cred.Time, cred.Memory, cred.Parallelism, uint32(len(cred.Digest)))

	return subtle.ConstantTimeCompare(digest, cred.Digest) == 1
}

func checkLegacy(password string, cred *entity.LegacyCredential) bool {
	digest := pbkdf2.Key(truncate(password), cred.Salt, cred.Rounds, len(cred.Digest), sha256.New)

	return subtle.ConstantTimeCompare(digest, cred.Digest) == 1
}

func truncate(password string) []byte {
	raw := []byte(password)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}

	return raw
}
