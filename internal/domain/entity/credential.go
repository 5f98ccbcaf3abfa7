// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/base64"
	"strconv"
	"strings"

	"wishlist/internal/errors"
)

// CredentialScheme identifies the hashing scheme of a stored credential.
type CredentialScheme string

const (
	// SchemeArgon2id is the primary scheme; all newly created hashes use it.
	SchemeArgon2id CredentialScheme = "argon2id"
	// SchemePBKDF2SHA256 is the legacy scheme kept only to verify hashes
	// created before the argon2id migration. Never used for new hashes.
	SchemePBKDF2SHA256 CredentialScheme = "pbkdf2-sha256"
)

// Credential is the parsed form of a stored password hash. Exactly one of
// Argon2 or Legacy is set, dispatched on Scheme. Parsing up front keeps the
// legacy verification path an explicit, auditable branch instead of an
// exception-driven fallback.
type Credential struct {
	Scheme CredentialScheme
	Argon2 *Argon2Credential
	Legacy *LegacyCredential
}

// Argon2Credential holds the decoded parameters of a PHC-encoded argon2id hash:
// $argon2id$v=19$m=<memory>,t=<time>,p=<parallelism>$<b64 salt>$<b64 digest>
type Argon2Credential struct {
	Version     int
	Memory      uint32
	Time        uint32
	Parallelism uint8
	Salt        []byte
	Digest      []byte
}

// LegacyCredential holds the decoded parts of a passlib-style pbkdf2 hash:
// $pbkdf2-sha256$<rounds>$<ab64 salt>$<ab64 digest>
type LegacyCredential struct {
	Rounds int
	Salt   []byte
	Digest []byte
}

// ErrUnknownCredentialFormat is returned when a stored hash matches none of
// the supported encodings.
var ErrUnknownCredentialFormat = errors.New("unknown credential format")

// ParseCredential decodes a stored hash string into its scheme variant.
func ParseCredential(encoded string) (*Credential, error) {
	switch {
	case strings.HasPrefix(encoded, "$argon2id$"):
		parsed, err := parseArgon2(encoded)
		if err != nil {
			return nil, err
		}

		return &Credential{Scheme: SchemeArgon2id, Argon2: parsed}, nil
	case strings.HasPrefix(encoded, "$pbkdf2-sha256$"):
		parsed, err := parseLegacy(encoded)
		if err != nil {
			return nil, err
		}

		return &Credential{Scheme: SchemePBKDF2SHA256, Legacy: parsed}, nil
	default:
		return nil, ErrUnknownCredentialFormat
	}
}

func parseArgon2(encoded string) (*Argon2Credential, error) {
	parts := strings.Split(encoded, "$")
	// ["", "argon2id", "v=19", "m=...,t=...,p=...", salt, digest]
	if len(parts) != 6 {
		return nil, errors.New("malformed argon2id hash")
	}

	version, err := parseKeyValue(parts[2], "v")
	if err != nil {
		return nil, err
	}

	params := strings.Split(parts[3], ",")
	if len(params) != 3 {
		return nil, errors.New("malformed argon2id parameters")
	}

	memory, err := parseKeyValue(params[0], "m")
	if err != nil {
		return nil, err
	}
	timeCost, err := parseKeyValue(params[1], "t")
	if err != nil {
		return nil, err
	}
	parallelism, err := parseKeyValue(params[2], "p")
	if err != nil {
		return nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, errors.Wrap(err, "decode argon2id salt")
	}
	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, errors.Wrap(err, "decode argon2id digest")
	}

	return &Argon2Credential{
		Version:     version,
		Memory:      uint32(memory),
		Time:        uint32(timeCost),
		Parallelism: uint8(parallelism),
		Salt:        salt,
		Digest:      digest,
	}, nil
}

func parseLegacy(encoded string) (*LegacyCredential, error) {
	parts := strings.Split(encoded, "$")
	// ["", "pbkdf2-sha256", rounds, salt, digest]
	if len(parts) != 5 {
		return nil, errors.New("malformed pbkdf2 hash")
	}

	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 {
		return nil, errors.New("malformed pbkdf2 rounds")
	}

	salt, err := decodeAdaptedBase64(parts[3])
	if err != nil {
		return nil, errors.Wrap(err, "decode pbkdf2 salt")
	}
	digest, err := decodeAdaptedBase64(parts[4])
	if err != nil {
		return nil, errors.Wrap(err, "decode pbkdf2 digest")
	}

	return &LegacyCredential{Rounds: rounds, Salt: salt, Digest: digest}, nil
}

func parseKeyValue(s, key string) (int, error) {
	value, ok := strings.CutPrefix(s, key+"=")
	if !ok {
		return 0, errors.Errorf("expected %s= parameter", key)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s parameter", key)
	}

	return n, nil
}

// decodeAdaptedBase64 decodes passlib's "adapted base64": the standard
// alphabet with '+' replaced by '.' and no padding.
func decodeAdaptedBase64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
