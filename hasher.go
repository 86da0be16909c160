package pwhash

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Hasher derives self-contained Argon2id hashes under a fixed cost profile.
//
// A Hasher is immutable after construction and safe for concurrent use. It
// only ever writes the modern PHC format; the legacy scheme is reachable
// exclusively through verification.
type Hasher struct {
	config Config
}

// New returns a Hasher for the given cost configuration. The configuration is
// validated against the supported parameter envelope; callers normally pass
// one of [Interactive], [Moderate], or [Sensitive].
func New(cfg Config) (*Hasher, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &Hasher{config: cfg}, nil
}

// moderate backs the package-level Hash and NeedsRehash. Its profile is fixed
// at build time; callers needing another tier construct their own Hasher.
var moderate = &Hasher{config: Moderate()}

// Hash derives an Argon2id hash of password under the fixed [Moderate]
// profile and returns it in PHC form.
func Hash(password string) (string, error) {
	return moderate.Hash(password)
}

// Hash derives an Argon2id hash of password and returns it as a
// self-contained PHC string starting with "$argon2id$".
//
// A fresh salt is drawn from crypto/rand on every call, so hashing the same
// password twice yields two different strings that both verify. The exact
// bytes of password are hashed; no normalization, trimming, or length policy
// is applied here. A salt-source failure is returned as an error and never
// downgraded to a weaker scheme.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.config.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("pwhash: generate salt: %w", err)
	}

	digest := argon2.IDKey(
		[]byte(password),
		salt,
		h.config.Time,
		h.config.Memory,
		h.config.Parallelism,
		h.config.KeyLength,
	)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.config.Memory,
		h.config.Time,
		h.config.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	), nil
}
