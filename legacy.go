package pwhash

import (
	"crypto/sha256"
	"encoding/hex"
)

// LegacyDigestLength is the exact length of a legacy stored value: SHA-256
// output in lowercase hex.
const LegacyDigestLength = sha256.Size * 2

// legacyDigest computes the pre-migration digest: unsalted SHA-256 of the
// exact password bytes, lowercase hex.
func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// verifyLegacy compares by exact, case-sensitive byte equality.
func verifyLegacy(stored, password string) bool {
	return stored == legacyDigest(password)
}
