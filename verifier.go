package pwhash

import "strings"

const (
	algorithmID = "argon2id"

	// phcPrefix is the literal tag every modern hash starts with. Anything
	// without it is dispatched to the legacy scheme.
	phcPrefix = "$" + algorithmID + "$"
)

// Scheme identifies the storage format of an encoded password hash.
type Scheme int

const (
	// SchemeArgon2id is the modern memory-hard PHC format produced by Hash.
	SchemeArgon2id Scheme = iota
	// SchemeLegacySHA256 is the pre-migration format: an unsalted SHA-256
	// digest in lowercase hex. Verified but never written.
	SchemeLegacySHA256
)

func (s Scheme) String() string {
	switch s {
	case SchemeArgon2id:
		return "argon2id"
	case SchemeLegacySHA256:
		return "legacy-sha256"
	default:
		return "unknown"
	}
}

// DetectScheme reports which scheme a stored hash belongs to. The decision is
// the single format-dispatch policy for the package: the "$argon2id$" prefix
// selects the modern scheme, everything else is treated as legacy.
func DetectScheme(stored string) Scheme {
	if strings.HasPrefix(stored, phcPrefix) {
		return SchemeArgon2id
	}

	return SchemeLegacySHA256
}

// Verify reports whether password matches the stored encoded hash.
//
// The stored value's scheme is detected first; the modern path re-derives the
// digest with the parameters and salt embedded in the string and compares in
// constant time, the legacy path recomputes the unsalted SHA-256 hex digest
// and compares for exact equality.
//
// Verify never returns an error: a wrong password, a malformed or truncated
// modern string, an unsupported version, and a corrupt legacy digest all
// yield false, so callers cannot leak the difference between "wrong password"
// and "damaged record" to an attacker. Repeated calls with the same inputs
// always return the same answer.
func Verify(stored, password string) bool {
	switch DetectScheme(stored) {
	case SchemeArgon2id:
		return verifyArgon2id(stored, password)
	case SchemeLegacySHA256:
		return verifyLegacy(stored, password)
	default:
		return false
	}
}
