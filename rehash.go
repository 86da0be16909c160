package pwhash

// NeedsRehash reports whether a stored hash should be replaced with a fresh
// Hash output under the receiver's configuration. It returns true when the
// stored value is legacy-format, malformed, or a modern hash whose embedded
// parameters are weaker than the receiver's.
//
// The intended call site is immediately after a successful Verify: re-hash
// the just-confirmed plaintext and store the replacement. NeedsRehash only
// signals; it never touches storage.
func (h *Hasher) NeedsRehash(stored string) bool {
	if DetectScheme(stored) == SchemeLegacySHA256 {
		return true
	}

	parsed, err := parsePHC(stored)
	if err != nil {
		return true
	}

	if parsed.memory < h.config.Memory {
		return true
	}
	if parsed.time < h.config.Time {
		return true
	}
	if parsed.parallelism < h.config.Parallelism {
		return true
	}
	if uint32(len(parsed.digest)) != h.config.KeyLength {
		return true
	}
	if uint32(len(parsed.salt)) < h.config.SaltLength {
		return true
	}

	return false
}

// NeedsRehash reports whether stored should be replaced, judged against the
// fixed [Moderate] profile used by the package-level Hash.
func NeedsRehash(stored string) bool {
	return moderate.NeedsRehash(stored)
}
