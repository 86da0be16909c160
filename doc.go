// Package pwhash implements password credential hashing and verification:
// Argon2id for everything written today, plus read-only verification of a
// legacy unsalted SHA-256 scheme that predates it.
//
// The package is designed for concurrent server workloads: every operation is
// a pure function of its inputs (plus crypto/rand for salt generation), holds
// no shared state, and is safe to call from multiple goroutines without
// locking. Each call is a deliberately expensive, blocking computation —
// offload it from latency-sensitive event loops.
//
// # Output format
//
// Hash always produces a self-contained PHC string:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<digest>
//
// Salt and digest are unpadded standard base64. Every parameter needed to
// verify is embedded in the string, so Verify needs no side-channel lookup of
// "which parameters were used" and accepts hashes produced under any
// supported cost profile.
//
// Legacy stored values are recognized by the absence of the "$argon2id$"
// prefix: a 64-character lowercase-hex SHA-256 digest of the plaintext, no
// salt, no parameters. Verify accepts them; nothing in this package can
// produce one. [Hasher.NeedsRehash] returns true for legacy values so callers
// can re-hash on the next successful login.
//
// # Architecture boundaries
//
// pwhash owns the hash/verify contract and the encoded-string format —
// nothing else. The caller (a user-management layer, out of scope here)
// supplies plaintext and stores the returned string verbatim in whatever
// persistence it owns.
//
// # What this package must NOT do
//
//   - Store, retrieve, or rewrite password records — callers own storage.
//   - Enforce password policy (length, reuse, complexity) — callers own policy.
//   - Produce legacy-format output, or silently fall back to a weaker scheme
//     when hashing fails.
//   - Log plaintext passwords, salts, or derived keys.
package pwhash
