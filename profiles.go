package pwhash

import "errors"

// Parameter envelope accepted by New and by the PHC parser. The minima reject
// configurations too weak to be worth storing; the maxima bound the work a
// stored string can demand from Verify.
const (
	minMemoryKB    uint32 = 8 * 1024
	maxMemoryKB    uint32 = 1024 * 1024
	minTimeCost    uint32 = 1
	maxTimeCost    uint32 = 16
	minParallelism uint8  = 1
	maxParallelism uint8  = 8
	minSaltLength  uint32 = 16
	minKeyLength   uint32 = 16
	maxKeyLength   uint32 = 128
)

// Config holds the Argon2id cost parameters for a [Hasher].
//
// Config instances are intended to be selected once — normally via one of the
// profile constructors — and then treated as immutable. Cost tiers are a
// construction-time decision: a caller that needs a different tier builds a
// new Hasher, it does not pass parameters per call.
type Config struct {
	// Memory is the Argon2id memory cost in KiB.
	Memory uint32
	// Time is the Argon2id time cost (number of passes).
	Time uint32
	// Parallelism is the Argon2id lane count.
	Parallelism uint8
	// SaltLength is the salt size in bytes drawn from crypto/rand per call.
	SaltLength uint32
	// KeyLength is the derived digest size in bytes.
	KeyLength uint32
}

// Interactive returns the lightest supported profile (t=2, m=64 MiB).
// Suited to interactive logins where sub-100ms latency matters more than
// maximum brute-force resistance.
func Interactive() Config {
	return Config{Memory: 64 * 1024, Time: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

// Moderate returns the default write profile (t=3, m=256 MiB). Package-level
// Hash and NeedsRehash are bound to it.
func Moderate() Config {
	return Config{Memory: 256 * 1024, Time: 3, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

// Sensitive returns the heaviest supported profile (t=4, m=1 GiB), for
// credentials guarding high-value operations.
func Sensitive() Config {
	return Config{Memory: 1024 * 1024, Time: 4, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func validateConfig(cfg Config) error {
	if cfg.Memory < minMemoryKB || cfg.Memory > maxMemoryKB {
		return errors.New("pwhash: memory cost must be within 8192..1048576 KiB")
	}
	if cfg.Time < minTimeCost || cfg.Time > maxTimeCost {
		return errors.New("pwhash: time cost must be within 1..16")
	}
	if cfg.Parallelism < minParallelism || cfg.Parallelism > maxParallelism {
		return errors.New("pwhash: parallelism must be within 1..8")
	}
	if cfg.SaltLength < minSaltLength {
		return errors.New("pwhash: salt length must be >= 16 bytes")
	}
	if cfg.KeyLength < minKeyLength || cfg.KeyLength > maxKeyLength {
		return errors.New("pwhash: key length must be within 16..128 bytes")
	}

	return nil
}
