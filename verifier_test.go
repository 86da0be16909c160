package pwhash

import (
	"strings"
	"testing"
)

// sha256Password is the well-known SHA-256 digest of "password" in the
// legacy stored format.
const sha256Password = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

func TestDetectScheme(t *testing.T) {
	cases := []struct {
		stored string
		want   Scheme
	}{
		{"$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0", SchemeArgon2id},
		{"$argon2id$garbage", SchemeArgon2id},
		{sha256Password, SchemeLegacySHA256},
		{"", SchemeLegacySHA256},
		{"$argon2i$v=19$m=8192,t=1,p=1$x$y", SchemeLegacySHA256},
		{"$2b$12$abcdefghijklmnopqrstuv", SchemeLegacySHA256},
	}

	for _, c := range cases {
		if got := DetectScheme(c.stored); got != c.want {
			t.Fatalf("DetectScheme(%q) = %v, want %v", c.stored, got, c.want)
		}
	}
}

func TestSchemeString(t *testing.T) {
	if SchemeArgon2id.String() != "argon2id" {
		t.Fatalf("unexpected SchemeArgon2id string: %s", SchemeArgon2id)
	}
	if SchemeLegacySHA256.String() != "legacy-sha256" {
		t.Fatalf("unexpected SchemeLegacySHA256 string: %s", SchemeLegacySHA256)
	}
	if Scheme(42).String() != "unknown" {
		t.Fatalf("unexpected out-of-range scheme string: %s", Scheme(42))
	}
}

func TestVerifyLegacyKnownVector(t *testing.T) {
	if !Verify(sha256Password, "password") {
		t.Fatal("expected legacy digest of \"password\" to verify")
	}
	if Verify(sha256Password, "Password") {
		t.Fatal("expected case-variant candidate to fail against legacy digest")
	}
}

func TestVerifyLegacyExactEquality(t *testing.T) {
	// Uppercase hex is a different byte sequence; the legacy comparison is
	// exact, not case-folded.
	if Verify(strings.ToUpper(sha256Password), "password") {
		t.Fatal("expected uppercase legacy digest to fail")
	}
	if Verify(sha256Password[:LegacyDigestLength-1], "password") {
		t.Fatal("expected truncated legacy digest to fail")
	}
	if Verify(sha256Password+"00", "password") {
		t.Fatal("expected over-long legacy digest to fail")
	}
	if Verify("", "password") {
		t.Fatal("expected empty stored value to fail")
	}
}

func TestLegacyDigestShape(t *testing.T) {
	if LegacyDigestLength != 64 {
		t.Fatalf("unexpected LegacyDigestLength: %d", LegacyDigestLength)
	}

	d := legacyDigest("password")
	if d != sha256Password {
		t.Fatalf("unexpected legacy digest: %s", d)
	}
	if len(d) != LegacyDigestLength {
		t.Fatalf("unexpected legacy digest length: %d", len(d))
	}
	if d != strings.ToLower(d) {
		t.Fatal("expected legacy digest to be lowercase")
	}
}

func TestVerifyMalformedModern(t *testing.T) {
	malformed := []string{
		"$argon2id$",
		"$argon2id$garbage",
		"$argon2id$v=19",
		"$argon2id$v=19$m=8192,t=1,p=1",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0ZGlnZXN0ZGlnZXN0ZGlnZXN0ZGln",
		"$argon2id$v=$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=8192,t=1$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=8192,t=1,p=1,x=2$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$ZGlnZXN0",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$@@@",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0$extra",
	}

	for _, stored := range malformed {
		if Verify(stored, "password") {
			t.Fatalf("expected malformed stored value to fail verification: %q", stored)
		}
	}
}

func TestVerifyTamperedDigest(t *testing.T) {
	hasher, err := New(testConfig())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	hash, err := hasher.Hash("tamper-check")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	// Flip the first digest character. The final character only contributes
	// trailing bits the decoder may discard, so mutate a fully significant
	// position.
	i := strings.LastIndex(hash, "$") + 1
	replacement := byte('A')
	if hash[i] == 'A' {
		replacement = 'B'
	}
	tampered := hash[:i] + string(replacement) + hash[i+1:]

	if Verify(tampered, "tamper-check") {
		t.Fatal("expected tampered digest to fail verification")
	}
}
