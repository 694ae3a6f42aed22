package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-contained one-way hashes
// and checks candidates against them.
//
// Hash output embeds its own salt and cost, so Verify needs nothing but the
// stored string. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a freshly salted hash of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. It never fails: a
	// malformed or empty hash simply yields false. Verifying against an
	// empty hash costs the same as a real comparison, which lets callers
	// mask unknown accounts.
	Verify(plaintext, hash string) bool
}

// CodeGenerator produces one-time password-reset codes.
type CodeGenerator interface {
	// Generate returns a uniformly distributed code of exactly CodeLength
	// decimal digits, leading zeros preserved.
	Generate() (string, error)
}
