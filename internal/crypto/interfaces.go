package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing salted
// digests and checks candidates against them.
//
// Plaintext passwords never leave this package: callers only ever store the
// string returned by Hash.
type PasswordHasher interface {
	// Hash derives a digest from password with a fresh random salt.
	// Two calls with the same password return different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed
	// encodedHash is returned as [ErrInvalidHash]; a mismatch is (false, nil).
	Verify(password, encodedHash string) (bool, error)
}

// TokenGenerator issues opaque session tokens.
type TokenGenerator interface {
	// Generate returns a new URL-safe random token.
	Generate() (string, error)
}
