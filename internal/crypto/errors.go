package crypto

import "errors"

var (
	// ErrInvalidHash is returned when a stored digest cannot be parsed.
	ErrInvalidHash = errors.New("invalid password hash format")
	// ErrIncompatibleVersion is returned for digests produced by another Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
