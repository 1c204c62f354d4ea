package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// DefaultTokenBytes is the amount of entropy in a session token.
const DefaultTokenBytes = 24

type tokenGenerator struct {
	size int
}

// NewTokenGenerator returns a [TokenGenerator] producing tokens with
// [DefaultTokenBytes] of CSPRNG entropy, encoded as unpadded URL-safe base64
// (32 characters).
func NewTokenGenerator() TokenGenerator {
	return &tokenGenerator{size: DefaultTokenBytes}
}

// Generate implements [TokenGenerator].
func (g *tokenGenerator) Generate() (string, error) {
	b := make([]byte, g.size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
