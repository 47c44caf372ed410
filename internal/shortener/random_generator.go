package shortener

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// idBytes random bytes per identifier; hex-encoded this yields 8
	// characters, a 2^32 space, which keeps collision odds negligible for
	// the volumes a single chat bot produces.
	idBytes = 4

	// IDLength is the length of generated identifiers in characters
	IDLength = idBytes * 2
)

// RandomGenerator generates fixed-length identifiers from a
// cryptographically random source
type RandomGenerator struct{}

// NewRandomGenerator creates a new random identifier generator
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// GenerateID generates an 8-character lowercase hex identifier
func (g *RandomGenerator) GenerateID(ctx context.Context) (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Type returns the generator type
func (g *RandomGenerator) Type() string {
	return TypeRandom
}

// Ensure RandomGenerator implements Generator interface
var _ Generator = (*RandomGenerator)(nil)
