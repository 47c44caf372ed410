package shortener

import (
	"context"
)

// Generator defines the interface for generating short link identifiers
type Generator interface {
	// GenerateID generates a new short identifier
	GenerateID(ctx context.Context) (string, error)

	// Type returns the type identifier of the generator
	Type() string
}

// GeneratorType constants
const (
	TypeRandom = "random"
)
