package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Generator is a mock implementation of shortener.Generator
type Generator struct {
	mock.Mock
}

// GenerateID generates a new short identifier
func (m *Generator) GenerateID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Type returns the type identifier of the generator
func (m *Generator) Type() string {
	args := m.Called()
	return args.String(0)
}
