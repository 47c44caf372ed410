package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkping/linkping/internal/domain"
)

// LinkStore is a mock implementation of store.LinkStore
type LinkStore struct {
	mock.Mock
}

// Put inserts a new record keyed by id
func (m *LinkStore) Put(ctx context.Context, id string, record *domain.LinkRecord) error {
	args := m.Called(ctx, id, record)
	return args.Error(0)
}

// Get retrieves a record by id
func (m *LinkStore) Get(ctx context.Context, id string) (*domain.LinkRecord, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.LinkRecord), args.Bool(1)
}
