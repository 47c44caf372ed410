package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkping/linkping/internal/domain"
)

// LinkService is a mock implementation of service.LinkService
type LinkService struct {
	mock.Mock
}

// CreateLink registers a destination URL for the given owner chat
func (m *LinkService) CreateLink(ctx context.Context, targetURL string, ownerChatID int64) (*domain.LinkRecord, error) {
	args := m.Called(ctx, targetURL, ownerChatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkRecord), args.Error(1)
}

// Resolve looks up a link record by its short identifier
func (m *LinkService) Resolve(ctx context.Context, id string) (*domain.LinkRecord, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.LinkRecord), args.Bool(1)
}

// NotifyVisit sends a visitor notification to the record's owner chat
func (m *LinkService) NotifyVisit(ctx context.Context, record *domain.LinkRecord, visit *domain.VisitorEvent) error {
	args := m.Called(ctx, record, visit)
	return args.Error(0)
}
