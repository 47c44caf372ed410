package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkping/linkping/internal/telegram"
)

// UpdateSource is a mock implementation of telegram.UpdateSource
type UpdateSource struct {
	mock.Mock
}

// GetUpdates long-polls for updates at or after offset
func (m *UpdateSource) GetUpdates(ctx context.Context, offset int64) ([]telegram.Update, error) {
	args := m.Called(ctx, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]telegram.Update), args.Error(1)
}

// Sender is a mock implementation of telegram.Sender
type Sender struct {
	mock.Mock
}

// SendMessage sends a text message to the given chat
func (m *Sender) SendMessage(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}
