package telegram

import (
	"context"
)

// UpdateSource defines the interface for fetching updates from the
// messaging backend
type UpdateSource interface {
	// GetUpdates long-polls for updates at or after offset
	GetUpdates(ctx context.Context, offset int64) ([]Update, error)
}

// Sender defines the interface for sending text messages to a chat
type Sender interface {
	// SendMessage sends a text message to the given chat. It does not retry;
	// retry policy belongs to the caller.
	SendMessage(ctx context.Context, chatID int64, text string) error
}
