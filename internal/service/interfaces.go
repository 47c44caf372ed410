package service

import (
	"context"

	"github.com/linkping/linkping/internal/domain"
)

// LinkService defines the interface for link registration and resolution
type LinkService interface {
	// CreateLink registers a destination URL for the given owner chat and
	// returns the stored record with its fresh identifier
	CreateLink(ctx context.Context, targetURL string, ownerChatID int64) (*domain.LinkRecord, error)

	// Resolve looks up a link record by its short identifier
	Resolve(ctx context.Context, id string) (*domain.LinkRecord, bool)

	// NotifyVisit sends a visitor notification to the record's owner chat
	NotifyVisit(ctx context.Context, record *domain.LinkRecord, visit *domain.VisitorEvent) error
}
