package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/linkping/linkping/internal/domain"
	"github.com/linkping/linkping/internal/metrics"
	"github.com/linkping/linkping/internal/shortener"
	"github.com/linkping/linkping/internal/store"
	"github.com/linkping/linkping/internal/telegram"
)

// maxPutAttempts bounds identifier regeneration on store conflicts. With a
// 2^32 id space a single retry is already vanishingly rare.
const maxPutAttempts = 3

// linkService implements LinkService
type linkService struct {
	store     store.LinkStore
	generator shortener.Generator
	sender    telegram.Sender
	log       zerolog.Logger
}

// NewLinkService creates a new link service
func NewLinkService(linkStore store.LinkStore, generator shortener.Generator, sender telegram.Sender, log zerolog.Logger) LinkService {
	return &linkService{
		store:     linkStore,
		generator: generator,
		sender:    sender,
		log:       log,
	}
}

// CreateLink registers a destination URL for the given owner chat. The URL
// is stored as-is; no well-formedness check is applied. The record is fully
// written before the identifier is returned, so a redirect can never observe
// a partial record.
func (s *linkService) CreateLink(ctx context.Context, targetURL string, ownerChatID int64) (*domain.LinkRecord, error) {
	for attempt := 0; attempt < maxPutAttempts; attempt++ {
		id, err := s.generator.GenerateID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate id: %w", err)
		}

		record := &domain.LinkRecord{
			ID:          id,
			TargetURL:   targetURL,
			OwnerChatID: ownerChatID,
		}

		if err := s.store.Put(ctx, id, record); err != nil {
			if errors.Is(err, store.ErrConflict) {
				s.log.Warn().Str("id", id).Msg("id collision, regenerating")
				continue
			}
			return nil, fmt.Errorf("failed to store link: %w", err)
		}

		metrics.LinksCreated.Inc()
		s.log.Info().
			Str("id", id).
			Str("target_url", targetURL).
			Int64("owner_chat_id", ownerChatID).
			Msg("link created")

		return record, nil
	}

	return nil, fmt.Errorf("failed to store link after %d attempts: %w", maxPutAttempts, store.ErrConflict)
}

// Resolve looks up a link record by its short identifier
func (s *linkService) Resolve(ctx context.Context, id string) (*domain.LinkRecord, bool) {
	return s.store.Get(ctx, id)
}

// NotifyVisit sends a visitor notification to the record's owner chat. The
// send is not retried; the caller decides whether the failure matters.
func (s *linkService) NotifyVisit(ctx context.Context, record *domain.LinkRecord, visit *domain.VisitorEvent) error {
	text := fmt.Sprintf(
		"👀 New visitor on your link!\n\n🔗 Original URL: %s\n🌍 IP: %s\n📱 User Agent: %s\n⏰ Time: %s",
		record.TargetURL, visit.IP, visit.UserAgent, visit.Time,
	)

	if err := s.sender.SendMessage(ctx, record.OwnerChatID, text); err != nil {
		metrics.Notifications.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to notify chat %d: %w", record.OwnerChatID, err)
	}

	metrics.Notifications.WithLabelValues("ok").Inc()
	return nil
}

// Ensure linkService implements LinkService interface
var _ LinkService = (*linkService)(nil)
