package poller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkping/linkping/internal/metrics"
	"github.com/linkping/linkping/internal/service"
	"github.com/linkping/linkping/internal/telegram"
)

const (
	shortenCommand = "/shorten"

	usageMessage = "❌ Please provide a URL, e.g. /shorten https://example.com"
)

// Poller runs the long-poll loop against the messaging backend, advancing an
// offset cursor and turning /shorten commands into stored links. Exactly one
// Poller must run per bot token: concurrent pollers sharing a cursor would
// steal each other's updates.
type Poller struct {
	source  telegram.UpdateSource
	links   service.LinkService
	sender  telegram.Sender
	baseURL string
	backoff time.Duration
	offset  int64
	log     zerolog.Logger
}

// New creates a new update poller. baseURL is the public prefix used to
// build short links in confirmation messages; backoff is the wait between
// fetch attempts after a failure.
func New(source telegram.UpdateSource, links service.LinkService, sender telegram.Sender, baseURL string, backoff time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		source:  source,
		links:   links,
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
		backoff: backoff,
		log:     log,
	}
}

// Run executes the polling loop until ctx is cancelled. No fetch failure
// terminates the loop: errors are logged, the cursor stays put, and the
// fetch is retried after the backoff interval.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info().Msg("update poller started")

	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("update poller stopped")
			return
		default:
		}

		updates, err := p.source.GetUpdates(ctx, p.offset)
		metrics.PollCycles.Inc()
		if err != nil {
			if ctx.Err() != nil {
				p.log.Info().Msg("update poller stopped")
				return
			}

			metrics.PollErrors.Inc()
			p.log.Error().Err(err).Int64("offset", p.offset).Msg("failed to fetch updates, backing off")

			select {
			case <-time.After(p.backoff):
			case <-ctx.Done():
				p.log.Info().Msg("update poller stopped")
				return
			}
			continue
		}

		for _, update := range updates {
			// Ack-first: the cursor moves past this update before it is
			// handled, so a crash mid-batch drops the remainder instead of
			// replaying it with duplicate confirmations.
			p.offset = update.UpdateID + 1
			p.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate processes a single update. A failure here consumes the
// update; it is never re-fetched.
func (p *Poller) handleUpdate(ctx context.Context, update telegram.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	metrics.UpdatesProcessed.Inc()

	text := strings.TrimSpace(update.Message.Text)
	chatID := update.Message.Chat.ID

	if !strings.HasPrefix(text, shortenCommand) {
		return
	}

	fields := strings.Fields(text)
	if len(fields) < 2 {
		p.log.Info().Int64("chat_id", chatID).Msg("shorten command without URL")
		if err := p.sender.SendMessage(ctx, chatID, usageMessage); err != nil {
			p.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send usage message")
		}
		return
	}

	// The first whitespace-delimited token after the command is the whole
	// URL, accepted as-is.
	targetURL := fields[1]

	record, err := p.links.CreateLink(ctx, targetURL, chatID)
	if err != nil {
		p.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to create link")
		return
	}

	confirmation := fmt.Sprintf("✅ Short link created:\n%s/%s\n\nID: %s", p.baseURL, record.ID, record.ID)
	if err := p.sender.SendMessage(ctx, chatID, confirmation); err != nil {
		p.log.Error().Err(err).Int64("chat_id", chatID).Str("id", record.ID).Msg("failed to send confirmation")
	}
}
