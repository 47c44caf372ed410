package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/linkping/linkping/internal/domain"
	shortenermocks "github.com/linkping/linkping/internal/shortener/mocks"
	"github.com/linkping/linkping/internal/store"
	storemocks "github.com/linkping/linkping/internal/store/mocks"
	telegrammocks "github.com/linkping/linkping/internal/telegram/mocks"
)

func newTestService(t *testing.T) (*storemocks.LinkStore, *shortenermocks.Generator, *telegrammocks.Sender, LinkService) {
	t.Helper()

	linkStore := &storemocks.LinkStore{}
	generator := &shortenermocks.Generator{}
	sender := &telegrammocks.Sender{}
	svc := NewLinkService(linkStore, generator, sender, zerolog.Nop())

	return linkStore, generator, sender, svc
}

func TestLinkService_CreateLink(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		linkStore, generator, _, svc := newTestService(t)
		ctx := context.Background()

		generator.On("GenerateID", ctx).Return("abcd1234", nil).Once()
		linkStore.On("Put", ctx, "abcd1234", mock.MatchedBy(func(r *domain.LinkRecord) bool {
			return r.ID == "abcd1234" && r.TargetURL == "https://example.com" && r.OwnerChatID == 42
		})).Return(nil).Once()

		record, err := svc.CreateLink(ctx, "https://example.com", 42)
		require.NoError(t, err)
		assert.Equal(t, "abcd1234", record.ID)
		assert.Equal(t, "https://example.com", record.TargetURL)
		assert.Equal(t, int64(42), record.OwnerChatID)

		linkStore.AssertExpectations(t)
		generator.AssertExpectations(t)
	})

	t.Run("regenerates on conflict", func(t *testing.T) {
		linkStore, generator, _, svc := newTestService(t)
		ctx := context.Background()

		generator.On("GenerateID", ctx).Return("taken123", nil).Once()
		generator.On("GenerateID", ctx).Return("fresh456", nil).Once()
		linkStore.On("Put", ctx, "taken123", mock.Anything).Return(store.ErrConflict).Once()
		linkStore.On("Put", ctx, "fresh456", mock.Anything).Return(nil).Once()

		record, err := svc.CreateLink(ctx, "https://example.com", 42)
		require.NoError(t, err)
		assert.Equal(t, "fresh456", record.ID)

		linkStore.AssertExpectations(t)
		generator.AssertExpectations(t)
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		linkStore, generator, _, svc := newTestService(t)
		ctx := context.Background()

		generator.On("GenerateID", ctx).Return("taken123", nil).Times(maxPutAttempts)
		linkStore.On("Put", ctx, "taken123", mock.Anything).Return(store.ErrConflict).Times(maxPutAttempts)

		_, err := svc.CreateLink(ctx, "https://example.com", 42)
		assert.ErrorIs(t, err, store.ErrConflict)

		linkStore.AssertExpectations(t)
	})

	t.Run("generator error", func(t *testing.T) {
		_, generator, _, svc := newTestService(t)
		ctx := context.Background()

		generator.On("GenerateID", ctx).Return("", assert.AnError).Once()

		_, err := svc.CreateLink(ctx, "https://example.com", 42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate id")
	})
}

func TestLinkService_Resolve(t *testing.T) {
	linkStore, _, _, svc := newTestService(t)
	ctx := context.Background()

	record := &domain.LinkRecord{ID: "abcd1234", TargetURL: "https://example.com", OwnerChatID: 42}
	linkStore.On("Get", ctx, "abcd1234").Return(record, true).Once()
	linkStore.On("Get", ctx, "missing1").Return(nil, false).Once()

	resolved, found := svc.Resolve(ctx, "abcd1234")
	assert.True(t, found)
	assert.Equal(t, record, resolved)

	_, found = svc.Resolve(ctx, "missing1")
	assert.False(t, found)

	linkStore.AssertExpectations(t)
}

func TestLinkService_NotifyVisit(t *testing.T) {
	record := &domain.LinkRecord{ID: "abcd1234", TargetURL: "https://example.com", OwnerChatID: 42}
	visit := &domain.VisitorEvent{
		IP:        "203.0.113.9",
		UserAgent: "curl/8.0",
		Time:      "2025-01-02T15:04:05Z",
	}

	t.Run("sends formatted notification to owner", func(t *testing.T) {
		_, _, sender, svc := newTestService(t)
		ctx := context.Background()

		sender.On("SendMessage", ctx, int64(42), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "https://example.com") &&
				strings.Contains(text, "203.0.113.9") &&
				strings.Contains(text, "curl/8.0") &&
				strings.Contains(text, "2025-01-02T15:04:05Z")
		})).Return(nil).Once()

		err := svc.NotifyVisit(ctx, record, visit)
		assert.NoError(t, err)

		sender.AssertExpectations(t)
	})

	t.Run("send failure is returned", func(t *testing.T) {
		_, _, sender, svc := newTestService(t)
		ctx := context.Background()

		sender.On("SendMessage", ctx, int64(42), mock.Anything).Return(assert.AnError).Once()

		err := svc.NotifyVisit(ctx, record, visit)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to notify chat 42")
	})
}
