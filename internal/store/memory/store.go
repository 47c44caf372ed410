package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/linkping/linkping/internal/domain"
	"github.com/linkping/linkping/internal/store"
)

// Store implements store.LinkStore using an in-memory map. Records are
// process-lifetime only; a restart loses all links.
type Store struct {
	data  map[string]*domain.LinkRecord
	mutex sync.RWMutex
}

// New creates a new in-memory link store
func New() *Store {
	return &Store{
		data: make(map[string]*domain.LinkRecord),
	}
}

// Put inserts a new record keyed by id. An existing id is reported as a
// conflict rather than overwritten.
func (s *Store) Put(ctx context.Context, id string, record *domain.LinkRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.data[id]; exists {
		return fmt.Errorf("put %q: %w", id, store.ErrConflict)
	}

	// Store a copy to prevent external modification
	s.data[id] = &domain.LinkRecord{
		ID:          record.ID,
		TargetURL:   record.TargetURL,
		OwnerChatID: record.OwnerChatID,
	}

	return nil
}

// Get retrieves a record by id
func (s *Store) Get(ctx context.Context, id string) (*domain.LinkRecord, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.data[id]
	if !exists {
		return nil, false
	}

	// Return a copy to prevent external modification
	return &domain.LinkRecord{
		ID:          record.ID,
		TargetURL:   record.TargetURL,
		OwnerChatID: record.OwnerChatID,
	}, true
}

// Len returns the number of stored records
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.data)
}

// Ensure Store implements the interface
var _ store.LinkStore = (*Store)(nil)
