package store

import (
	"context"
	"errors"

	"github.com/linkping/linkping/internal/domain"
)

// ErrConflict is returned by Put when the id is already present. Callers
// generate ids randomly, so hitting this means the generator should try again.
var ErrConflict = errors.New("short id already exists")

// LinkStore defines the interface for storing and resolving link records
type LinkStore interface {
	// Put inserts a new record keyed by id; returns ErrConflict if the id exists
	Put(ctx context.Context, id string, record *domain.LinkRecord) error

	// Get retrieves a record by id
	Get(ctx context.Context, id string) (*domain.LinkRecord, bool)
}
