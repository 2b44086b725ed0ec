package store

import (
	"context"

	"github.com/williamjohngardner/items-api/internal/domain"
)

// ItemStore defines the interface for item persistence.
//
// The store is an ordered sequence: items come back from List in the order
// they were created, and Delete closes the gap it leaves (no tombstones).
// Implementations must be safe for concurrent use; each operation is atomic
// with respect to the others.
type ItemStore interface {
	// Create assigns a fresh ID to a new item with the given name, appends
	// it to the sequence, and returns the created item.
	Create(ctx context.Context, name string) (domain.Item, error)

	// List returns a snapshot of the full sequence in insertion order.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]domain.Item, error)

	// GetByID retrieves the first item whose ID matches.
	// Returns ErrItemNotFound if no item matches.
	GetByID(ctx context.Context, id int64) (domain.Item, error)

	// Update replaces the name of the item with the given ID and returns
	// the updated item. The ID itself is immutable.
	// Returns ErrItemNotFound if no item matches.
	Update(ctx context.Context, id int64, name string) (domain.Item, error)

	// Delete removes the item with the given ID from the sequence and
	// returns the removed item.
	// Returns ErrItemNotFound if no item matches.
	Delete(ctx context.Context, id int64) (domain.Item, error)
}
