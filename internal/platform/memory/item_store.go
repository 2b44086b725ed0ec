package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/williamjohngardner/items-api/internal/domain"
	"github.com/williamjohngardner/items-api/internal/store"
)

// MemoryItemStore implements the store.ItemStore interface with an
// in-process ordered slice as the storage backend.
//
// A sync.RWMutex makes every operation atomic with respect to concurrent
// requests, which is the whole concurrency contract of this service: there
// are no transactions spanning multiple calls.
type MemoryItemStore struct {
	mu     sync.RWMutex
	items  []domain.Item
	lastID int64
	logger *slog.Logger
}

// NewMemoryItemStore creates a new in-memory implementation of the ItemStore
// interface. If logger is nil, a default logger will be used.
func NewMemoryItemStore(logger *slog.Logger) *MemoryItemStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoryItemStore{
		items:  make([]domain.Item, 0),
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure MemoryItemStore implements store.ItemStore interface
var _ store.ItemStore = (*MemoryItemStore)(nil)

// nextID returns a fresh item ID. IDs are seeded from the wall clock in
// milliseconds and forced strictly monotonic, so two creations within the
// same millisecond still get distinct IDs.
// Callers must hold the write lock.
func (s *MemoryItemStore) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Create implements store.ItemStore.Create
// It assigns a fresh ID, appends the item to the sequence, and returns it.
func (s *MemoryItemStore) Create(ctx context.Context, name string) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.Item{
		ID:   s.nextID(),
		Name: name,
	}
	s.items = append(s.items, item)

	s.logger.Debug("item created", slog.Int64("id", item.ID))
	return item, nil
}

// List implements store.ItemStore.List
// It returns a snapshot copy of the sequence so callers can never observe
// or cause mutations through the returned slice.
func (s *MemoryItemStore) List(ctx context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Item, len(s.items))
	copy(snapshot, s.items)
	return snapshot, nil
}

// GetByID implements store.ItemStore.GetByID
// It scans the sequence for the first item whose ID matches.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *MemoryItemStore) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, store.ErrItemNotFound
}

// Update implements store.ItemStore.Update
// It replaces the name of the matching item in place; the ID and the item's
// position in the sequence are unchanged.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *MemoryItemStore) Update(ctx context.Context, id int64, name string) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Name = name
			s.logger.Debug("item updated", slog.Int64("id", id))
			return s.items[i], nil
		}
	}
	return domain.Item{}, store.ErrItemNotFound
}

// Delete implements store.ItemStore.Delete
// It removes the matching item and shifts subsequent items down; there are
// no tombstones. Returns store.ErrItemNotFound if the item does not exist.
func (s *MemoryItemStore) Delete(ctx context.Context, id int64) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.logger.Debug("item deleted", slog.Int64("id", id))
			return removed, nil
		}
	}
	return domain.Item{}, store.ErrItemNotFound
}
