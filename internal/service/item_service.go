package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/williamjohngardner/items-api/internal/domain"
	"github.com/williamjohngardner/items-api/internal/platform/logger"
	"github.com/williamjohngardner/items-api/internal/store"
)

// ItemServiceError is a custom error type for item service errors.
type ItemServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ItemServiceError.
func (e *ItemServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("item service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("item service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ItemServiceError) Unwrap() error {
	return e.Err
}

// NewItemServiceError creates a new ItemServiceError.
func NewItemServiceError(operation, message string, err error) *ItemServiceError {
	return &ItemServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ItemService provides item-related operations
type ItemService interface {
	// CreateItem stores a new item with the given name and returns it
	// with its assigned ID.
	CreateItem(ctx context.Context, name string) (domain.Item, error)

	// ListItems returns all items in insertion order.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// GetItem retrieves an item by its ID.
	GetItem(ctx context.Context, id int64) (domain.Item, error)

	// UpdateItem replaces the name of an existing item and returns the
	// updated item.
	UpdateItem(ctx context.Context, id int64, name string) (domain.Item, error)

	// DeleteItem removes an item by its ID and returns the removed item.
	DeleteItem(ctx context.Context, id int64) (domain.Item, error)
}

// itemServiceImpl implements the ItemService interface
type itemServiceImpl struct {
	store  store.ItemStore
	logger *slog.Logger
}

// NewItemService creates a new ItemService.
// It returns an error if the item store is nil.
func NewItemService(itemStore store.ItemStore, logger *slog.Logger) (ItemService, error) {
	if itemStore == nil {
		return nil, fmt.Errorf("item store cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &itemServiceImpl{
		store:  itemStore,
		logger: logger.With(slog.String("component", "item_service")),
	}, nil
}

// CreateItem implements ItemService.CreateItem
func (s *itemServiceImpl) CreateItem(ctx context.Context, name string) (domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := s.store.Create(ctx, name)
	if err != nil {
		log.Error("failed to create item",
			slog.String("error", err.Error()))
		return domain.Item{}, NewItemServiceError("create_item", "failed to save item", err)
	}

	log.Debug("created item",
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name))

	return item, nil
}

// ListItems implements ItemService.ListItems
func (s *itemServiceImpl) ListItems(ctx context.Context) ([]domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	items, err := s.store.List(ctx)
	if err != nil {
		log.Error("failed to list items",
			slog.String("error", err.Error()))
		return nil, NewItemServiceError("list_items", "failed to list items", err)
	}

	log.Debug("listed items", slog.Int("count", len(items)))

	return items, nil
}

// GetItem implements ItemService.GetItem
func (s *itemServiceImpl) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("item not found", slog.Int64("item_id", id))
			return domain.Item{}, NewItemServiceError("get_item", "item not found", store.ErrItemNotFound)
		}

		log.Error("failed to retrieve item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return domain.Item{}, NewItemServiceError("get_item", "failed to retrieve item", err)
	}

	return item, nil
}

// UpdateItem implements ItemService.UpdateItem
func (s *itemServiceImpl) UpdateItem(ctx context.Context, id int64, name string) (domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := s.store.Update(ctx, id, name)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("item not found for update", slog.Int64("item_id", id))
			return domain.Item{}, NewItemServiceError("update_item", "item not found", store.ErrItemNotFound)
		}

		log.Error("failed to update item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return domain.Item{}, NewItemServiceError("update_item", "failed to update item", err)
	}

	log.Debug("updated item",
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name))

	return item, nil
}

// DeleteItem implements ItemService.DeleteItem
func (s *itemServiceImpl) DeleteItem(ctx context.Context, id int64) (domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := s.store.Delete(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("item not found for delete", slog.Int64("item_id", id))
			return domain.Item{}, NewItemServiceError("delete_item", "item not found", store.ErrItemNotFound)
		}

		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return domain.Item{}, NewItemServiceError("delete_item", "failed to delete item", err)
	}

	log.Debug("deleted item", slog.Int64("item_id", id))

	return item, nil
}
