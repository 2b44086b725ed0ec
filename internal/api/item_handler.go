package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/williamjohngardner/items-api/internal/api/shared"
	"github.com/williamjohngardner/items-api/internal/domain"
	"github.com/williamjohngardner/items-api/internal/platform/logger"
	"github.com/williamjohngardner/items-api/internal/service"
)

// CreateItemRequest represents the request body for creating an item.
// The name is deliberately unvalidated; an absent or empty name is stored
// as the empty string.
type CreateItemRequest struct {
	Name string `json:"name"`
}

// UpdateItemRequest represents the request body for updating an item.
type UpdateItemRequest struct {
	Name string `json:"name"`
}

// ItemResponse represents the response data for an item.
type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	itemService service.ItemService
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService service.ItemService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ItemHandler")
	}

	return &ItemHandler{
		itemService: itemService,
		logger:      logger.With(slog.String("component", "item_handler")),
	}
}

// parseItemID extracts and parses the item ID from the URL path.
// A missing or non-numeric ID can never match a stored item, so it is
// reported as not found rather than as a malformed request.
func parseItemID(r *http.Request) (int64, error) {
	pathID := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(pathID, 10, 64)
	if err != nil {
		return 0, NewHTTPError(http.StatusNotFound, "Item not found", err)
	}
	return id, nil
}

// ListItems handles GET /api/items requests
// It returns all items in insertion order.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	items, err := h.itemService.ListItems(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed items", slog.Int("count", len(items)))
	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// CreateItem handles POST /api/items requests
// It stores a new item and returns it with a 201 status.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("created item", slog.Int64("item_id", item.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// GetItem handles GET /api/items/{id} requests
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	item, err := h.itemService.GetItem(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// UpdateItem handles PUT /api/items/{id} requests
// It replaces the item's name and returns the updated item. The ID is
// immutable.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := parseItemID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateItem(r.Context(), id, req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("updated item", slog.Int64("item_id", item.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DeleteItem handles DELETE /api/items/{id} requests
// It removes the item and returns the removed item in the response body.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := parseItemID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	item, err := h.itemService.DeleteItem(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deleted item", slog.Int64("item_id", item.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// itemToResponse converts a domain.Item to an ItemResponse
func itemToResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:   item.ID,
		Name: item.Name,
	}
}

// itemsToResponse converts a slice of domain.Item to ItemResponse values.
// The result is never nil so an empty store serializes as [] rather than null.
func itemsToResponse(items []domain.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses
}
