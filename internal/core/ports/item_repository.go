package ports

import (
	"context"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
)

// ItemRepository defines the persistence contract for order items.
type ItemRepository interface {
	// Add persists new items. All items are inserted or none.
	Add(ctx context.Context, items ...*order.Item) error

	// Update persists product, quantity and price of an existing item.
	// Returns ObjectNotFoundError if the item does not exist.
	Update(ctx context.Context, item *order.Item) error

	// Get retrieves an item by its unique identifier.
	// Returns ObjectNotFoundError if the item does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Item, error)

	// ListByOrder returns the current items of an order in insertion order.
	// An order without items yields an empty slice.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)

	// Delete removes a single item.
	// Returns ObjectNotFoundError if the item does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByOrder removes every item of an order and reports how many
	// rows were removed.
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) (int64, error)
}
