package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler lists the items of an order.
type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderItemsQueryHandler creates a handler for item listings.
func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

// Handle returns the items in insertion order. An unknown or soft-deleted
// order yields ObjectNotFoundError rather than an empty list.
func (h GetOrderItemsQueryHandler) Handle(ctx context.Context, query GetOrderItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var items []ItemResponse
	err := snapshot(ctx, h.db, func(tx *gorm.DB) error {
		if _, err := loadOrder(ctx, tx, query.OrderID()); err != nil {
			return err
		}

		var err error
		items, err = loadItems(ctx, tx, query.OrderID())
		return err
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
