package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for unknown or soft-deleted orders.
// The header and the items are read from one snapshot, so the total always
// matches the returned items.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderWithItemsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderWithItemsResponse{}, err
	}

	var resp OrderWithItemsResponse
	err := snapshot(ctx, h.db, func(tx *gorm.DB) error {
		header, err := loadOrder(ctx, tx, query.OrderID())
		if err != nil {
			return err
		}

		items, err := loadItems(ctx, tx, query.OrderID())
		if err != nil {
			return err
		}

		resp = OrderWithItemsResponse{
			OrderResponse: header,
			Items:         items,
		}
		return nil
	})
	if err != nil {
		return OrderWithItemsResponse{}, err
	}

	return resp, nil
}
