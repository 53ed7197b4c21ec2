// Package queries contains read operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL and return flat
// response structs; they never go through the aggregates or the unit of
// work.
package queries

import (
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse is the read model of an order header.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID string
	Status     order.Status
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// ItemResponse is the read model of an order item.
type ItemResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	ProductID string
	Quantity  decimal.Decimal
	Price     decimal.Decimal
}

// OrderWithItemsResponse is an order header together with its current items.
type OrderWithItemsResponse struct {
	OrderResponse
	Items []ItemResponse
}
