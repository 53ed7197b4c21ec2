// Package ports defines the persistence contracts of the sales order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order headers.
// Soft-deleted orders are invisible to every method except PurgeDeleted.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, total and soft-delete marker of an existing order.
	// Returns ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns ObjectNotFoundError if the order does not exist or was soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get and locks its row until the
	// surrounding transaction ends. Every operation that changes items or
	// the total of an order calls it first, so concurrent writers to the
	// same order are serialized and the totals read-then-write never works
	// on a stale item set.
	//
	// Example:
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   if err != nil {
	//       return err // ObjectNotFoundError for unknown ids
	//   }
	//   if err := o.CanUpdate(); err != nil {
	//       return err
	//   }
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order row. Items must be removed first by the caller
	// in the same transaction.
	// Returns ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListDeletedBefore returns the ids of soft-deleted orders whose deletion
	// happened before the given time, oldest first, at most limit entries.
	ListDeletedBefore(ctx context.Context, before time.Time, limit int) ([]kernel.UUID, error)
}
