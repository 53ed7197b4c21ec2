package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

var ErrSoftDeleteOrderCommandIsNotConstructed = errors.New(
	"SoftDeleteOrderCommand must be created via NewSoftDeleteOrderCommand constructor",
)

// SoftDeleteOrderCommand marks an order as deleted without removing rows.
type SoftDeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSoftDeleteOrderCommand creates a soft delete request.
func NewSoftDeleteOrderCommand(orderID kernel.UUID) (SoftDeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SoftDeleteOrderCommand{}, err
	}

	return SoftDeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SoftDeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrSoftDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to soft-delete.
func (c SoftDeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
