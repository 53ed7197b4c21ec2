package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand removes one item from its order.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates an item removal request.
func NewDeleteItemCommand(itemID kernel.UUID) (DeleteItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return DeleteItemCommand{}, err
	}

	return DeleteItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// ItemID returns the item to remove.
func (c DeleteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
