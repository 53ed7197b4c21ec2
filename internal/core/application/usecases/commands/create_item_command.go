package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand adds one item to an existing order.
//
// Example:
//
//	cmd, err := NewCreateItemCommand(orderID, nil, "P-7", decimal.NewFromInt(1), decimal.RequireFromString("9.99"))
//	if err != nil {
//	    return err // ValueIs*Error for bad fields
//	}
//	item, err := NewCreateItemCommandHandler(uowFactory).Handle(ctx, cmd)
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	productID string
	quantity  decimal.Decimal
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateItemCommand validates the item fields. itemID is optional; a
// fresh identifier is generated when it is nil.
func NewCreateItemCommand(
	orderID kernel.UUID,
	itemID *kernel.UUID,
	productID string,
	quantity decimal.Decimal,
	price decimal.Decimal,
) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		itemID:    kernel.NewUUID(),
		productID: productID,
		quantity:  quantity,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		order.ValidateLine("", productID, quantity, price),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// OrderID returns the parent order.
func (c CreateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier the item will be stored under.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProductID returns the product reference.
func (c CreateItemCommand) ProductID() string {
	return c.productID
}

// Quantity returns the ordered quantity.
func (c CreateItemCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// Price returns the unit price.
func (c CreateItemCommand) Price() decimal.Decimal {
	return c.price
}

func (c *CreateItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateItemCommand) setItemID(itemID *kernel.UUID) error {
	if itemID == nil {
		return nil
	}

	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	c.itemID = *itemID
	return nil
}
