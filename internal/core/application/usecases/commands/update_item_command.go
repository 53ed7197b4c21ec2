package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand is a partial item update; nil fields are left unchanged.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	productID *string
	quantity  *decimal.Decimal
	price     *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand validates the fields present in the patch.
func NewUpdateItemCommand(
	itemID kernel.UUID,
	productID *string,
	quantity *decimal.Decimal,
	price *decimal.Decimal,
) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errProduct, errQuantity, errPrice error
	if productID != nil {
		errProduct = order.ValidateProductID("productID", *productID)
		p := *productID
		cmd.productID = &p
	}
	if quantity != nil {
		errQuantity = order.ValidateQuantity("quantity", *quantity)
		q := *quantity
		cmd.quantity = &q
	}
	if price != nil {
		errPrice = order.ValidatePrice("price", *price)
		p := *price
		cmd.price = &p
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		errProduct,
		errQuantity,
		errPrice,
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Apply writes the present patch fields onto item.
func (c UpdateItemCommand) Apply(item *order.Item) error {
	var errProduct, errQuantity, errPrice error
	if c.productID != nil {
		errProduct = item.SetProductID(*c.productID)
	}
	if c.quantity != nil {
		errQuantity = item.SetQuantity(*c.quantity)
	}
	if c.price != nil {
		errPrice = item.SetPrice(*c.price)
	}
	return errors.Join(errProduct, errQuantity, errPrice)
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
