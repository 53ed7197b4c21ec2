package order

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product line of a sales order. It belongs to exactly one order,
// referenced by orderID; the reference is used for lookup only.
//
// Invariants: productID is not empty, quantity > 0, price >= 0.
type Item struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID string
	quantity  decimal.Decimal
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem creates a line for the given order. All field violations are
// reported together.
//
// Example:
//
//	item, err := order.NewItem(kernel.NewUUID(), o.ID(), "P1",
//	    decimal.NewFromInt(2), decimal.RequireFromString("10.00"))
func NewItem(id, orderID kernel.UUID, productID string, quantity, price decimal.Decimal) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.SetProductID(productID),
		item.SetQuantity(quantity),
		item.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds an item loaded from storage. The same rules as NewItem
// apply so corrupted rows surface as errors instead of wrong totals.
func RestoreItem(id, orderID kernel.UUID, productID string, quantity, price decimal.Decimal) (*Item, error) {
	return NewItem(id, orderID, productID, quantity, price)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the product reference.
func (i *Item) ProductID() string {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() decimal.Decimal {
	return i.quantity
}

// Price returns the unit price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// LineTotal returns quantity * price without rounding.
func (i *Item) LineTotal() decimal.Decimal {
	return i.quantity.Mul(i.price)
}

// SetProductID replaces the product reference.
func (i *Item) SetProductID(productID string) error {
	if err := ValidateProductID("productID", productID); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

// SetQuantity replaces the quantity; it must stay > 0.
func (i *Item) SetQuantity(quantity decimal.Decimal) error {
	if err := ValidateQuantity("quantity", quantity); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

// SetPrice replaces the unit price; it must stay >= 0.
func (i *Item) SetPrice(price decimal.Decimal) error {
	if err := ValidatePrice("price", price); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}
