package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a partial update of an order: an optional new status
// and an optional full replacement of the item set. The total is never part
// of the patch; it is always recomputed from the items.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	status       *order.Status
	replacement  []OrderLine
	replaceItems bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the patch.
//
// Parameters:
//   - orderID: the order to update
//   - status: new status, nil to keep the current one
//   - replacement: new item set, nil to keep the current items; a non-nil
//     empty slice removes all items
func NewUpdateOrderCommand(orderID kernel.UUID, status *order.Status, replacement *[]OrderLine) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setReplacement(replacement),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status and whether one was given.
func (c UpdateOrderCommand) Status() (order.Status, bool) {
	if c.status == nil {
		return order.Unknown, false
	}
	return *c.status, true
}

// Replacement returns the replacement item set and whether the items are
// to be replaced at all.
func (c UpdateOrderCommand) Replacement() ([]OrderLine, bool) {
	return copyLines(c.replacement), c.replaceItems
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	c.status = &s
	return nil
}

func (c *UpdateOrderCommand) setReplacement(replacement *[]OrderLine) error {
	if replacement == nil {
		return nil
	}

	if err := validateLines(*replacement); err != nil {
		return err
	}

	c.replacement = make([]OrderLine, len(*replacement))
	copy(c.replacement, *replacement)
	c.replaceItems = true
	return nil
}
