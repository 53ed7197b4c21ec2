package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a sales order together
// with its first items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("C-1001", []OrderLine{
//	    {ProductID: "P-1", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(10)},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := NewCreateOrderCommandHandler(uowFactory).Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the whole creation payload.
// Every item is checked and all violations are returned joined together.
// The order always starts as NEW; there is no way to pick another status.
func NewCreateOrderCommand(customerID string, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the purchasing customer reference.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns a copy of the item lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return copyLines(c.lines)
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if err := order.ValidateCustomerID(customerID); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return order.ErrItemsAreRequired
	}

	if err := validateLines(lines); err != nil {
		return err
	}

	c.lines = copyLines(lines)
	return nil
}
