package order

import (
	"errors"
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the sales order aggregate root. It owns the order header and the
// lifecycle rules; its line items are separate Item entities that reference
// the order by id.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, immutable after creation
//   - Must have a non-empty customer reference, immutable after creation
//   - Status is always one of NEW, OPEN, CLOSED, CANCELED
//   - Total is derived from the items and only written through ApplyTotal
//   - CLOSED and CANCELED orders reject further changes (see CanUpdate)
//   - CLOSED orders cannot be deleted (see CanDelete)
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the purchasing customer
	customerID string

	// status is the current lifecycle state
	status Status

	// total is Σ quantity*price over the current items, rounded to cents
	total decimal.Decimal

	// deletedAt is set once the order has been soft-deleted
	deletedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order header ready to be persisted together with its
// first items.
//
// Parameters:
//   - id: unique identifier for the order (must be valid UUID)
//   - customerID: customer reference (must not be empty)
//
// Every new order starts in NEW. The total starts at zero and is filled in by the totals recalculation that
// runs in the same transaction as the insert.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "C-1001")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, customerID string) (*Order, error) {
	o := &Order{
		total: decimal.Zero,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(New),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	status Status,
	total decimal.Decimal,
	deletedAt *time.Time,
) (*Order, error) {
	o := &Order{
		total:     total,
		deletedAt: deletedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer reference.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the derived order total.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

// DeletedAt returns the soft-delete time, or nil.
func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

// CanUpdate is the lifecycle guard for every change to the order or its
// items. It returns an ObjectConflictError while the order is CLOSED or
// CANCELED.
func (o *Order) CanUpdate() error {
	if !o.status.IsEditable() {
		return errs.NewObjectConflictError("order", o.id.String(), "closed or canceled orders cannot be modified")
	}
	return nil
}

// CanDelete is the lifecycle guard for hard and soft deletion. It returns an
// ObjectConflictError while the order is CLOSED.
func (o *Order) CanDelete() error {
	if !o.status.IsDeletable() {
		return errs.NewObjectConflictError("order", o.id.String(), "closed orders cannot be deleted")
	}
	return nil
}

// ChangeStatus moves the order to another listed status.
//
// Returns:
//   - ObjectConflictError if the order is not editable in its current status
//   - ValueIsInvalidError if status is not NEW, OPEN, CLOSED or CANCELED
func (o *Order) ChangeStatus(status Status) error {
	if err := o.CanUpdate(); err != nil {
		return err
	}
	return o.setStatus(status)
}

// ApplyTotal stores a freshly computed total. It is not subject to the
// lifecycle guard: the total is derived data and must follow the items even
// in the transaction that closes the order.
func (o *Order) ApplyTotal(total decimal.Decimal) {
	o.total = total
}

// MarkDeleted soft-deletes the order at the given time.
//
// Returns ObjectConflictError if the order is CLOSED.
func (o *Order) MarkDeleted(at time.Time) error {
	if err := o.CanDelete(); err != nil {
		return err
	}
	deletedAt := at.UTC()
	o.deletedAt = &deletedAt
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if err := ValidateCustomerID(customerID); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
