package commands

import (
	"context"

	"salesorders/internal/core/domain/model/order"
)

// CreateItemCommandHandler adds an item to an editable order and refreshes
// the order total.
type CreateItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateItemCommandHandler creates a handler for item creation.
func NewCreateItemCommandHandler(uowFactory UoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the parent order, checks that it is editable, inserts the
// item and recalculates the total. Returns the stored item.
//
// Errors:
//   - ObjectNotFoundError when the parent order does not exist
//   - ObjectConflictError when the parent order is CLOSED or CANCELED, or the
//     item id is already taken
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*order.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	parent, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = parent.CanUpdate(); err != nil {
		return nil, err
	}

	item, err := order.NewItem(cmd.ItemID(), parent.ID(), cmd.ProductID(), cmd.Quantity(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = itemRepo.Add(ctx, item); err != nil {
		return nil, err
	}

	if err = recalculateTotal(ctx, orderRepo, itemRepo, parent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
