package commands

import (
	"context"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/ports"
)

// UpdateItemCommandHandler applies a partial item update and refreshes the
// parent order total.
type UpdateItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateItemCommandHandler creates a handler for item updates.
func NewUpdateItemCommandHandler(uowFactory UoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the parent order, locks it, checks that it is editable,
// applies the patch to the item and recalculates the total.
// Returns the updated item.
func (h UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*order.Item, error) {
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

	parent, item, err := lockItemParent(ctx, orderRepo, itemRepo, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = parent.CanUpdate(); err != nil {
		return nil, err
	}

	if err = cmd.Apply(item); err != nil {
		return nil, err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
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

// lockItemParent locks the order owning itemID and returns it with the item
// re-read under that lock.
func lockItemParent(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	itemRepo ports.ItemRepository,
	itemID kernel.UUID,
) (*order.Order, *order.Item, error) {
	item, err := itemRepo.Get(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	parent, err := orderRepo.GetForUpdate(ctx, item.OrderID())
	if err != nil {
		return nil, nil, err
	}

	item, err = itemRepo.Get(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	return parent, item, nil
}
