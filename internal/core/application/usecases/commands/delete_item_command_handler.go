package commands

import (
	"context"
)

// DeleteItemCommandHandler removes an item and refreshes the parent order
// total.
type DeleteItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteItemCommandHandler creates a handler for item removal.
func NewDeleteItemCommandHandler(uowFactory UoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the parent order, checks that it is editable, removes the
// item and recalculates the total. An order may end up with no items; its
// total is then zero.
func (h DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	parent, item, err := lockItemParent(ctx, orderRepo, itemRepo, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = parent.CanUpdate(); err != nil {
		return err
	}

	if err = itemRepo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	if err = recalculateTotal(ctx, orderRepo, itemRepo, parent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
