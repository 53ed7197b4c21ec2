package commands

import (
	"context"

	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/ports"
)

// UpdateOrderCommandHandler applies a partial order update.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the order, checks that it is still editable, applies the new
// status, replaces the items when requested (delete all, insert the new set)
// and recalculates the total. Returns the updated order.
//
// Errors:
//   - ObjectNotFoundError when the order does not exist or was soft-deleted
//   - ObjectConflictError when the order is CLOSED or CANCELED
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	target, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = target.CanUpdate(); err != nil {
		return nil, err
	}

	if status, ok := cmd.Status(); ok {
		if err = target.ChangeStatus(status); err != nil {
			return nil, err
		}
	}

	if lines, ok := cmd.Replacement(); ok {
		if err = replaceItems(ctx, itemRepo, target, lines); err != nil {
			return nil, err
		}
	}

	if err = recalculateTotal(ctx, orderRepo, itemRepo, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

func replaceItems(ctx context.Context, itemRepo ports.ItemRepository, target *order.Order, lines []OrderLine) error {
	if _, err := itemRepo.DeleteByOrder(ctx, target.ID()); err != nil {
		return err
	}

	items, err := buildItems(target.ID(), lines)
	if err != nil {
		return err
	}

	return itemRepo.Add(ctx, items...)
}
