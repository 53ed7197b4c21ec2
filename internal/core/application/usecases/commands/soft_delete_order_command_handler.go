package commands

import (
	"context"
	"time"
)

// SoftDeleteOrderCommandHandler sets the deleted marker of an order. Items
// are kept until the purge job removes the order for good.
type SoftDeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewSoftDeleteOrderCommandHandler creates a handler for soft deletes.
func NewSoftDeleteOrderCommandHandler(uowFactory UoWFactory) SoftDeleteOrderCommandHandler {
	return SoftDeleteOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle locks the order, applies the same delete guard as a hard delete and
// persists the deleted marker. A soft-deleted order is no longer found by
// reads or mutations.
func (h SoftDeleteOrderCommandHandler) Handle(ctx context.Context, cmd SoftDeleteOrderCommand) error {
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

	target, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.MarkDeleted(h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
