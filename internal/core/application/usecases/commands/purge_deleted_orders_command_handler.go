package commands

import (
	"context"
)

// PurgeDeletedOrdersCommandHandler hard-deletes expired soft-deleted orders
// together with their items.
type PurgeDeletedOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewPurgeDeletedOrdersCommandHandler creates a handler for the purge job.
func NewPurgeDeletedOrdersCommandHandler(uowFactory UoWFactory) PurgeDeletedOrdersCommandHandler {
	return PurgeDeletedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes one batch in a single transaction and returns the number of
// purged orders. Zero means nothing was due.
func (h PurgeDeletedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeDeletedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	ids, err := orderRepo.ListDeletedBefore(ctx, cmd.DeletedBefore(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	for _, id := range ids {
		if _, err = itemRepo.DeleteByOrder(ctx, id); err != nil {
			return 0, err
		}
		if err = orderRepo.Delete(ctx, id); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(ids), nil
}
