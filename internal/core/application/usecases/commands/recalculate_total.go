package commands

import (
	"context"

	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/domain/services"
	"salesorders/internal/core/ports"
)

// recalculateTotal reads the current items of o inside the running
// transaction, derives the total and persists it. Callers must hold the row
// lock on o taken by GetForUpdate (or have inserted o in this transaction).
func recalculateTotal(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	itemRepo ports.ItemRepository,
	o *order.Order,
) error {
	items, err := itemRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	if err = services.NewTotalsCalculator().Recalculate(o, items); err != nil {
		return err
	}

	return orderRepo.Update(ctx, o)
}
