package commands

import (
	"context"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler inserts a new order and its items and derives the
// order total, all in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(created.ID(), created.Total())
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns a fresh order id, inserts the order with a zero total and
// the items, then recalculates the total from the stored items.
// Returns the persisted order with its computed total.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	items, err := buildItems(created.ID(), cmd.Lines())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = itemRepo.Add(ctx, items...); err != nil {
		return nil, err
	}

	if err = recalculateTotal(ctx, orderRepo, itemRepo, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
