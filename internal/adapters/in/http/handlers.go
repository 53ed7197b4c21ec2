package http

import (
	"context"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"
	"salesorders/internal/core/domain/model/order"
)

// Use case contracts the server depends on. The command and query handler
// structs satisfy them; tests substitute mocks.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}

	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	SoftDeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SoftDeleteOrderCommand) error
	}

	CreateItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateItemCommand) (*order.Item, error)
	}

	UpdateItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateItemCommand) (*order.Item, error)
	}

	DeleteItemHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteItemCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderWithItemsResponse, error)
	}

	GetOrderItemsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderItemsQuery) ([]queries.ItemResponse, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder     CreateOrderHandler
	UpdateOrder     UpdateOrderHandler
	DeleteOrder     DeleteOrderHandler
	SoftDeleteOrder SoftDeleteOrderHandler
	CreateItem      CreateItemHandler
	UpdateItem      UpdateItemHandler
	DeleteItem      DeleteItemHandler

	// Query handlers
	GetOrder      GetOrderHandler
	GetOrderItems GetOrderItemsHandler
	ListOrders    ListOrdersHandler
}
