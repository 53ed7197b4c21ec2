package http_test

import (
	"context"

	httpin "salesorders/internal/adapters/in/http"
	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"
	"salesorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdateOrderHandler struct{ mock.Mock }

func (m *MockUpdateOrderHandler) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSoftDeleteOrderHandler struct{ mock.Mock }

func (m *MockSoftDeleteOrderHandler) Handle(ctx context.Context, cmd commands.SoftDeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateItemHandler struct{ mock.Mock }

func (m *MockCreateItemHandler) Handle(ctx context.Context, cmd commands.CreateItemCommand) (*order.Item, error) {
	args := m.Called(ctx, cmd)
	i, _ := args.Get(0).(*order.Item)
	return i, args.Error(1)
}

type MockUpdateItemHandler struct{ mock.Mock }

func (m *MockUpdateItemHandler) Handle(ctx context.Context, cmd commands.UpdateItemCommand) (*order.Item, error) {
	args := m.Called(ctx, cmd)
	i, _ := args.Get(0).(*order.Item)
	return i, args.Error(1)
}

type MockDeleteItemHandler struct{ mock.Mock }

func (m *MockDeleteItemHandler) Handle(ctx context.Context, cmd commands.DeleteItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderWithItemsResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.OrderWithItemsResponse)
	return resp, args.Error(1)
}

type MockGetOrderItemsHandler struct{ mock.Mock }

func (m *MockGetOrderItemsHandler) Handle(ctx context.Context, query queries.GetOrderItemsQuery) ([]queries.ItemResponse, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]queries.ItemResponse)
	return items, args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderResponse)
	return orders, args.Error(1)
}

type handlerMocks struct {
	createOrder     *MockCreateOrderHandler
	updateOrder     *MockUpdateOrderHandler
	deleteOrder     *MockDeleteOrderHandler
	softDeleteOrder *MockSoftDeleteOrderHandler
	createItem      *MockCreateItemHandler
	updateItem      *MockUpdateItemHandler
	deleteItem      *MockDeleteItemHandler
	getOrder        *MockGetOrderHandler
	getOrderItems   *MockGetOrderItemsHandler
	listOrders      *MockListOrdersHandler
}

func newHandlerMocks() *handlerMocks {
	return &handlerMocks{
		createOrder:     &MockCreateOrderHandler{},
		updateOrder:     &MockUpdateOrderHandler{},
		deleteOrder:     &MockDeleteOrderHandler{},
		softDeleteOrder: &MockSoftDeleteOrderHandler{},
		createItem:      &MockCreateItemHandler{},
		updateItem:      &MockUpdateItemHandler{},
		deleteItem:      &MockDeleteItemHandler{},
		getOrder:        &MockGetOrderHandler{},
		getOrderItems:   &MockGetOrderItemsHandler{},
		listOrders:      &MockListOrdersHandler{},
	}
}

func (m *handlerMocks) handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:     m.createOrder,
		UpdateOrder:     m.updateOrder,
		DeleteOrder:     m.deleteOrder,
		SoftDeleteOrder: m.softDeleteOrder,
		CreateItem:      m.createItem,
		UpdateItem:      m.updateItem,
		DeleteItem:      m.deleteItem,
		GetOrder:        m.getOrder,
		GetOrderItems:   m.getOrderItems,
		ListOrders:      m.listOrders,
	}
}

func (m *handlerMocks) assertExpectations(t mock.TestingT) {
	m.createOrder.AssertExpectations(t)
	m.updateOrder.AssertExpectations(t)
	m.deleteOrder.AssertExpectations(t)
	m.softDeleteOrder.AssertExpectations(t)
	m.createItem.AssertExpectations(t)
	m.updateItem.AssertExpectations(t)
	m.deleteItem.AssertExpectations(t)
	m.getOrder.AssertExpectations(t)
	m.getOrderItems.AssertExpectations(t)
	m.listOrders.AssertExpectations(t)
}
