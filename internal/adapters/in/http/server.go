package http

import (
	"net/http"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	log      *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, log *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		log:      log,
	}
}

// ListOrders handles GET /api/v1/sales-orders - lists live orders, newest first.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	status := order.Unknown
	if params.Status != nil {
		status = order.Status(*params.Status)
	}

	var limit, offset int
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewListOrdersQuery(status, limit, offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = fromOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/sales-orders - creates an order with its items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var customerID string
	if body.CustomerID != nil {
		customerID = *body.CustomerID
	}
	var items []servers.NewItem
	if body.Items != nil {
		items = *body.Items
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, toOrderLines(items))
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// GetOrder handles GET /api/v1/sales-orders/{orderId} - reads an order with its items.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive,stylecheck // generated signature
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := fromOrderResponse(found.OrderResponse)
	items := fromItemResponses(found.Items)
	response.Items = &items

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/sales-orders/{orderId} - changes the status
// and optionally replaces every item. A total in the body is ignored.
func (s *Server) UpdateOrder(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive,stylecheck // generated signature
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.OrderPatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if body.Status != nil {
		st := order.Status(*body.Status)
		status = &st
	}
	var replacement *[]commands.OrderLine
	if body.Items != nil {
		lines := toOrderLines(*body.Items)
		replacement = &lines
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, status, replacement)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// DeleteOrder handles DELETE /api/v1/sales-orders/{orderId}. The default hard
// delete removes the order and its items; mode=soft only flags the order.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId, params servers.DeleteOrderParams) error { //nolint:revive,stylecheck // generated signature
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	mode := servers.Hard
	if params.Mode != nil {
		mode = *params.Mode
	}

	switch mode {
	case servers.Soft:
		cmd, err := commands.NewSoftDeleteOrderCommand(orderID)
		if err != nil {
			return s.fail(ctx, err)
		}
		if err := s.handlers.SoftDeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
			return s.fail(ctx, err)
		}
	case servers.Hard:
		cmd, err := commands.NewDeleteOrderCommand(orderID)
		if err != nil {
			return s.fail(ctx, err)
		}
		if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
			return s.fail(ctx, err)
		}
	default:
		return badRequest(ctx, "mode must be one of hard, soft")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderItems handles GET /api/v1/sales-orders/{orderId}/items.
func (s *Server) GetOrderItems(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive,stylecheck // generated signature
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderItemsQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.handlers.GetOrderItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromItemResponses(items))
}

// CreateItem handles POST /api/v1/sales-orders/{orderId}/items - adds an item
// to an editable order.
func (s *Server) CreateItem(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive,stylecheck // generated signature
	orderID, err := parseID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	line := toOrderLines([]servers.NewItem{body})[0]

	cmd, err := commands.NewCreateItemCommand(orderID, line.ItemID, line.ProductID, line.Quantity, line.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toItem(created))
}

// UpdateItem handles PATCH /api/v1/sales-items/{itemId} - partial item update.
func (s *Server) UpdateItem(ctx echo.Context, itemId servers.ItemId) error { //nolint:revive,stylecheck // generated signature
	itemID, err := parseID("itemId", itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ItemPatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, body.ProductID, body.Quantity, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toItem(updated))
}

// DeleteItem handles DELETE /api/v1/sales-items/{itemId}.
func (s *Server) DeleteItem(ctx echo.Context, itemId servers.ItemId) error { //nolint:revive,stylecheck // generated signature
	itemID, err := parseID("itemId", itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteItemCommand(itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.DeleteItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
