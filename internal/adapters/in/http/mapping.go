package http

import (
	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/generated/servers"
	"salesorders/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, matching the OpenAPI document.
	decimal.MarshalJSONWithoutQuotes = true
}

func parseID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return parsed, nil
}

func toOrderLines(items []servers.NewItem) []commands.OrderLine {
	lines := make([]commands.OrderLine, len(items))
	for i, item := range items {
		line := commands.OrderLine{
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if item.ProductID != nil {
			line.ProductID = *item.ProductID
		}
		if item.Id != nil {
			// A nil UUID leaves the zero kernel.UUID, which the command
			// reports as items[i].id.
			itemID, _ := kernel.UUIDFromBytes(item.Id[:])
			line.ItemID = &itemID
		}
		lines[i] = line
	}
	return lines
}

func toOrder(o *order.Order) servers.Order {
	return servers.Order{
		Id:         o.ID().Bytes(),
		CustomerID: o.CustomerID(),
		Status:     servers.OrderStatus(o.Status()),
		Total:      o.Total(),
	}
}

func toItem(i *order.Item) servers.Item {
	return servers.Item{
		Id:        i.ID().Bytes(),
		OrderID:   i.OrderID().Bytes(),
		ProductID: i.ProductID(),
		Quantity:  i.Quantity(),
		Price:     i.Price(),
	}
}

func fromOrderResponse(r queries.OrderResponse) servers.Order {
	createdAt := r.CreatedAt
	return servers.Order{
		Id:         r.ID.Bytes(),
		CustomerID: r.CustomerID,
		Status:     servers.OrderStatus(r.Status),
		Total:      r.Total,
		CreatedAt:  &createdAt,
	}
}

func fromItemResponses(items []queries.ItemResponse) []servers.Item {
	response := make([]servers.Item, len(items))
	for i, item := range items {
		response[i] = servers.Item{
			Id:        item.ID.Bytes(),
			OrderID:   item.OrderID.Bytes(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return response
}
