package commands_test

import (
	"testing"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(productID, qty, price string) commands.OrderLine {
	return commands.OrderLine{ProductID: productID, Quantity: dec(qty), Price: dec(price)}
}

func existingOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), "customer-1", status, decimal.Zero, nil)
	require.NoError(t, err)
	return o
}

func existingItem(t *testing.T, orderID kernel.UUID, qty, price string) *order.Item {
	t.Helper()
	item, err := order.RestoreItem(kernel.NewUUID(), orderID, "P-1", dec(qty), dec(price))
	require.NoError(t, err)
	return item
}
