package commands

import (
	"errors"
	"fmt"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderLine is one item of an order creation or item replacement payload.
// ItemID is optional; a fresh identifier is generated when it is nil.
type OrderLine struct {
	ItemID    *kernel.UUID
	ProductID string
	Quantity  decimal.Decimal
	Price     decimal.Decimal
}

// validateLines checks every line and collects all violations, naming the
// offending fields "items[i].<field>".
func validateLines(lines []OrderLine) error {
	seen := make(map[kernel.UUID]int, len(lines))
	violations := make([]error, 0)

	for i, line := range lines {
		prefix := fmt.Sprintf("items[%d]", i)

		if err := order.ValidateLine(prefix, line.ProductID, line.Quantity, line.Price); err != nil {
			violations = append(violations, err)
		}

		if line.ItemID == nil {
			continue
		}
		if err := line.ItemID.Validate(); err != nil {
			violations = append(violations, errs.NewValueIsInvalidErrorWithCause(prefix+".id", err))
			continue
		}
		if first, ok := seen[*line.ItemID]; ok {
			violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
				prefix+".id",
				fmt.Errorf("duplicates items[%d].id", first),
			))
			continue
		}
		seen[*line.ItemID] = i
	}

	return errors.Join(violations...)
}

// buildItems turns validated lines into items of the given order.
func buildItems(orderID kernel.UUID, lines []OrderLine) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		itemID := kernel.NewUUID()
		if line.ItemID != nil {
			itemID = *line.ItemID
		}

		item, err := order.NewItem(itemID, orderID, line.ProductID, line.Quantity, line.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func copyLines(lines []OrderLine) []OrderLine {
	if lines == nil {
		return nil
	}
	out := make([]OrderLine, len(lines))
	copy(out, lines)
	return out
}
