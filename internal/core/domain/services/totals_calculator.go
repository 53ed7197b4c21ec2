package services

import (
	"salesorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// TotalPlaces is the number of decimal places an order total is rounded to.
const TotalPlaces int32 = 2

// TotalsCalculator derives an order total from its items.
//
// Line totals are multiplied and summed exactly; the sum is rounded once to
// TotalPlaces, half away from zero. An empty item set yields zero.
type TotalsCalculator struct{}

// NewTotalsCalculator creates a totals calculator.
func NewTotalsCalculator() TotalsCalculator {
	return TotalsCalculator{}
}

// Calculate returns Σ quantity*price over items. A total above
// order.MaxTotal is rejected as out of range.
func (TotalsCalculator) Calculate(items []*order.Item) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(item.LineTotal())
	}

	total = total.Round(TotalPlaces)
	if err := order.ValidateTotal(total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Recalculate computes the total of items and applies it to o. The items are
// expected to be the complete current item set of o.
func (c TotalsCalculator) Recalculate(o *order.Order, items []*order.Item) error {
	if err := o.Validate(); err != nil {
		return err
	}

	total, err := c.Calculate(items)
	if err != nil {
		return err
	}

	o.ApplyTotal(total)
	return nil
}
