package order

import (
	"errors"
	"unicode/utf8"

	"salesorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Field rules shared by the order and item constructors, the commands that
// carry not-yet-persisted payloads and the item patch path. They are pure
// and never consult storage.
//
// The param argument names the offending field in the returned error, e.g.
// "items[2].quantity" for the third line of a creation payload.

// MaxReferenceLength bounds customer and product references, in characters.
const MaxReferenceLength = 64

// MaxTotal is the largest order total storage can hold (18 digits, 2 after
// the point).
var MaxTotal = decimal.RequireFromString("9999999999999999.99")

// ErrItemsAreRequired is returned when an order payload carries no items.
var ErrItemsAreRequired = errs.NewValueIsRequiredErrorWithCause("items", errors.New("at least one item is required"))

// ValidateCustomerID requires a non-empty customer reference of at most
// MaxReferenceLength characters.
func ValidateCustomerID(customerID string) error {
	return validateReference("customerID", customerID)
}

// ValidateProductID requires a non-empty product reference of at most
// MaxReferenceLength characters.
func ValidateProductID(param, productID string) error {
	return validateReference(param, productID)
}

// ValidateTotal requires 0 <= total <= MaxTotal.
func ValidateTotal(total decimal.Decimal) error {
	if total.IsNegative() || total.GreaterThan(MaxTotal) {
		return errs.NewValueIsOutOfRangeError("total", total.String(), 0, MaxTotal.String())
	}
	return nil
}

func validateReference(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(value); n > MaxReferenceLength {
		return errs.NewValueIsOutOfRangeError(param, n, 1, MaxReferenceLength)
	}
	return nil
}

// ValidateQuantity requires quantity > 0.
func ValidateQuantity(param string, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsOutOfRangeError(param, quantity.String(), "> 0", "unbounded")
	}
	return nil
}

// ValidatePrice requires price >= 0.
func ValidatePrice(param string, price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError(param, price.String(), 0, "unbounded")
	}
	return nil
}

// ValidateLine applies every item field rule and joins all violations.
// prefix is prepended to the field names ("items[0]" gives
// "items[0].productID"); an empty prefix yields the bare field names.
func ValidateLine(prefix, productID string, quantity, price decimal.Decimal) error {
	return errors.Join(
		ValidateProductID(fieldName(prefix, "productID"), productID),
		ValidateQuantity(fieldName(prefix, "quantity"), quantity),
		ValidatePrice(fieldName(prefix, "price"), price),
	)
}

func fieldName(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
