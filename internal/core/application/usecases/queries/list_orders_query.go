package queries

import (
	"errors"

	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through live orders, newest first, optionally
// filtered by status.
type ListOrdersQuery struct {
	status order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the filter and paging. An Unknown status
// lists every status; a zero limit means DefaultListLimit.
func NewListOrdersQuery(status order.Status, limit, offset int) (ListOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if limit == 0 {
		limit = DefaultListLimit
	}

	if err := errors.Join(
		validateRange("limit", limit, 1, MaxListLimit),
		validateRange("offset", offset, 0, nil),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		status: status,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, Unknown for none.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of orders skipped.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

func validateRange(param string, value, minValue int, maxValue any) error {
	if value < minValue {
		return errs.NewValueIsOutOfRangeError(param, value, minValue, maxValueOrUnbounded(maxValue))
	}
	if maxInt, ok := maxValue.(int); ok && value > maxInt {
		return errs.NewValueIsOutOfRangeError(param, value, minValue, maxInt)
	}
	return nil
}

func maxValueOrUnbounded(maxValue any) any {
	if maxValue == nil {
		return "unbounded"
	}
	return maxValue
}
