package order_test

import (
	"testing"
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create order in NEW status with zero total", func(t *testing.T) {
		o, err := order.NewOrder(validID, "C-1")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "C-1", o.CustomerID())
		assert.Equal(t, order.New, o.Status())
		assert.True(t, o.Total().IsZero())
		assert.False(t, o.IsDeleted())
	})

	t.Run("should join all violations", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerID")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_CanUpdate(t *testing.T) {
	testCases := []struct {
		status   order.Status
		conflict bool
	}{
		{order.New, false},
		{order.Open, false},
		{order.Closed, true},
		{order.Canceled, true},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			o := restoreOrder(t, tc.status)

			err := o.CanUpdate()
			if tc.conflict {
				require.ErrorIs(t, err, errs.ErrObjectConflict)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOrder_CanDelete(t *testing.T) {
	require.NoError(t, restoreOrder(t, order.New).CanDelete())
	require.NoError(t, restoreOrder(t, order.Open).CanDelete())
	require.NoError(t, restoreOrder(t, order.Canceled).CanDelete())
	require.ErrorIs(t, restoreOrder(t, order.Closed).CanDelete(), errs.ErrObjectConflict)
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should move between any listed statuses while editable", func(t *testing.T) {
		o := restoreOrder(t, order.Open)

		require.NoError(t, o.ChangeStatus(order.New))
		require.NoError(t, o.ChangeStatus(order.Closed))
		assert.Equal(t, order.Closed, o.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o := restoreOrder(t, order.New)

		err := o.ChangeStatus(order.Status("BOGUS"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should refuse changes to closed orders", func(t *testing.T) {
		o := restoreOrder(t, order.Closed)

		err := o.ChangeStatus(order.Open)

		require.ErrorIs(t, err, errs.ErrObjectConflict)
		assert.Equal(t, order.Closed, o.Status())
	})
}

func TestOrder_ApplyTotal(t *testing.T) {
	o := restoreOrder(t, order.Closed)

	o.ApplyTotal(decimal.RequireFromString("25.00"))

	assert.True(t, o.Total().Equal(decimal.NewFromInt(25)))
}

func TestOrder_MarkDeleted(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("should soft delete canceled order", func(t *testing.T) {
		o := restoreOrder(t, order.Canceled)

		require.NoError(t, o.MarkDeleted(now))
		assert.True(t, o.IsDeleted())
		assert.Equal(t, now, *o.DeletedAt())
	})

	t.Run("should refuse closed order", func(t *testing.T) {
		o := restoreOrder(t, order.Closed)

		require.ErrorIs(t, o.MarkDeleted(now), errs.ErrObjectConflict)
		assert.False(t, o.IsDeleted())
	})
}

func TestRestoreOrder(t *testing.T) {
	deletedAt := time.Now().UTC()

	o, err := order.RestoreOrder(kernel.NewUUID(), "C-9", order.Open, decimal.NewFromInt(7), &deletedAt)

	require.NoError(t, err)
	assert.True(t, o.Total().Equal(decimal.NewFromInt(7)))
	assert.True(t, o.IsDeleted())

	_, err = order.RestoreOrder(kernel.NewUUID(), "C-9", order.Unknown, decimal.Zero, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func restoreOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), "C-1", status, decimal.Zero, nil)
	require.NoError(t, err)
	return o
}
