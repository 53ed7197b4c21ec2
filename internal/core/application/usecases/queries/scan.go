package queries

import (
	"context"
	"database/sql"
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectOrderColumns = `
		SELECT
			id,
			customer_id,
			status,
			total,
			created_at
		FROM sales_orders`

const selectItemColumns = `
		SELECT
			id,
			order_id,
			product_id,
			quantity,
			price
		FROM sales_items`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var status string

	if err := row.Scan(&id, &resp.CustomerID, &status, &resp.Total, &resp.CreatedAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status)

	return resp, nil
}

func scanItem(row scanner) (ItemResponse, error) {
	var resp ItemResponse
	var id, orderID uuid.UUID

	if err := row.Scan(&id, &orderID, &resp.ProductID, &resp.Quantity, &resp.Price); err != nil {
		return ItemResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ItemResponse{}, err
	}
	parentID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return ItemResponse{}, err
	}

	resp.ID = itemID
	resp.OrderID = parentID
	return resp, nil
}

// loadOrder returns the live order header or ObjectNotFoundError.
func loadOrder(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (OrderResponse, error) {
	row := db.WithContext(ctx).Raw(selectOrderColumns+`
		WHERE id = ? AND is_deleted = FALSE
	`, orderID.Bytes()).Row()

	resp, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	return resp, err
}

// snapshot runs fn in a read-only repeatable-read transaction so that every
// read inside it sees the same committed state.
func snapshot(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
}

// loadItems returns the items of an order in insertion order.
func loadItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]ItemResponse, error) {
	items := make([]ItemResponse, 0)

	rows, err := db.WithContext(ctx).Raw(selectItemColumns+`
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
