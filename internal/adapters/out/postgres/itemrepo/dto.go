// Package itemrepo persists sales order items with GORM.
package itemrepo

import (
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO is the row layout of the sales_items table. OrderID references
// sales_orders.id.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID string          `gorm:"type:varchar(64);not null"`
	Quantity  decimal.Decimal `gorm:"type:numeric;not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming convention.
func (ItemDTO) TableName() string {
	return "sales_items"
}

func fromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID().Bytes(),
		OrderID:   item.OrderID().Bytes(),
		ProductID: item.ProductID(),
		Quantity:  item.Quantity(),
		Price:     item.Price(),
	}
}

func toDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, dto.ProductID, dto.Quantity, dto.Price)
}
