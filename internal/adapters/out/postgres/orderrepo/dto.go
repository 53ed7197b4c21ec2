// Package orderrepo persists sales order headers with GORM.
package orderrepo

import (
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the sales_orders table.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID string          `gorm:"type:varchar(64);not null;index"`
	Status     string          `gorm:"type:varchar(16);not null;index"`
	Total      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	IsDeleted  bool            `gorm:"not null;index"`
	DeletedAt  *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "sales_orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID(),
		Status:     string(aggregate.Status()),
		Total:      aggregate.Total(),
		IsDeleted:  aggregate.IsDeleted(),
		DeletedAt:  aggregate.DeletedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.CustomerID, order.Status(dto.Status), dto.Total, dto.DeletedAt)
}
