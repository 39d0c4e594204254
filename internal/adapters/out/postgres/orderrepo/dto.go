// Package orderrepo persists the order aggregate. Items are stored as a JSON
// column; the priority rank is denormalized so the dispatch queue can be
// ordered in SQL.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID                         `gorm:"type:uuid;primaryKey"`
	Code         string                            `gorm:"size:64;not null;uniqueIndex:ux_orders_code"`
	CustomerName string                            `gorm:"not null"`
	Address      string                            `gorm:"not null"`
	Items        datatypes.JSONSlice[OrderItemDTO] `gorm:"not null"`
	Priority     string                            `gorm:"size:16;not null"`
	PriorityRank int                               `gorm:"not null;index:ix_orders_queue,priority:2"`
	Center       string                            `gorm:"size:32;not null;index"`
	Status       int                               `gorm:"not null;index:ix_orders_queue,priority:1"`
	CreatedAt    time.Time                         `gorm:"not null;index:ix_orders_queue,priority:3"`
	UpdatedAt    time.Time                         `gorm:"not null;autoUpdateTime:false"`
	CompletedAt  *time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one element of the items JSON column.
type OrderItemDTO struct {
	ProductRef     string `json:"productRef"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unitPriceMinor"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ProductRef:     item.ProductRef(),
			Quantity:       item.Quantity(),
			UnitPriceMinor: item.UnitPriceMinor(),
		})
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		Code:         o.Code(),
		CustomerName: o.CustomerName(),
		Address:      o.Address(),
		Items:        items,
		Priority:     o.Priority().String(),
		PriorityRank: o.Priority().Rank(),
		Center:       o.Center().String(),
		Status:       int(o.Status()),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
		CompletedAt:  o.CompletedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, in := range dto.Items {
		item, itemErr := order.NewItem(in.ProductRef, in.Quantity, in.UnitPriceMinor)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		dto.CustomerName,
		dto.Address,
		items,
		order.Priority(dto.Priority),
		kernel.Center(dto.Center),
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		utcPtr(dto.CompletedAt),
	)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
