// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, whose rows own the order_items and bypass_requests child tables.
package orderrepo

import (
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderNumber       string             `gorm:"type:varchar(32);not null;uniqueIndex"`
	PickupRequestID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	DeliveryRequestID *uuid.UUID         `gorm:"type:uuid;index"`
	Status            int                `gorm:"type:int;not null;index"`
	Weight            float64            `gorm:"type:double precision;not null"`
	LaundryPrice      float64            `gorm:"type:double precision;not null"`
	Items             []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Bypasses          []BypassRequestDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting line items.
// Links to the order via foreign key. Position keeps the intake declaration
// order stable across reads.
type OrderItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Position      int       `gorm:"type:int;not null"`
	LaundryItemID uuid.UUID `gorm:"type:uuid;not null"`
	ItemName      string    `gorm:"type:varchar(255);not null"`
	ExpectedQty   int       `gorm:"type:int;not null"`
	CountedQty    int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for line item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// BypassRequestDTO represents the database structure for persisting bypass
// requests. Resolved rows stay in place as the order's approval history.
type BypassRequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderWorkerID uuid.UUID `gorm:"type:uuid;not null"`
	Note          string    `gorm:"type:text;not null"`
	Status        int       `gorm:"type:int;not null;index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for bypass request entities.
func (BypassRequestDTO) TableName() string {
	return "bypass_requests"
}

// fromDomain converts an order aggregate to its database representation.
// Maps the full aggregate including line items and bypass history.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       orderID,
			Position:      i,
			LaundryItemID: item.LaundryItemID().Bytes(),
			ItemName:      item.ItemName(),
			ExpectedQty:   item.ExpectedQty(),
			CountedQty:    item.CountedQty(),
		})
	}

	bypasses := make([]BypassRequestDTO, 0, len(aggregate.Bypasses()))
	for _, b := range aggregate.Bypasses() {
		bypasses = append(bypasses, BypassRequestDTO{
			ID:            b.ID().Bytes(),
			OrderID:       orderID,
			OrderWorkerID: b.OrderWorkerID().Bytes(),
			Note:          b.Note(),
			Status:        int(b.Status()),
			CreatedAt:     b.CreatedAt(),
		})
	}

	var deliveryRequestID *uuid.UUID
	if id := aggregate.DeliveryRequestID(); id != nil {
		raw := id.Bytes()
		deliveryRequestID = &raw
	}

	return OrderDTO{
		ID:                orderID,
		OrderNumber:       aggregate.OrderNumber(),
		PickupRequestID:   aggregate.PickupRequestID().Bytes(),
		DeliveryRequestID: deliveryRequestID,
		Status:            int(aggregate.Status()),
		Weight:            aggregate.Weight(),
		LaundryPrice:      aggregate.LaundryPrice(),
		Items:             items,
		Bypasses:          bypasses,
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate including children using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pickupRequestID, err := kernel.UUIDFromBytes(dto.PickupRequestID[:])
	if err != nil {
		return nil, err
	}

	var deliveryRequestID *kernel.UUID
	if dto.DeliveryRequestID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryRequestID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		deliveryRequestID = &dID
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	bypasses := make([]*order.BypassRequest, 0, len(dto.Bypasses))
	for _, bypassDto := range dto.Bypasses {
		b, bypassErr := bypassToDomain(bypassDto)
		if bypassErr != nil {
			return nil, bypassErr
		}
		bypasses = append(bypasses, b)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		pickupRequestID,
		deliveryRequestID,
		order.Status(dto.Status),
		dto.Weight,
		dto.LaundryPrice,
		items,
		bypasses,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// itemToDomain converts a line item DTO to its domain entity.
func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	laundryItemID, err := kernel.UUIDFromBytes(dto.LaundryItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(id, laundryItemID, dto.ItemName, dto.ExpectedQty, dto.CountedQty)
}

// bypassToDomain converts a bypass request DTO to its domain entity.
func bypassToDomain(dto BypassRequestDTO) (*order.BypassRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.OrderWorkerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreBypassRequest(id, workerID, dto.Note, order.BypassStatus(dto.Status), dto.CreatedAt)
}
