// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations: one orders row, its line items, and its append-only
// status history.
package orderrepo

import (
	"time"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by participant and by status for the actor order lists and the
// stale-pending sweep.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID          uuid.UUID `gorm:"type:uuid;index"`
	SupplierID        uuid.UUID `gorm:"type:uuid;index"`
	VendorAddressID   uuid.UUID `gorm:"type:uuid"`
	SupplierAddressID uuid.UUID `gorm:"type:uuid"`
	TotalAmount       int64
	Status            string `gorm:"index"`
	CreatedAt         time.Time
	ExpectedDelivery  *time.Time
	DeliveredAt       *time.Time
	CancelledAt       *time.Time

	Items   []OrderItemDTO `gorm:"foreignKey:OrderID"`
	History []HistoryDTO   `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Unit prices are stored in paise,
// frozen at placement time.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
	UnitPrice  int64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// HistoryDTO represents one entry of an order's status history. Seq keeps
// the append order stable without depending on timestamp resolution.
type HistoryDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey;autoIncrement:false"`
	Status  string
	At      time.Time
	Note    string
}

// TableName specifies the database table name for order status history.
func (HistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MaterialID: item.MaterialID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Paise(),
		})
	}

	history := make([]HistoryDTO, 0, len(aggregate.History()))
	for seq, entry := range aggregate.History() {
		history = append(history, HistoryDTO{
			OrderID: aggregate.ID().Bytes(),
			Seq:     seq,
			Status:  entry.Status().String(),
			At:      entry.At(),
			Note:    entry.Note(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		VendorID:          aggregate.VendorID().Bytes(),
		SupplierID:        aggregate.SupplierID().Bytes(),
		VendorAddressID:   aggregate.VendorAddressID().Bytes(),
		SupplierAddressID: aggregate.SupplierAddressID().Bytes(),
		TotalAmount:       aggregate.TotalAmount().Paise(),
		Status:            aggregate.Status().String(),
		CreatedAt:         aggregate.CreatedAt(),
		ExpectedDelivery:  aggregate.ExpectedDelivery(),
		DeliveredAt:       aggregate.DeliveredAt(),
		CancelledAt:       aggregate.CancelledAt(),
		Items:             items,
		History:           history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items and history using
// RestoreOrder, so corrupted rows fail the aggregate's structural checks.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}
	vendorAddressID, err := kernel.UUIDFromBytes(dto.VendorAddressID[:])
	if err != nil {
		return nil, err
	}
	supplierAddressID, err := kernel.UUIDFromBytes(dto.SupplierAddressID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		materialID, itemErr := kernel.UUIDFromBytes(itemDTO.MaterialID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewLineItem(materialID, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		status, entryErr := order.StatusFromString(entryDTO.Status)
		if entryErr != nil {
			return nil, entryErr
		}
		entry, entryErr := order.NewHistoryEntry(status, entryDTO.At, entryDTO.Note)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		vendorID,
		supplierID,
		vendorAddressID,
		supplierAddressID,
		items,
		totalAmount,
		status,
		history,
		dto.CreatedAt,
		dto.ExpectedDelivery,
		dto.DeliveredAt,
		dto.CancelledAt,
	)
}
