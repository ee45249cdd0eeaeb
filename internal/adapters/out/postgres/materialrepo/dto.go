// Package materialrepo provides data transfer objects and mapping functions
// for supplier catalog persistence.
package materialrepo

import (
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/material"

	"github.com/google/uuid"
)

// MaterialDTO represents the database structure for persisting catalog
// entries. Prices are stored in paise.
type MaterialDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID        uuid.UUID `gorm:"type:uuid;index"`
	Name              string
	PricePerUnit      int64
	AvailableQuantity int
	Unit              string
	Category          string `gorm:"index"`
}

// TableName specifies the database table name for catalog entries.
func (MaterialDTO) TableName() string {
	return "materials"
}

// fromDomain converts a material domain aggregate to its database representation.
func fromDomain(aggregate *material.Material) MaterialDTO {
	return MaterialDTO{
		ID:                aggregate.ID().Bytes(),
		SupplierID:        aggregate.SupplierID().Bytes(),
		Name:              aggregate.Name(),
		PricePerUnit:      aggregate.PricePerUnit().Paise(),
		AvailableQuantity: aggregate.AvailableQuantity(),
		Unit:              string(aggregate.Unit()),
		Category:          string(aggregate.Category()),
	}
}

// toDomain converts a database DTO to a material domain aggregate.
func toDomain(dto MaterialDTO) (*material.Material, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}
	pricePerUnit, err := kernel.NewMoney(dto.PricePerUnit)
	if err != nil {
		return nil, err
	}

	return material.RestoreMaterial(
		id,
		supplierID,
		dto.Name,
		pricePerUnit,
		dto.AvailableQuantity,
		material.Unit(dto.Unit),
		material.Category(dto.Category),
	)
}
