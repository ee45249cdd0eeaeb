package queries

import (
	"errors"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrGetSupplierMaterialsQueryIsNotConstructed = errors.New(
		"GetSupplierMaterialsQuery must be created via NewGetSupplierMaterialsQuery constructor",
	)
)

// GetSupplierMaterialsQuery retrieves a supplier's catalog.
// Vendors browse it before placing an order; suppliers use it to review
// their own listings.
type GetSupplierMaterialsQuery struct {
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSupplierMaterialsQuery creates a query for a supplier's catalog.
func NewGetSupplierMaterialsQuery(supplierID kernel.UUID) (GetSupplierMaterialsQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierMaterialsQuery{}, err
	}

	return GetSupplierMaterialsQuery{
		supplierID: supplierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierMaterialsQueryIsNotConstructed)
}

// SupplierID returns the catalog owner's identifier.
func (q GetSupplierMaterialsQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

// MaterialResponse is one catalog listing.
type MaterialResponse struct {
	ID                kernel.UUID
	Name              string
	PricePerUnitPaise int64
	AvailableQuantity int
	Unit              string
	Category          string
}
