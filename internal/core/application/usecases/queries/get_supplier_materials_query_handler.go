package queries

import (
	"context"

	"supplymitra/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSupplierMaterialsQueryHandler reads a supplier's catalog from the database.
type GetSupplierMaterialsQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierMaterialsQueryHandler creates a handler for catalog queries.
func NewGetSupplierMaterialsQueryHandler(db *gorm.DB) GetSupplierMaterialsQueryHandler {
	return GetSupplierMaterialsQueryHandler{db: db}
}

// Handle executes the query and returns the catalog sorted by category and name.
func (h GetSupplierMaterialsQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierMaterialsQuery,
) ([]MaterialResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	materials := make([]MaterialResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price_per_unit,
			available_quantity,
			unit,
			category
		FROM materials
		WHERE supplier_id = ?
		ORDER BY category, name
	`, query.SupplierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var listing MaterialResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&listing.Name,
			&listing.PricePerUnitPaise,
			&listing.AvailableQuantity,
			&listing.Unit,
			&listing.Category,
		)
		if err != nil {
			return nil, err
		}

		if listing.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		materials = append(materials, listing)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
