// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/material"
)

// MaterialRepository defines the persistence contract for supplier catalog
// entries.
type MaterialRepository interface {
	// Add persists a new material listing.
	Add(ctx context.Context, aggregate *material.Material) error

	// Update persists changes to an existing material listing.
	Update(ctx context.Context, aggregate *material.Material) error

	// Get retrieves a material by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*material.Material, error)

	// GetAllForSupplier retrieves every material owned by the supplier.
	GetAllForSupplier(ctx context.Context, supplierID kernel.UUID) ([]*material.Material, error)

	// ReserveStock atomically withdraws quantity units from the material's
	// available stock. The decrement is conditional on enough stock being
	// available at write time, so concurrent orders cannot oversell:
	// the loser fails with an InsufficientStockError.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error
}
