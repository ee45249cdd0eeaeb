package materialrepo

import (
	"context"
	"errors"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/material"
	"supplymitra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMaterialRepository implements MaterialRepository using GORM.
type GormMaterialRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMaterialRepository creates a new GORM material repository.
func NewGormMaterialRepository(db *gorm.DB, tracker aggregateTracker) *GormMaterialRepository {
	return &GormMaterialRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry to the database.
func (r *GormMaterialRepository) Add(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapStorageError("add material", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing catalog entry to the database.
func (r *GormMaterialRepository) Update(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MaterialDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":               dto.Name,
			"price_per_unit":     dto.PricePerUnit,
			"available_quantity": dto.AvailableQuantity,
		})
	if result.Error != nil {
		return mapStorageError("update material", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("material", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MaterialDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", id.String())
		}
		return nil, mapStorageError("get material", err)
	}

	return toDomain(dto)
}

// GetAllForSupplier retrieves every catalog entry owned by the supplier.
func (r *GormMaterialRepository) GetAllForSupplier(
	ctx context.Context,
	supplierID kernel.UUID,
) ([]*material.Material, error) {
	if err := supplierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MaterialDTO
	err := r.db.WithContext(ctx).Find(&dtos, "supplier_id = ?", supplierID.Bytes()).Error
	if err != nil {
		return nil, mapStorageError("get supplier materials", err)
	}

	materials := make([]*material.Material, 0, len(dtos))
	for _, dto := range dtos {
		m, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		materials = append(materials, m)
	}

	return materials, nil
}

// ReserveStock decrements a material's available quantity by the requested
// amount. The decrement is conditional on enough stock remaining, so two
// orders racing for the last units cannot both succeed. When the condition
// fails the error distinguishes a missing material from a genuine shortage.
func (r *GormMaterialRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Model(&MaterialDTO{}).
		Where("id = ? AND available_quantity >= ?", id.Bytes(), quantity).
		Update("available_quantity", gorm.Expr("available_quantity - ?", quantity))
	if result.Error != nil {
		return mapStorageError("reserve stock", result.Error)
	}

	if result.RowsAffected == 0 {
		var available int
		err := r.db.WithContext(ctx).Model(&MaterialDTO{}).
			Select("available_quantity").
			Where("id = ?", id.Bytes()).
			Take(&available).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("material", id.String())
			}
			return mapStorageError("reserve stock", err)
		}
		return errs.NewInsufficientStockError(id.String(), quantity, available)
	}

	return nil
}

// mapStorageError turns storage timeouts into UnavailableError so callers
// can answer with a retryable failure instead of an internal one.
func mapStorageError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewUnavailableError(op, err)
	}
	return err
}
