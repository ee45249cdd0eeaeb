// Package material contains the supplier catalog aggregate. A material is a
// produce listing with a unit price and an available stock level; orders
// capture the price at placement time and reserve stock from it.
package material

import (
	"errors"
	"fmt"
	"strings"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
)

// ErrMaterialIsNotConstructed is returned when a Material instance was not
// created through the NewMaterial factory method.
var ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")

// Unit is the unit of measure a material is sold in.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitG     Unit = "g"
	UnitLitre Unit = "litre"
	UnitMl    Unit = "ml"
	UnitPiece Unit = "piece"
)

// Category groups materials for browsing.
type Category string

const (
	CategoryVegetables Category = "Vegetables"
	CategoryFruits     Category = "Fruits"
	CategoryDairy      Category = "Dairy"
	CategoryGrains     Category = "Grains"
	CategoryOthers     Category = "Others"
)

// Validate checks the unit against the fixed set of units of measure.
func (u Unit) Validate() error {
	switch u {
	case UnitKg, UnitG, UnitLitre, UnitMl, UnitPiece:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("unit",
			fmt.Errorf("%q is not a valid unit", string(u)))
	}
}

// Validate checks the category against the fixed category set.
func (c Category) Validate() error {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryDairy, CategoryGrains, CategoryOthers:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%q is not a valid category", string(c)))
	}
}

// Material represents one supplier-owned catalog entry.
//
// Material follows these invariants:
//   - Must have a valid unique identifier and owning supplier
//   - Must have a non-empty name
//   - Price per unit must be a constructed Money value
//   - Available quantity never goes negative
type Material struct {
	id                kernel.UUID
	supplierID        kernel.UUID
	name              string
	pricePerUnit      kernel.Money
	availableQuantity int
	unit              Unit
	category          Category

	isConstructed bool
}

// NewMaterial creates a new Material with validation.
func NewMaterial(
	id kernel.UUID,
	supplierID kernel.UUID,
	name string,
	pricePerUnit kernel.Money,
	availableQuantity int,
	unit Unit,
	category Category,
) (*Material, error) {
	m := &Material{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setSupplierID(supplierID),
		m.setName(name),
		m.setPricePerUnit(pricePerUnit),
		m.setAvailableQuantity(availableQuantity),
		m.setUnit(unit),
		m.setCategory(category),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaterial reconstructs a Material from persistence.
func RestoreMaterial(
	id kernel.UUID,
	supplierID kernel.UUID,
	name string,
	pricePerUnit kernel.Money,
	availableQuantity int,
	unit Unit,
	category Category,
) (*Material, error) {
	return NewMaterial(id, supplierID, name, pricePerUnit, availableQuantity, unit, category)
}

// Validate ensures the Material instance was properly constructed.
func (m *Material) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMaterialIsNotConstructed
	}
	return nil
}

// ID returns the material's unique identifier.
func (m *Material) ID() kernel.UUID {
	return m.id
}

// SupplierID returns the owning supplier's account identifier.
func (m *Material) SupplierID() kernel.UUID {
	return m.supplierID
}

// Name returns the catalog display name.
func (m *Material) Name() string {
	return m.name
}

// PricePerUnit returns the current catalog price per unit.
func (m *Material) PricePerUnit() kernel.Money {
	return m.pricePerUnit
}

// AvailableQuantity returns the units currently in stock.
func (m *Material) AvailableQuantity() int {
	return m.availableQuantity
}

// Unit returns the unit of measure.
func (m *Material) Unit() Unit {
	return m.unit
}

// Category returns the browsing category.
func (m *Material) Category() Category {
	return m.category
}

// IsOwnedBy reports whether the material belongs to the given supplier.
func (m *Material) IsOwnedBy(supplierID kernel.UUID) bool {
	return m.supplierID.IsEqual(supplierID)
}

// Reserve withdraws the requested quantity from stock.
// Fails with InsufficientStockError when fewer units are available than
// requested; stock is left unchanged on failure.
func (m *Material) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > m.availableQuantity {
		return errs.NewInsufficientStockError(m.id.String(), quantity, m.availableQuantity)
	}
	m.availableQuantity -= quantity
	return nil
}

// Restock adds units back to stock, e.g. when an order is cancelled.
func (m *Material) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	m.availableQuantity += quantity
	return nil
}

// UpdateListing changes the mutable catalog fields.
func (m *Material) UpdateListing(name string, pricePerUnit kernel.Money, availableQuantity int) error {
	return errors.Join(
		m.setName(name),
		m.setPricePerUnit(pricePerUnit),
		m.setAvailableQuantity(availableQuantity),
	)
}

func (m *Material) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Material) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	m.supplierID = supplierID
	return nil
}

func (m *Material) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Material) setPricePerUnit(pricePerUnit kernel.Money) error {
	if err := pricePerUnit.Validate(); err != nil {
		return err
	}
	m.pricePerUnit = pricePerUnit
	return nil
}

func (m *Material) setAvailableQuantity(availableQuantity int) error {
	if availableQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("availableQuantity",
			fmt.Errorf("%d is negative", availableQuantity))
	}
	m.availableQuantity = availableQuantity
	return nil
}

func (m *Material) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	m.unit = unit
	return nil
}

func (m *Material) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	m.category = category
	return nil
}
