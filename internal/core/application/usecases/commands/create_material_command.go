package commands

import (
	"errors"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/material"
	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrCreateMaterialCommandIsNotConstructed = errors.New(
		"CreateMaterialCommand must be created via NewCreateMaterialCommand constructor",
	)
)

// CreateMaterialCommand represents a supplier's request to list a new
// material in their catalog.
type CreateMaterialCommand struct { //nolint:recvcheck //using for validation
	materialID        kernel.UUID
	supplierID        kernel.UUID
	name              string
	pricePerUnit      kernel.Money
	availableQuantity int
	unit              material.Unit
	category          material.Category

	guard guard.ConstructorGuard
}

// NewCreateMaterialCommand creates a command to list a catalog material.
func NewCreateMaterialCommand(
	materialID kernel.UUID,
	supplierID kernel.UUID,
	name string,
	pricePerUnit kernel.Money,
	availableQuantity int,
	unit material.Unit,
	category material.Category,
) (CreateMaterialCommand, error) {
	cmd := CreateMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMaterialID(materialID),
		cmd.setSupplierID(supplierID),
		cmd.setName(name),
		cmd.setPricePerUnit(pricePerUnit),
		cmd.setAvailableQuantity(availableQuantity),
		cmd.setUnit(unit),
		cmd.setCategory(category),
	); err != nil {
		return CreateMaterialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrCreateMaterialCommandIsNotConstructed)
}

// MaterialID returns the identifier assigned to the new material.
func (c CreateMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

// SupplierID returns the owning supplier's account identifier.
func (c CreateMaterialCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the material's display name.
func (c CreateMaterialCommand) Name() string {
	return c.name
}

// PricePerUnit returns the catalog price for one unit.
func (c CreateMaterialCommand) PricePerUnit() kernel.Money {
	return c.pricePerUnit
}

// AvailableQuantity returns the initial stock level.
func (c CreateMaterialCommand) AvailableQuantity() int {
	return c.availableQuantity
}

// Unit returns the measurement unit the material is sold in.
func (c CreateMaterialCommand) Unit() material.Unit {
	return c.unit
}

// Category returns the catalog category.
func (c CreateMaterialCommand) Category() material.Category {
	return c.category
}

func (c *CreateMaterialCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}
	c.materialID = materialID
	return nil
}

func (c *CreateMaterialCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	c.supplierID = supplierID
	return nil
}

func (c *CreateMaterialCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMaterialCommand) setPricePerUnit(pricePerUnit kernel.Money) error {
	if err := pricePerUnit.Validate(); err != nil {
		return err
	}
	c.pricePerUnit = pricePerUnit
	return nil
}

func (c *CreateMaterialCommand) setAvailableQuantity(availableQuantity int) error {
	if availableQuantity < 0 {
		return errs.NewValueIsInvalidError("availableQuantity")
	}
	c.availableQuantity = availableQuantity
	return nil
}

func (c *CreateMaterialCommand) setUnit(unit material.Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	c.unit = unit
	return nil
}

func (c *CreateMaterialCommand) setCategory(category material.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}
