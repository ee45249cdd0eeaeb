package commands

import (
	"errors"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrUpdateMaterialCommandIsNotConstructed = errors.New(
		"UpdateMaterialCommand must be created via NewUpdateMaterialCommand constructor",
	)
)

// UpdateMaterialCommand represents a supplier's request to change an
// existing catalog listing: name, price, or stock level.
type UpdateMaterialCommand struct { //nolint:recvcheck //using for validation
	materialID        kernel.UUID
	supplierID        kernel.UUID
	name              string
	pricePerUnit      kernel.Money
	availableQuantity int

	guard guard.ConstructorGuard
}

// NewUpdateMaterialCommand creates a command to update a catalog listing.
func NewUpdateMaterialCommand(
	materialID kernel.UUID,
	supplierID kernel.UUID,
	name string,
	pricePerUnit kernel.Money,
	availableQuantity int,
) (UpdateMaterialCommand, error) {
	cmd := UpdateMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMaterialID(materialID),
		cmd.setSupplierID(supplierID),
		cmd.setName(name),
		cmd.setPricePerUnit(pricePerUnit),
		cmd.setAvailableQuantity(availableQuantity),
	); err != nil {
		return UpdateMaterialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMaterialCommandIsNotConstructed)
}

// MaterialID returns the identifier of the listing being updated.
func (c UpdateMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

// SupplierID returns the requesting supplier's account identifier.
func (c UpdateMaterialCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the new display name.
func (c UpdateMaterialCommand) Name() string {
	return c.name
}

// PricePerUnit returns the new catalog price.
func (c UpdateMaterialCommand) PricePerUnit() kernel.Money {
	return c.pricePerUnit
}

// AvailableQuantity returns the new stock level.
func (c UpdateMaterialCommand) AvailableQuantity() int {
	return c.availableQuantity
}

func (c *UpdateMaterialCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}
	c.materialID = materialID
	return nil
}

func (c *UpdateMaterialCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	c.supplierID = supplierID
	return nil
}

func (c *UpdateMaterialCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateMaterialCommand) setPricePerUnit(pricePerUnit kernel.Money) error {
	if err := pricePerUnit.Validate(); err != nil {
		return err
	}
	c.pricePerUnit = pricePerUnit
	return nil
}

func (c *UpdateMaterialCommand) setAvailableQuantity(availableQuantity int) error {
	if availableQuantity < 0 {
		return errs.NewValueIsInvalidError("availableQuantity")
	}
	c.availableQuantity = availableQuantity
	return nil
}
