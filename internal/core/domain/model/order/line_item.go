package order

import (
	"errors"
	"fmt"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via
// the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one catalog position within an order: a material, the number of
// units requested, and the unit price captured from the supplier's catalog at
// order-placement time. The unit price is frozen at creation so later catalog
// price changes do not affect existing orders.
//
// LineItem is an immutable value object.
type LineItem struct { //nolint:recvcheck //using for validation
	materialID kernel.UUID
	quantity   int
	unitPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
// Quantity must be greater than zero; the unit price must be a constructed
// Money value taken from the catalog, never from the caller.
func NewLineItem(materialID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMaterialID(materialID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// MaterialID returns the catalog material this line refers to.
func (i LineItem) MaterialID() kernel.UUID {
	return i.materialID
}

// Quantity returns the number of units requested.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at order placement.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Total returns quantity × unit price for this line.
func (i LineItem) Total() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *LineItem) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}
	i.materialID = materialID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
