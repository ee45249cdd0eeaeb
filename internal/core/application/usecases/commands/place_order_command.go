package commands

import (
	"errors"
	"fmt"
	"time"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// OrderLine is one requested catalog position in a place-order request:
// which material and how many units. The unit price is deliberately absent —
// prices always come from the supplier's catalog at placement time, never
// from the caller.
type OrderLine struct {
	MaterialID kernel.UUID
	Quantity   int
}

// PlaceOrderCommand represents a vendor's request to place an order against
// one supplier. It carries the participants, both address references, and the
// requested lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, vendorID, supplierID,
//	    vendorAddressID, supplierAddressID,
//	    []OrderLine{{MaterialID: tomatoID, Quantity: 10}}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	vendorID          kernel.UUID
	supplierID        kernel.UUID
	vendorAddressID   kernel.UUID
	supplierAddressID kernel.UUID
	lines             []OrderLine
	expectedDelivery  *time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// All identifiers must be valid UUIDs, at least one line is required, and
// every line must name a material and a positive quantity.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	supplierID kernel.UUID,
	vendorAddressID kernel.UUID,
	supplierAddressID kernel.UUID,
	lines []OrderLine,
	expectedDelivery *time.Time,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		expectedDelivery: expectedDelivery,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVendorID(vendorID),
		cmd.setSupplierID(supplierID),
		cmd.setVendorAddressID(vendorAddressID),
		cmd.setSupplierAddressID(supplierAddressID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the purchasing vendor's account identifier.
func (c PlaceOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// SupplierID returns the fulfilling supplier's account identifier.
func (c PlaceOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// VendorAddressID returns the vendor's delivery address reference.
func (c PlaceOrderCommand) VendorAddressID() kernel.UUID {
	return c.vendorAddressID
}

// SupplierAddressID returns the supplier's pickup address reference.
func (c PlaceOrderCommand) SupplierAddressID() kernel.UUID {
	return c.supplierAddressID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ExpectedDelivery returns the optional expected delivery time.
func (c PlaceOrderCommand) ExpectedDelivery() *time.Time {
	return c.expectedDelivery
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *PlaceOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	c.supplierID = supplierID
	return nil
}

func (c *PlaceOrderCommand) setVendorAddressID(vendorAddressID kernel.UUID) error {
	if err := vendorAddressID.Validate(); err != nil {
		return err
	}
	c.vendorAddressID = vendorAddressID
	return nil
}

func (c *PlaceOrderCommand) setSupplierAddressID(supplierAddressID kernel.UUID) error {
	if err := supplierAddressID.Validate(); err != nil {
		return err
	}
	c.supplierAddressID = supplierAddressID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for i, line := range lines {
		if err := line.MaterialID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("lineItems[%d].materialId", i), err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("lineItems[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
