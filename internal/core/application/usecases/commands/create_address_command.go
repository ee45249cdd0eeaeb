package commands

import (
	"errors"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrCreateAddressCommandIsNotConstructed = errors.New(
		"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
	)
)

// CreateAddressCommand represents a user's request to save a new address.
// Vendors use addresses as delivery destinations; supplier addresses are
// pickup points and drive the nearby-supplier lookup.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID
	label     string
	location  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates a command to save an address.
func NewCreateAddressCommand(
	addressID kernel.UUID,
	userID kernel.UUID,
	label string,
	location kernel.GeoPoint,
) (CreateAddressCommand, error) {
	cmd := CreateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setUserID(userID),
		cmd.setLabel(label),
		cmd.setLocation(location),
	); err != nil {
		return CreateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// AddressID returns the identifier assigned to the new address.
func (c CreateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

// UserID returns the owning account's identifier.
func (c CreateAddressCommand) UserID() kernel.UUID {
	return c.userID
}

// Label returns the human-readable address label.
func (c CreateAddressCommand) Label() string {
	return c.label
}

// Location returns the address coordinates.
func (c CreateAddressCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}

func (c *CreateAddressCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateAddressCommand) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}
	c.label = label
	return nil
}

func (c *CreateAddressCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
