package account

import (
	"errors"
	"strings"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a geocoded location owned by a user. Orders reference the
// vendor's delivery address and the supplier's pickup address; the
// nearby-supplier lookup searches supplier addresses by radius.
type Address struct {
	id       kernel.UUID
	userID   kernel.UUID
	label    string
	location kernel.GeoPoint

	isConstructed bool
}

// NewAddress creates a new Address with validation.
// The owning user id, a non-empty label, and a valid geo point are required.
func NewAddress(id kernel.UUID, userID kernel.UUID, label string, location kernel.GeoPoint) (*Address, error) {
	address := &Address{
		isConstructed: true,
	}

	if err := errors.Join(
		address.setID(id),
		address.setUserID(userID),
		address.setLabel(label),
		address.setLocation(location),
	); err != nil {
		return nil, err
	}

	return address, nil
}

// RestoreAddress reconstructs an Address from persistence.
func RestoreAddress(id kernel.UUID, userID kernel.UUID, label string, location kernel.GeoPoint) (*Address, error) {
	return NewAddress(id, userID, label, location)
}

// Validate ensures the Address instance was properly constructed.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// UserID returns the identifier of the owning user.
func (a *Address) UserID() kernel.UUID {
	return a.userID
}

// Label returns the human-readable address label.
func (a *Address) Label() string {
	return a.label
}

// Location returns the geocoded point of the address.
func (a *Address) Location() kernel.GeoPoint {
	return a.location
}

// IsOwnedBy reports whether the address belongs to the given user.
func (a *Address) IsOwnedBy(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}

func (a *Address) setLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}
	a.label = label
	return nil
}

func (a *Address) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
