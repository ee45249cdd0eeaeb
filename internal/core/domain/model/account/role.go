package account

import (
	"fmt"

	"supplymitra/internal/pkg/errs"
)

// Role identifies which side of the marketplace an actor is on.
// Vendors purchase materials; suppliers list materials and fulfil orders.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleVendor is a marketplace actor who places orders against a
	// supplier's catalog.
	RoleVendor

	// RoleSupplier is a marketplace actor who lists materials and moves
	// orders through the fulfilment lifecycle.
	RoleSupplier
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleVendor:   "vendor",
		RoleSupplier: "supplier",
	}
}

// getValidRoleStrings returns only valid Role values to support validation
// and parsing of external input.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleVendor:   "vendor",
		RoleSupplier: "supplier",
	}
}

// RoleFromString parses a role from its wire representation
// ("vendor" or "supplier"). Returns an error for any other input.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: RoleVendor, RoleSupplier.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role.
// This method implements the fmt.Stringer interface and is safe to call on
// any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
