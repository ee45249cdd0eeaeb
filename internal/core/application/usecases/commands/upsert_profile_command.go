package commands

import (
	"errors"
	"strings"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrUpsertProfileCommandIsNotConstructed = errors.New(
		"UpsertProfileCommand must be created via NewUpsertProfileCommand constructor",
	)
)

// UpsertProfileCommand represents a request to register an account or update
// an existing one's profile. The identity provider owns authentication; this
// command only maintains the marketplace-side profile record.
type UpsertProfileCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	fullname string
	email    string
	phone    string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewUpsertProfileCommand creates a command to register or update a profile.
func NewUpsertProfileCommand(
	userID kernel.UUID,
	fullname string,
	email string,
	phone string,
	role account.Role,
) (UpsertProfileCommand, error) {
	cmd := UpsertProfileCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setFullname(fullname),
		cmd.setEmail(email),
		cmd.setRole(role),
	); err != nil {
		return UpsertProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpsertProfileCommandIsNotConstructed)
}

// UserID returns the account identifier.
func (c UpsertProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Fullname returns the user's display name.
func (c UpsertProfileCommand) Fullname() string {
	return c.fullname
}

// Email returns the user's email address.
func (c UpsertProfileCommand) Email() string {
	return c.email
}

// Phone returns the user's contact phone, if any.
func (c UpsertProfileCommand) Phone() string {
	return c.phone
}

// Role returns the account role.
func (c UpsertProfileCommand) Role() account.Role {
	return c.role
}

func (c *UpsertProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *UpsertProfileCommand) setFullname(fullname string) error {
	if strings.TrimSpace(fullname) == "" {
		return errs.NewValueIsRequiredError("fullname")
	}
	c.fullname = fullname
	return nil
}

func (c *UpsertProfileCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *UpsertProfileCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
