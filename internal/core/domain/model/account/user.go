package account

import (
	"errors"
	"strings"
	"time"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents a marketplace participant: a vendor or a supplier.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty lowercase email
//   - Must have a valid role (vendor or supplier)
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id        kernel.UUID
	fullname  string
	email     string
	phone     string
	role      Role
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a new User with validation.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - fullname: Display name; may be empty
//   - email: Contact email (required; stored lowercase)
//   - phone: Contact phone; may be empty
//   - role: vendor or supplier
//   - createdAt: Registration time (must not be zero)
func NewUser(
	id kernel.UUID,
	fullname string,
	email string,
	phone string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	user := &User{
		fullname:      strings.TrimSpace(fullname),
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setRole(role),
		user.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence without re-running
// creation-time defaults. The stored values are still validated.
func RestoreUser(
	id kernel.UUID,
	fullname string,
	email string,
	phone string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	return NewUser(id, fullname, email, phone, role, createdAt)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Fullname returns the user's display name.
func (u *User) Fullname() string {
	return u.fullname
}

// Email returns the user's lowercase contact email.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's contact phone, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns which side of the marketplace the user is on.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the registration time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdateProfile changes the mutable profile fields. Role and email identity
// are fixed at registration and cannot be changed here.
func (u *User) UpdateProfile(fullname string, phone string) {
	u.fullname = strings.TrimSpace(fullname)
	u.phone = phone
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = createdAt
	return nil
}
