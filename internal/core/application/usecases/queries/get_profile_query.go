package queries

import (
	"errors"
	"time"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/guard"
)

var (
	ErrGetProfileQueryIsNotConstructed = errors.New(
		"GetProfileQuery must be created via NewGetProfileQuery constructor",
	)
)

// GetProfileQuery retrieves an account's profile with its saved addresses.
type GetProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for an account profile.
func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the account identifier being looked up.
func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

// AddressResponse is one saved address on a profile.
type AddressResponse struct {
	ID       kernel.UUID
	Label    string
	Location kernel.GeoPoint
}

// GetProfileQueryResponse is an account profile with its addresses.
type GetProfileQueryResponse struct {
	ID        kernel.UUID
	Fullname  string
	Email     string
	Phone     string
	Role      string
	CreatedAt time.Time
	Addresses []AddressResponse
}
