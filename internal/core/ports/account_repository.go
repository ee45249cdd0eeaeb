package ports

import (
	"context"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for marketplace
// participants and their addresses.
type AccountRepository interface {
	// AddUser persists a new participant account.
	AddUser(ctx context.Context, user *account.User) error

	// UpdateUser persists profile changes to an existing account.
	UpdateUser(ctx context.Context, user *account.User) error

	// GetUser retrieves an account by its unique identifier.
	GetUser(ctx context.Context, id kernel.UUID) (*account.User, error)

	// AddAddress persists a new address owned by a participant.
	AddAddress(ctx context.Context, address *account.Address) error

	// GetAddress retrieves an address by its unique identifier.
	GetAddress(ctx context.Context, id kernel.UUID) (*account.Address, error)

	// GetAddressesForUser retrieves all addresses owned by the participant.
	GetAddressesForUser(ctx context.Context, userID kernel.UUID) ([]*account.Address, error)
}
