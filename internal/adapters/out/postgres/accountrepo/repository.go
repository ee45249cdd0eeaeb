package accountrepo

import (
	"context"
	"errors"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddUser saves a new user account to the database.
func (r *GormAccountRepository) AddUser(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapStorageError("add user", err)
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// UpdateUser saves profile changes for an existing account.
func (r *GormAccountRepository) UpdateUser(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"fullname": dto.Fullname,
			"phone":    dto.Phone,
		})
	if result.Error != nil {
		return mapStorageError("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", user.ID().String())
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// GetUser retrieves a user account by ID.
func (r *GormAccountRepository) GetUser(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, mapStorageError("get user", err)
	}

	return userToDomain(dto)
}

// AddAddress saves a new address to the database.
func (r *GormAccountRepository) AddAddress(ctx context.Context, address *account.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(address)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapStorageError("add address", err)
	}

	r.tracker.TrackAggregate(address.ID(), address)
	return nil
}

// GetAddress retrieves an address by ID.
func (r *GormAccountRepository) GetAddress(ctx context.Context, id kernel.UUID) (*account.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, mapStorageError("get address", err)
	}

	return addressToDomain(dto)
}

// GetAddressesForUser retrieves every address saved by the user.
func (r *GormAccountRepository) GetAddressesForUser(
	ctx context.Context,
	userID kernel.UUID,
) ([]*account.Address, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AddressDTO
	err := r.db.WithContext(ctx).Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, mapStorageError("get user addresses", err)
	}

	addresses := make([]*account.Address, 0, len(dtos))
	for _, dto := range dtos {
		address, dtoErr := addressToDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		addresses = append(addresses, address)
	}

	return addresses, nil
}

// mapStorageError turns storage timeouts into UnavailableError so callers
// can answer with a retryable failure instead of an internal one.
func mapStorageError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewUnavailableError(op, err)
	}
	return err
}
