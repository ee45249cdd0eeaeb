// Package accountrepo provides data transfer objects and mapping functions
// for user and address persistence.
package accountrepo

import (
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fullname  string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	Role      string `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO represents the database structure for persisting addresses.
// Coordinates are stored as plain WGS84 columns; the nearby-supplier search
// computes distances over them in SQL.
type AddressDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Label     string
	Longitude float64
	Latitude  float64
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func userFromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:        user.ID().Bytes(),
		Fullname:  user.Fullname(),
		Email:     user.Email(),
		Phone:     user.Phone(),
		Role:      user.Role().String(),
		CreatedAt: user.CreatedAt(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Fullname, dto.Email, dto.Phone, role, dto.CreatedAt)
}

func addressFromDomain(address *account.Address) AddressDTO {
	return AddressDTO{
		ID:        address.ID().Bytes(),
		UserID:    address.UserID().Bytes(),
		Label:     address.Label(),
		Longitude: address.Location().Longitude(),
		Latitude:  address.Location().Latitude(),
	}
}

func addressToDomain(dto AddressDTO) (*account.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(dto.Longitude, dto.Latitude)
	if err != nil {
		return nil, err
	}

	return account.RestoreAddress(id, userID, dto.Label, location)
}
