package account_test

import (
	"testing"
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("valid_roles", func(t *testing.T) {
		vendor, err := account.RoleFromString("vendor")
		require.NoError(t, err)
		assert.Equal(t, account.RoleVendor, vendor)

		supplier, err := account.RoleFromString("supplier")
		require.NoError(t, err)
		assert.Equal(t, account.RoleSupplier, supplier)
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := account.RoleFromString("admin")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, account.RoleVendor.Validate())
	require.NoError(t, account.RoleSupplier.Validate())
	require.Error(t, account.RoleUnknown.Validate())
	require.Error(t, account.Role(42).Validate())
}

func TestNewUser(t *testing.T) {
	now := time.Now()

	t.Run("valid_user", func(t *testing.T) {
		user, err := account.NewUser(kernel.NewUUID(), " Asha Patel ", "Asha@Example.com", "+91-98000", account.RoleSupplier, now)

		require.NoError(t, err)
		require.NoError(t, user.Validate())
		assert.Equal(t, "Asha Patel", user.Fullname())
		assert.Equal(t, "asha@example.com", user.Email())
		assert.Equal(t, account.RoleSupplier, user.Role())
	})

	t.Run("missing_email", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "Asha", "  ", "", account.RoleVendor, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed_email", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "Asha", "not-an-email", "", account.RoleVendor, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "Asha", "a@b.c", "", account.RoleUnknown, now)

		require.Error(t, err)
	})

	t.Run("unconstructed_user_fails_validation", func(t *testing.T) {
		var user account.User

		require.ErrorIs(t, user.Validate(), account.ErrUserIsNotConstructed)
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	user, err := account.NewUser(kernel.NewUUID(), "Asha", "a@b.c", "111", account.RoleVendor, time.Now())
	require.NoError(t, err)

	user.UpdateProfile(" New Name ", "222")

	assert.Equal(t, "New Name", user.Fullname())
	assert.Equal(t, "222", user.Phone())
	assert.Equal(t, "a@b.c", user.Email())
}

func TestNewAddress(t *testing.T) {
	point, err := kernel.NewGeoPoint(72.8777, 19.0760)
	require.NoError(t, err)

	t.Run("valid_address", func(t *testing.T) {
		owner := kernel.NewUUID()
		address, err := account.NewAddress(kernel.NewUUID(), owner, "Dadar market stall", point)

		require.NoError(t, err)
		require.NoError(t, address.Validate())
		assert.True(t, address.IsOwnedBy(owner))
		assert.False(t, address.IsOwnedBy(kernel.NewUUID()))
	})

	t.Run("missing_label", func(t *testing.T) {
		_, err := account.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "   ", point)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_location", func(t *testing.T) {
		_, err := account.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "stall", kernel.GeoPoint{})

		require.Error(t, err)
	})
}
