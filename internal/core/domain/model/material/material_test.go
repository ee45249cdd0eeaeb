package material_test

import (
	"testing"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/material"
	"supplymitra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMaterial(t *testing.T, stock int) *material.Material {
	t.Helper()
	price, err := kernel.MoneyFromRupees(40)
	require.NoError(t, err)
	m, err := material.NewMaterial(
		kernel.NewUUID(), kernel.NewUUID(), "Tomato", price, stock,
		material.UnitKg, material.CategoryVegetables,
	)
	require.NoError(t, err)
	return m
}

func TestNewMaterial(t *testing.T) {
	t.Run("valid_material", func(t *testing.T) {
		m := newTestMaterial(t, 100)

		require.NoError(t, m.Validate())
		assert.Equal(t, "Tomato", m.Name())
		assert.Equal(t, 100, m.AvailableQuantity())
		assert.Equal(t, material.UnitKg, m.Unit())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		price, err := kernel.MoneyFromRupees(40)
		require.NoError(t, err)

		_, err = material.NewMaterial(
			kernel.NewUUID(), kernel.NewUUID(), "  ", price, 10,
			material.UnitKg, material.CategoryVegetables,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_unit_and_category", func(t *testing.T) {
		price, err := kernel.MoneyFromRupees(40)
		require.NoError(t, err)

		_, err = material.NewMaterial(
			kernel.NewUUID(), kernel.NewUUID(), "Tomato", price, 10,
			material.Unit("tonne"), material.Category("Spices"),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_stock_is_rejected", func(t *testing.T) {
		price, err := kernel.MoneyFromRupees(40)
		require.NoError(t, err)

		_, err = material.NewMaterial(
			kernel.NewUUID(), kernel.NewUUID(), "Tomato", price, -1,
			material.UnitKg, material.CategoryVegetables,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMaterial_Reserve(t *testing.T) {
	t.Run("reserves_available_stock", func(t *testing.T) {
		m := newTestMaterial(t, 10)

		require.NoError(t, m.Reserve(4))

		assert.Equal(t, 6, m.AvailableQuantity())
	})

	t.Run("fails_when_stock_is_insufficient", func(t *testing.T) {
		m := newTestMaterial(t, 3)

		err := m.Reserve(4)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 4, stockErr.Requested)
		assert.Equal(t, 3, stockErr.Available)
		assert.Equal(t, 3, m.AvailableQuantity())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		m := newTestMaterial(t, 3)

		require.ErrorIs(t, m.Reserve(0), errs.ErrValueIsInvalid)
	})
}

func TestMaterial_Restock(t *testing.T) {
	m := newTestMaterial(t, 1)

	require.NoError(t, m.Restock(5))

	assert.Equal(t, 6, m.AvailableQuantity())
}

func TestMaterial_Validate(t *testing.T) {
	var m material.Material

	require.ErrorIs(t, m.Validate(), material.ErrMaterialIsNotConstructed)
}
