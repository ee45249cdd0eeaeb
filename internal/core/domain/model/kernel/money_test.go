package kernel_test

import (
	"testing"

	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid_amount", func(t *testing.T) {
		m, err := kernel.NewMoney(4000)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(4000), m.Paise())
		assert.InDelta(t, 40.0, m.Rupees(), 1e-9)
	})

	t.Run("negative_amount_is_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("amount_beyond_cap_is_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(1_000_000_000_001)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoneyFromRupees(t *testing.T) {
	t.Run("whole_rupees", func(t *testing.T) {
		m, err := kernel.MoneyFromRupees(40)

		require.NoError(t, err)
		assert.Equal(t, int64(4000), m.Paise())
	})

	t.Run("fractional_rupees_round_to_paise", func(t *testing.T) {
		m, err := kernel.MoneyFromRupees(25.505)

		require.NoError(t, err)
		assert.Equal(t, int64(2551), m.Paise())
	})

	t.Run("absurd_amount_is_rejected_before_conversion", func(t *testing.T) {
		// Larger than any int64, so it must fail the range check rather
		// than reach the float-to-int conversion.
		_, err := kernel.MoneyFromRupees(1e30)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("line_item_total", func(t *testing.T) {
		// 10 kg of tomato at ₹40 plus 5 kg of onion at ₹25 is ₹525.
		tomato, err := kernel.MoneyFromRupees(40)
		require.NoError(t, err)
		onion, err := kernel.MoneyFromRupees(25)
		require.NoError(t, err)

		tomatoLine, err := tomato.MulQuantity(10)
		require.NoError(t, err)
		onionLine, err := onion.MulQuantity(5)
		require.NoError(t, err)
		total, err := tomatoLine.Add(onionLine)
		require.NoError(t, err)

		assert.Equal(t, int64(52500), total.Paise())
		assert.InDelta(t, 525.0, total.Rupees(), 1e-9)
	})

	t.Run("negative_quantity_is_rejected", func(t *testing.T) {
		m, err := kernel.NewMoney(100)
		require.NoError(t, err)

		_, err = m.MulQuantity(-1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("product_beyond_cap_is_rejected", func(t *testing.T) {
		// A price at the cap times any quantity above one would wrap int64
		// without the pre-multiplication bound.
		m, err := kernel.NewMoney(1_000_000_000_000)
		require.NoError(t, err)

		_, err = m.MulQuantity(10_000_000)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("adding_unconstructed_money_fails", func(t *testing.T) {
		m, err := kernel.NewMoney(100)
		require.NoError(t, err)

		_, err = m.Add(kernel.Money{})
		require.Error(t, err)
	})
}

func TestMoney_Validate(t *testing.T) {
	var zero kernel.Money

	require.Error(t, zero.Validate())
}

func TestMoney_String(t *testing.T) {
	m, err := kernel.NewMoney(52500)
	require.NoError(t, err)

	assert.Equal(t, "₹525.00", m.String())
}
