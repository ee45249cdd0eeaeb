package order_test

import (
	"testing"
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/core/domain/model/order"
	"supplymitra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoneyFromRupees(t *testing.T, rupees float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromRupees(rupees)
	require.NoError(t, err)
	return m
}

func mustLineItem(t *testing.T, quantity int, unitPriceRupees float64) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), quantity, mustMoneyFromRupees(t, unitPriceRupees))
	require.NoError(t, err)
	return item
}

func placeTestOrder(t *testing.T, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{mustLineItem(t, 10, 40)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(),
		items, nil, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes_total_from_line_items", func(t *testing.T) {
		// 10 kg tomato at ₹40 and 5 kg onion at ₹25.
		tomato := mustLineItem(t, 10, 40)
		onion := mustLineItem(t, 5, 25)

		o := placeTestOrder(t, tomato, onion)

		assert.InDelta(t, 525.0, o.TotalAmount().Rupees(), 1e-9)
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.History(), 1)
		assert.Equal(t, order.Pending, o.LastHistoryEntry().Status())
	})

	t.Run("requires_line_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_same_account_on_both_sides", func(t *testing.T) {
		party := kernel.NewUUID()
		_, err := order.NewOrder(
			kernel.NewUUID(), party, party,
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{mustLineItem(t, 1, 10)}, nil, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{mustLineItem(t, 1, 10)}, nil, time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_line_item", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{{}}, nil, time.Now(),
		)

		require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("zero_quantity_is_rejected", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), 0, mustMoneyFromRupees(t, 40))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("line_total", func(t *testing.T) {
		item := mustLineItem(t, 5, 25)

		total, err := item.Total()

		require.NoError(t, err)
		assert.Equal(t, int64(12500), total.Paise())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("full_happy_path_to_delivered", func(t *testing.T) {
		o := placeTestOrder(t)
		now := o.CreatedAt()

		steps := []order.Status{
			order.Confirmed, order.Packed, order.InTransit,
			order.OutForDelivery, order.Delivered,
		}
		for _, target := range steps {
			now = now.Add(time.Minute)
			require.NoError(t, o.ChangeStatus(target, account.RoleSupplier, "", now))
			assert.Equal(t, target, o.Status())
			assert.Equal(t, target, o.LastHistoryEntry().Status())
		}

		assert.Len(t, o.History(), 6)
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, now, *o.DeliveredAt())
		assert.Nil(t, o.CancelledAt())
	})

	t.Run("pending_cannot_jump_to_delivered", func(t *testing.T) {
		o := placeTestOrder(t)

		err := o.ChangeStatus(order.Delivered, account.RoleSupplier, "", time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.History(), 1)
	})

	t.Run("vendor_can_cancel_pending", func(t *testing.T) {
		o := placeTestOrder(t)
		now := time.Now()

		require.NoError(t, o.ChangeStatus(order.Cancelled, account.RoleVendor, "changed my mind", now))

		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, now, *o.CancelledAt())
		assert.Equal(t, "changed my mind", o.LastHistoryEntry().Note())
	})

	t.Run("vendor_cannot_confirm", func(t *testing.T) {
		o := placeTestOrder(t)

		err := o.ChangeStatus(order.Confirmed, account.RoleVendor, "", time.Now())

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("vendor_cannot_cancel_after_confirmation", func(t *testing.T) {
		o := placeTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, account.RoleSupplier, "", time.Now()))

		err := o.ChangeStatus(order.Cancelled, account.RoleVendor, "", time.Now())

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("terminal_states_reject_everything", func(t *testing.T) {
		o := placeTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled, account.RoleVendor, "", time.Now()))

		for _, target := range allStatuses() {
			err := o.ChangeStatus(target, account.RoleSupplier, "", time.Now())
			require.ErrorIs(t, err, errs.ErrInvalidTransition, target.String())
		}
		assert.Len(t, o.History(), 2)
	})

	t.Run("history_only_grows", func(t *testing.T) {
		o := placeTestOrder(t)
		lengths := []int{len(o.History())}

		_ = o.ChangeStatus(order.Delivered, account.RoleSupplier, "", time.Now()) // rejected
		lengths = append(lengths, len(o.History()))
		require.NoError(t, o.ChangeStatus(order.Confirmed, account.RoleSupplier, "", time.Now()))
		lengths = append(lengths, len(o.History()))

		assert.Equal(t, []int{1, 1, 2}, lengths)
	})
}

func TestOrder_RoleOf(t *testing.T) {
	o := placeTestOrder(t)

	vendorRole, err := o.RoleOf(o.VendorID())
	require.NoError(t, err)
	assert.Equal(t, account.RoleVendor, vendorRole)

	supplierRole, err := o.RoleOf(o.SupplierID())
	require.NoError(t, err)
	assert.Equal(t, account.RoleSupplier, supplierRole)

	_, err = o.RoleOf(kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		o := placeTestOrder(t, mustLineItem(t, 10, 40), mustLineItem(t, 5, 25))
		require.NoError(t, o.ChangeStatus(order.Confirmed, account.RoleSupplier, "on it", time.Now()))

		restored, err := order.RestoreOrder(
			o.ID(), o.VendorID(), o.SupplierID(),
			o.VendorAddressID(), o.SupplierAddressID(),
			o.LineItems(), o.TotalAmount(), o.Status(), o.History(),
			o.CreatedAt(), o.ExpectedDelivery(), o.DeliveredAt(), o.CancelledAt(),
		)

		require.NoError(t, err)
		assert.True(t, o.IsEqual(restored))
		assert.Equal(t, o.Status(), restored.Status())
		assert.Len(t, restored.History(), 2)
	})

	t.Run("rejects_total_not_matching_line_items", func(t *testing.T) {
		o := placeTestOrder(t)
		tamperedTotal := mustMoneyFromRupees(t, 1)

		_, err := order.RestoreOrder(
			o.ID(), o.VendorID(), o.SupplierID(),
			o.VendorAddressID(), o.SupplierAddressID(),
			o.LineItems(), tamperedTotal, o.Status(), o.History(),
			o.CreatedAt(), nil, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_history_tail_mismatch", func(t *testing.T) {
		o := placeTestOrder(t)

		_, err := order.RestoreOrder(
			o.ID(), o.VendorID(), o.SupplierID(),
			o.VendorAddressID(), o.SupplierAddressID(),
			o.LineItems(), o.TotalAmount(), order.Confirmed, o.History(),
			o.CreatedAt(), nil, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_history", func(t *testing.T) {
		o := placeTestOrder(t)

		_, err := order.RestoreOrder(
			o.ID(), o.VendorID(), o.SupplierID(),
			o.VendorAddressID(), o.SupplierAddressID(),
			o.LineItems(), o.TotalAmount(), o.Status(), nil,
			o.CreatedAt(), nil, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order

	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
