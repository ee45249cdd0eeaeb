package errs_test

import (
	"errors"
	"testing"

	"supplymitra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, 150, err.Value)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("supplierId")

	assert.Equal(t, "supplierId", err.ParamName)
	assert.Equal(t, "value is required: supplierId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("actor-1", "confirm order")

		assert.Equal(t, "actor-1", err.Actor)
		assert.Equal(t, "forbidden: actor actor-1 may not confirm order", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("actor is not a participant")
		err := errs.NewForbiddenErrorWithCause("actor-1", "read order", cause)

		assert.Equal(t, "forbidden: actor actor-1 may not read order (cause: actor is not a participant)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("with allowed set", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("pending", "delivered", []string{"confirmed", "cancelled"})

		assert.Equal(t, "pending", err.From)
		assert.Equal(t, "delivered", err.To)
		assert.Equal(t, []string{"confirmed", "cancelled"}, err.Allowed)
		assert.Equal(t, "invalid transition: pending -> delivered (allowed: confirmed, cancelled)", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("from terminal state", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("delivered", "pending", nil)

		assert.Equal(t, "invalid transition: delivered -> pending (no transitions allowed)", err.Error())
	})
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("mat-9", 10, 4)

	assert.Equal(t, 10, err.Requested)
	assert.Equal(t, 4, err.Available)
	assert.Equal(t, "insufficient stock: material mat-9: requested 10, available 4", err.Error())
	assert.Equal(t, errs.ErrInsufficientStock, err.Unwrap())
}

func TestUnavailableError(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := errs.NewUnavailableError("orders.UpdateStatus", cause)

	assert.Equal(t, "unavailable: orders.UpdateStatus (cause: context deadline exceeded)", err.Error())
	assert.Equal(t, errs.ErrUnavailable, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewForbiddenError("a", "b"), errs.ErrForbidden)
	require.ErrorIs(t, errs.NewInvalidTransitionError("a", "b", nil), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewInsufficientStockError("m", 1, 0), errs.ErrInsufficientStock)
	require.ErrorIs(t, errs.NewUnavailableError("op", nil), errs.ErrUnavailable)
}
