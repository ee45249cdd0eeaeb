package kernel

import (
	"fmt"
	"math"

	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney or
// MoneyFromRupees.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromRupees constructors")

// Money represents a non-negative monetary amount stored as an integer number
// of paise (1/100 rupee). Keeping amounts integral makes line-item arithmetic
// exact, which matters because order totals are always recomputed server-side
// and must equal the sum over line items.
//
// Money is an immutable value object; the zero value is invalid and will fail
// validation.
type Money struct { //nolint:recvcheck //using for validation
	paise int64
	guard guard.ConstructorGuard
}

// maxPaise caps any single amount at ₹10 billion. No catalog price or order
// total comes near it, and the cap keeps line-item arithmetic inside int64.
const maxPaise = 1_000_000_000_000

// NewMoney creates a Money value from an amount in paise.
// The amount must not be negative and must not exceed the amount cap.
func NewMoney(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d paise is negative", paise))
	}
	if paise > maxPaise {
		return Money{}, errs.NewValueIsOutOfRangeError("money", paise, 0, int64(maxPaise))
	}
	return Money{paise: paise, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromRupees creates a Money value from an amount in rupees,
// rounding to the nearest paisa. This is the conversion used at the API
// boundary where amounts are expressed as decimal rupees.
func MoneyFromRupees(rupees float64) (Money, error) {
	if math.IsNaN(rupees) || math.IsInf(rupees, 0) {
		return Money{}, errs.NewValueIsRequiredError("rupees")
	}
	// Converting an out-of-range float to int64 is not defined, so the
	// bound check happens before the conversion.
	if rupees > maxPaise/100 || rupees < -maxPaise/100 {
		return Money{}, errs.NewValueIsOutOfRangeError("rupees", rupees, 0, int64(maxPaise/100))
	}
	return NewMoney(int64(math.Round(rupees * 100)))
}

// Validate checks if the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Paise returns the amount in paise.
func (m Money) Paise() int64 {
	return m.paise
}

// Rupees returns the amount in decimal rupees.
func (m Money) Rupees() float64 {
	return float64(m.paise) / 100
}

// MulQuantity returns the amount multiplied by a quantity of units.
// Products beyond the amount cap are rejected before the multiplication so
// the result cannot wrap around int64.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if quantity > 0 && m.paise > maxPaise/int64(quantity) {
		return Money{}, errs.NewValueIsOutOfRangeError("money",
			fmt.Sprintf("%d paise × %d", m.paise, quantity), 0, int64(maxPaise))
	}
	return NewMoney(m.paise * int64(quantity))
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.paise + other.paise)
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.paise == other.paise
}

// String returns the amount formatted as rupees, e.g. "₹525.00".
func (m Money) String() string {
	return fmt.Sprintf("₹%d.%02d", m.paise/100, m.paise%100)
}
