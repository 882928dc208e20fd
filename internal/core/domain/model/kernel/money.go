package kernel

import (
	"fmt"

	"partner/internal/pkg/errs"
	"partner/internal/pkg/guard"
)

// MoneyMinCents is the smallest amount a Money value may carry.
// Earnings reported by the assignment service are never negative.
const MoneyMinCents int64 = 0

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money represents a non-negative monetary amount in minor units (cents)
// with an ISO 4217 currency code. It is an immutable value object carried
// through the order payload; the lifecycle core never computes with it.
//
// The zero value is invalid and fails validation - use the constructors.
type Money struct { //nolint:recvcheck //using for validation
	cents    int64
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount in cents and currency code.
// The amount must not be negative and the currency must not be empty.
func NewMoney(cents int64, currency string) (Money, error) {
	if cents < MoneyMinCents {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", cents, MoneyMinCents, int64(1<<62))
	}
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}

	return Money{
		cents:    cents,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney creates a zero amount in the given currency.
// Used for orders whose earnings are not yet known.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(0, currency)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual reports whether two Money values have the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// String returns a representation like "Money(1250 USD)".
func (m Money) String() string {
	return fmt.Sprintf("Money(%d %s)", m.cents, m.currency)
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
