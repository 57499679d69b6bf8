package kernel

import (
	"errors"
	"fmt"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Currency is a supported ISO 4217 currency code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyKES Currency = "KES"
	CurrencyNGN Currency = "NGN"
	CurrencyGHS Currency = "GHS"
)

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

func supportedCurrencies() map[Currency]struct{} {
	return map[Currency]struct{}{
		CurrencyUSD: {},
		CurrencyEUR: {},
		CurrencyGBP: {},
		CurrencyKES: {},
		CurrencyNGN: {},
		CurrencyGHS: {},
	}
}

// Validate checks that the currency is one of the supported codes.
func (c Currency) Validate() error {
	if _, ok := supportedCurrencies()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a supported currency", string(c)))
	}
	return nil
}

// Money is an immutable monetary amount in a supported currency.
// Amounts are non-negative; refund math is modelled on payment status,
// not by negative amounts.
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value, validating the currency and rejecting
// negative amounts.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		money.setAmount(amount),
		money.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return money, nil
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Add returns the sum of two amounts. Both operands must be constructed
// and share the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("cannot add %s to %s", other.currency, m.currency))
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	m.currency = currency
	return nil
}
