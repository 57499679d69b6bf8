package kernel_test

import (
	"testing"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates_money_with_valid_amount_and_currency", func(t *testing.T) {
		// When
		money, err := kernel.NewMoney(decimal.NewFromFloat(25.50), kernel.CurrencyUSD)

		// Then
		require.NoError(t, err)
		assert.NoError(t, money.Validate())
		assert.True(t, money.Amount().Equal(decimal.NewFromFloat(25.50)))
		assert.Equal(t, kernel.CurrencyUSD, money.Currency())
		assert.Equal(t, "25.50 USD", money.String())
	})

	t.Run("accepts_zero_amount", func(t *testing.T) {
		money, err := kernel.NewMoney(decimal.Zero, kernel.CurrencyKES)
		require.NoError(t, err)
		assert.True(t, money.IsZero())
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1), kernel.CurrencyUSD)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unsupported_currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(10), kernel.Currency("XXX"))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("adds_amounts_in_same_currency", func(t *testing.T) {
		a, err := kernel.NewMoney(decimal.NewFromFloat(10.25), kernel.CurrencyUSD)
		require.NoError(t, err)
		b, err := kernel.NewMoney(decimal.NewFromFloat(4.75), kernel.CurrencyUSD)
		require.NoError(t, err)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(15)))
	})

	t.Run("rejects_currency_mismatch", func(t *testing.T) {
		a, err := kernel.NewMoney(decimal.NewFromInt(10), kernel.CurrencyUSD)
		require.NoError(t, err)
		b, err := kernel.NewMoney(decimal.NewFromInt(10), kernel.CurrencyEUR)
		require.NoError(t, err)

		_, err = a.Add(b)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unconstructed_operand", func(t *testing.T) {
		a, err := kernel.NewMoney(decimal.NewFromInt(10), kernel.CurrencyUSD)
		require.NoError(t, err)

		var b kernel.Money
		_, err = a.Add(b)
		require.Error(t, err)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero_value_money_fails_validation", func(t *testing.T) {
		var money kernel.Money
		require.Error(t, money.Validate())
	})
}
