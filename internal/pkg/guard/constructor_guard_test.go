package guard_test

import (
	"errors"
	"testing"

	"parcelflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_validates_successfully", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor",
			guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuard_DomainUsage exercises the pattern every value object
// in the model follows: embed a guard, set it in the constructor, and check
// it in Validate.
func TestConstructorGuard_DomainUsage(t *testing.T) {
	type weightLimit struct {
		maxKg float64
		guard guard.ConstructorGuard
	}

	errWeightLimitNotConstructed := errors.New("weightLimit must be created via newWeightLimit")

	newWeightLimit := func(maxKg float64) (weightLimit, error) {
		if maxKg <= 0 {
			return weightLimit{}, errors.New("max weight must be positive")
		}
		return weightLimit{
			maxKg: maxKg,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("constructed_value_passes_validation", func(t *testing.T) {
		limit, err := newWeightLimit(25)

		require.NoError(t, err)
		require.NoError(t, limit.guard.Validate(errWeightLimitNotConstructed))
		assert.InDelta(t, 25.0, limit.maxKg, 0.001)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var limit weightLimit

		err := limit.guard.Validate(errWeightLimitNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errWeightLimitNotConstructed, err)
	})

	t.Run("constructor_still_enforces_its_own_rules", func(t *testing.T) {
		_, err := newWeightLimit(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		gCopy := g

		require.NoError(t, g.Validate(testError))
		require.NoError(t, gCopy.Validate(testError))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 1000 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
