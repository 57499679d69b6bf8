package delivery_test

import (
	"testing"

	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Pending, delivery.Searching, delivery.Assigned,
			delivery.Accepted, delivery.PickedUp, delivery.InTransit,
			delivery.Arrived, delivery.Delivered, delivery.Failed, delivery.Cancelled,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		assert.Error(t, delivery.Unknown.Validate())
		assert.Error(t, delivery.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", delivery.Pending.String())
	assert.Equal(t, "picked_up", delivery.PickedUp.String())
	assert.Equal(t, "in_transit", delivery.InTransit.String())
	assert.Equal(t, "cancelled", delivery.Cancelled.String())
	assert.Equal(t, "unknown", delivery.Unknown.String())
	assert.Equal(t, "unknown", delivery.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_valid_values", func(t *testing.T) {
		s, err := delivery.StatusFromString("picked_up")
		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, s)
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		_, err := delivery.StatusFromString("teleported")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.Delivered.IsTerminal())
	assert.True(t, delivery.Failed.IsTerminal())
	assert.True(t, delivery.Cancelled.IsTerminal())

	for _, s := range []delivery.Status{
		delivery.Pending, delivery.Searching, delivery.Assigned,
		delivery.Accepted, delivery.PickedUp, delivery.InTransit, delivery.Arrived,
	} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("any_non_terminal_source_accepts_any_recognized_target", func(t *testing.T) {
		sources := []delivery.Status{
			delivery.Pending, delivery.Searching, delivery.Assigned,
			delivery.Accepted, delivery.PickedUp, delivery.InTransit, delivery.Arrived,
		}
		targets := []delivery.Status{
			delivery.Pending, delivery.Searching, delivery.Assigned,
			delivery.Accepted, delivery.PickedUp, delivery.InTransit,
			delivery.Arrived, delivery.Delivered, delivery.Failed, delivery.Cancelled,
		}

		for _, from := range sources {
			for _, to := range targets {
				assert.NoError(t, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("terminal_sources_reject_everything", func(t *testing.T) {
		for _, from := range []delivery.Status{delivery.Delivered, delivery.Failed, delivery.Cancelled} {
			for _, to := range []delivery.Status{delivery.Pending, delivery.InTransit, delivery.Delivered} {
				err := from.CanTransitionTo(to)
				require.Error(t, err, "%s -> %s", from, to)
				require.ErrorIs(t, err, delivery.ErrTerminalState)
			}
		}
	})

	t.Run("unrecognized_target_is_rejected_before_terminal_check", func(t *testing.T) {
		err := delivery.Pending.CanTransitionTo(delivery.Status(99))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("returns_new_status_on_valid_move", func(t *testing.T) {
		next, err := delivery.Searching.TransitionTo(delivery.Assigned)
		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, next)
	})

	t.Run("same_status_is_a_legal_move", func(t *testing.T) {
		next, err := delivery.InTransit.TransitionTo(delivery.InTransit)
		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, next)
	})

	t.Run("returns_unknown_on_terminal_source", func(t *testing.T) {
		next, err := delivery.Delivered.TransitionTo(delivery.InTransit)
		require.Error(t, err)
		require.ErrorIs(t, err, delivery.ErrTerminalState)
		assert.Equal(t, delivery.Unknown, next)
	})
}
