package audit_test

import (
	"testing"

	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("creates_business_entry_with_actor_and_subject", func(t *testing.T) {
		actor := kernel.NewUUID()
		subject := kernel.NewUUID()

		entry, err := audit.NewEntry(
			audit.ChannelBusiness, audit.ActionAssignRider, &actor, &subject,
			map[string]string{"rider_id": "r-1"})

		require.NoError(t, err)
		assert.Equal(t, audit.ChannelBusiness, entry.Channel())
		assert.Equal(t, audit.ActionAssignRider, entry.Action())
		require.NotNil(t, entry.ActorID())
		assert.True(t, actor.IsEqual(*entry.ActorID()))
		assert.Equal(t, "r-1", entry.Details()["rider_id"])
		assert.False(t, entry.RecordedAt().IsZero())
	})

	t.Run("system_actions_have_nil_actor", func(t *testing.T) {
		subject := kernel.NewUUID()
		entry, err := audit.NewEntry(
			audit.ChannelBusiness, audit.ActionUpdateStatus, nil, &subject, nil)

		require.NoError(t, err)
		assert.Nil(t, entry.ActorID())
	})

	t.Run("rejects_invalid_channel_and_action", func(t *testing.T) {
		_, err := audit.NewEntry(audit.Channel(42), audit.ActionCreateOrder, nil, nil, nil)
		require.Error(t, err)

		_, err = audit.NewEntry(audit.ChannelSecurity, audit.ActionKind(42), nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("details_are_copied_not_shared", func(t *testing.T) {
		details := map[string]string{"k": "v"}
		entry, err := audit.NewEntry(
			audit.ChannelSecurity, audit.ActionAuthorizationDenied, nil, nil, details)
		require.NoError(t, err)

		details["k"] = "mutated"
		assert.Equal(t, "v", entry.Details()["k"])

		entry.Details()["k"] = "mutated again"
		assert.Equal(t, "v", entry.Details()["k"])
	})
}

func TestActionKindFromString(t *testing.T) {
	kind, err := audit.ActionKindFromString("authorization_denied")
	require.NoError(t, err)
	assert.Equal(t, audit.ActionAuthorizationDenied, kind)

	_, err = audit.ActionKindFromString("deleted_everything")
	require.Error(t, err)
}
