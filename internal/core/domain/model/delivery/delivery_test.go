package delivery_test

import (
	"testing"
	"time"

	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackage(t *testing.T) delivery.Package {
	t.Helper()
	pkg, err := delivery.NewPackage(
		"Two boxes of books", decimal.NewFromFloat(4.2), delivery.PackageTypeParcel,
		"", false, true)
	require.NoError(t, err)
	return pkg
}

func testRoute(t *testing.T) delivery.Route {
	t.Helper()
	route, err := delivery.NewRoute("12 Harbor Rd", "74 Hilltop Ave", nil, nil)
	require.NoError(t, err)
	return route
}

func testFee(t *testing.T) kernel.Money {
	t.Helper()
	fee, err := kernel.NewMoney(decimal.NewFromFloat(42.00), kernel.CurrencyUSD)
	require.NoError(t, err)
	return fee
}

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testPackage(t),
		"Jordan Mwangi",
		"+254700000001",
		testRoute(t),
		time.Now().Add(time.Hour),
		time.Now().Add(4*time.Hour),
		delivery.PriorityNormal,
		testFee(t),
		"leave at reception",
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("creates_pending_delivery_with_tracking_number", func(t *testing.T) {
		// When
		d := newTestDelivery(t)

		// Then
		assert.NoError(t, d.Validate())
		assert.Equal(t, delivery.Pending, d.Status())
		assert.NoError(t, d.TrackingNumber().Validate())
		assert.Regexp(t, `^DLV-[0-9A-F]{10}$`, d.TrackingNumber().String())
		assert.Nil(t, d.RiderID())
		assert.Nil(t, d.ActualPickup())
		assert.Nil(t, d.ActualDelivery())
		assert.Empty(t, d.PendingUpdates())
		assert.EqualValues(t, 0, d.Version())
		assert.True(t, d.IsActive())
	})

	t.Run("tracking_numbers_are_unique_across_creations", func(t *testing.T) {
		a := newTestDelivery(t)
		b := newTestDelivery(t)
		assert.False(t, a.TrackingNumber().IsEqual(b.TrackingNumber()))
	})

	t.Run("rejects_missing_recipient", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), testPackage(t),
			"", "+254700000001", testRoute(t),
			time.Now().Add(time.Hour), time.Now().Add(4*time.Hour),
			delivery.PriorityNormal, testFee(t), "")
		require.Error(t, err)
	})

	t.Run("rejects_invalid_priority", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), testPackage(t),
			"Jordan Mwangi", "+254700000001", testRoute(t),
			time.Now().Add(time.Hour), time.Now().Add(4*time.Hour),
			delivery.Priority(9), testFee(t), "")
		require.Error(t, err)
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("zero_value_delivery_fails_validation", func(t *testing.T) {
		var d delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})

	t.Run("nil_delivery_fails_validation", func(t *testing.T) {
		var d *delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}

func TestDelivery_TransitionTo(t *testing.T) {
	t.Run("updates_status_and_appends_history_entry", func(t *testing.T) {
		// Given
		d := newTestDelivery(t)
		actor := kernel.NewUUID()

		// When
		err := d.TransitionTo(delivery.Searching, &actor, "dispatch desk", nil, "no rider yet")

		// Then
		require.NoError(t, err)
		assert.Equal(t, delivery.Searching, d.Status())

		updates := d.PendingUpdates()
		require.Len(t, updates, 1)
		assert.Equal(t, delivery.Searching, updates[0].Status())
		assert.Equal(t, d.ID(), updates[0].DeliveryID())
		require.NotNil(t, updates[0].ActorID())
		assert.True(t, actor.IsEqual(*updates[0].ActorID()))
		assert.Equal(t, "dispatch desk", updates[0].Location())
		assert.Equal(t, "no rider yet", updates[0].Notes())
		assert.False(t, updates[0].CreatedAt().IsZero())
	})

	t.Run("stamps_actual_pickup_once", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.TransitionTo(delivery.PickedUp, nil, "", nil, ""))
		require.NotNil(t, d.ActualPickup())
		first := *d.ActualPickup()

		// A second pass through picked_up must not move the timestamp.
		require.NoError(t, d.TransitionTo(delivery.InTransit, nil, "", nil, ""))
		require.NoError(t, d.TransitionTo(delivery.PickedUp, nil, "", nil, ""))
		assert.Equal(t, first, *d.ActualPickup())
	})

	t.Run("stamps_actual_delivery_on_delivered", func(t *testing.T) {
		d := newTestDelivery(t)
		assert.Nil(t, d.ActualDelivery())

		require.NoError(t, d.TransitionTo(delivery.Delivered, nil, "", nil, "signed by recipient"))
		require.NotNil(t, d.ActualDelivery())
		assert.False(t, d.IsActive())
	})

	t.Run("terminal_delivery_rejects_further_transitions", func(t *testing.T) {
		// Given a delivered delivery
		d := newTestDelivery(t)
		require.NoError(t, d.TransitionTo(delivery.Delivered, nil, "", nil, ""))

		// When moving it back to in_transit
		err := d.TransitionTo(delivery.InTransit, nil, "", nil, "")

		// Then
		require.ErrorIs(t, err, delivery.ErrTerminalState)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.Len(t, d.PendingUpdates(), 1)
	})

	t.Run("same_status_update_appends_history_without_error", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.TransitionTo(delivery.InTransit, nil, "", nil, "first ping"))
		require.NoError(t, d.TransitionTo(delivery.InTransit, nil, "", nil, "second ping"))

		assert.Equal(t, delivery.InTransit, d.Status())
		assert.Len(t, d.PendingUpdates(), 2)
	})

	t.Run("unrecognized_target_is_rejected_without_history", func(t *testing.T) {
		d := newTestDelivery(t)
		err := d.TransitionTo(delivery.Status(99), nil, "", nil, "")
		require.Error(t, err)
		assert.Empty(t, d.PendingUpdates())
		assert.Equal(t, delivery.Pending, d.Status())
	})
}

func TestDelivery_AssignRider(t *testing.T) {
	t.Run("binds_rider_and_transitions_to_assigned", func(t *testing.T) {
		// Given
		d := newTestDelivery(t)
		riderID := kernel.NewUUID()
		actor := kernel.NewUUID()

		// When
		err := d.AssignRider(riderID, &actor)

		// Then
		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, d.Status())
		require.NotNil(t, d.RiderID())
		assert.True(t, riderID.IsEqual(*d.RiderID()))

		updates := d.PendingUpdates()
		require.Len(t, updates, 1)
		assert.Equal(t, delivery.Assigned, updates[0].Status())
	})

	t.Run("reassignment_overwrites_rider", func(t *testing.T) {
		d := newTestDelivery(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, d.AssignRider(first, nil))
		require.NoError(t, d.AssignRider(second, nil))

		require.NotNil(t, d.RiderID())
		assert.True(t, second.IsEqual(*d.RiderID()))
		assert.Len(t, d.PendingUpdates(), 2)
	})

	t.Run("terminal_delivery_is_not_assignable", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.TransitionTo(delivery.Cancelled, nil, "", nil, "customer cancelled"))

		err := d.AssignRider(kernel.NewUUID(), nil)
		require.ErrorIs(t, err, delivery.ErrNotAssignable)
		assert.Nil(t, d.RiderID())
	})

	t.Run("invalid_rider_id_is_rejected", func(t *testing.T) {
		d := newTestDelivery(t)
		err := d.AssignRider(kernel.UUID{}, nil)
		require.Error(t, err)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores_full_state_without_history_entries", func(t *testing.T) {
		riderID := kernel.NewUUID()
		pickedUp := time.Now().Add(-2 * time.Hour).UTC()
		tracking, err := delivery.TrackingNumberFromString("DLV-0123456789")
		require.NoError(t, err)

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), tracking, kernel.NewUUID(), &riderID,
			testPackage(t), "Jordan Mwangi", "+254700000001", testRoute(t),
			time.Now().Add(-3*time.Hour), time.Now().Add(time.Hour),
			&pickedUp, nil,
			delivery.InTransit, delivery.PriorityExpress, testFee(t), "", 7)

		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, d.Status())
		assert.EqualValues(t, 7, d.Version())
		assert.Empty(t, d.PendingUpdates())
		require.NotNil(t, d.ActualPickup())
		assert.Equal(t, pickedUp, *d.ActualPickup())
	})

	t.Run("rejects_negative_version", func(t *testing.T) {
		tracking, err := delivery.TrackingNumberFromString("DLV-0123456789")
		require.NoError(t, err)

		_, err = delivery.RestoreDelivery(
			kernel.NewUUID(), tracking, kernel.NewUUID(), nil,
			testPackage(t), "Jordan Mwangi", "+254700000001", testRoute(t),
			time.Now(), time.Now().Add(time.Hour), nil, nil,
			delivery.Pending, delivery.PriorityNormal, testFee(t), "", -1)
		require.Error(t, err)
	})
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("accepts_well_formed_values", func(t *testing.T) {
		tn, err := delivery.TrackingNumberFromString("DLV-00FFAA1234")
		require.NoError(t, err)
		assert.Equal(t, "DLV-00FFAA1234", tn.String())
	})

	t.Run("rejects_malformed_values", func(t *testing.T) {
		for _, s := range []string{"", "DLV-", "DLV-lowercase1", "PKG-0123456789", "DLV-0123"} {
			_, err := delivery.TrackingNumberFromString(s)
			require.Error(t, err, s)
		}
	})
}
