package commands_test

import (
	"testing"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartRiderSearchCommandHandler_Handle(t *testing.T) {
	t.Run("moves_all_pending_deliveries_to_searching", func(t *testing.T) {
		ctx := t.Context()
		first := testDelivery(t)
		second := testDelivery(t)

		deliveryRepo := new(MockDeliveryRepository)
		deliveryRepo.On("GetAllInStatus", mock.Anything, delivery.Pending).
			Return([]*delivery.Delivery{first, second}, nil).Once()
		deliveryRepo.On("Update", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Return(nil).Twice()
		recorder := new(MockAuditRecorder)
		recorder.On("Record", mock.Anything, mock.AnythingOfType("audit.Entry")).Return(nil).Twice()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveryRepo).Once()
		uow.On("AuditRecorder").Return(recorder).Twice()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewStartRiderSearchCommandHandler(factory)
		cmd := commands.NewStartRiderSearchCommand()
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, delivery.Searching, first.Status())
		assert.Equal(t, delivery.Searching, second.Status())
		deliveryRepo.AssertExpectations(t)
	})

	t.Run("empty_sweep_commits_cleanly", func(t *testing.T) {
		ctx := t.Context()
		deliveryRepo := new(MockDeliveryRepository)
		deliveryRepo.On("GetAllInStatus", mock.Anything, delivery.Pending).
			Return([]*delivery.Delivery{}, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveryRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewStartRiderSearchCommandHandler(factory)
		cmd := commands.NewStartRiderSearchCommand()
		require.NoError(t, h.Handle(ctx, cmd))
	})
}

func TestAutoAssignRidersCommandHandler_Handle(t *testing.T) {
	t.Run("spreads_load_across_riders_within_one_sweep", func(t *testing.T) {
		ctx := t.Context()
		first := testDelivery(t)
		second := testDelivery(t)
		require.NoError(t, first.TransitionTo(delivery.Searching, nil, "", nil, ""))
		require.NoError(t, second.TransitionTo(delivery.Searching, nil, "", nil, ""))

		riderA := testAvailableRider(t, 4.0)
		riderB := testAvailableRider(t, 4.5)

		deliveryRepo := new(MockDeliveryRepository)
		deliveryRepo.On("GetAllInStatus", mock.Anything, delivery.Searching).
			Return([]*delivery.Delivery{first, second}, nil).Once()
		deliveryRepo.On("CountActiveByRider", mock.Anything, riderA.ID()).Return(0, nil).Once()
		deliveryRepo.On("CountActiveByRider", mock.Anything, riderB.ID()).Return(0, nil).Once()
		deliveryRepo.On("Update", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Return(nil).Twice()

		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetAvailableRiders", mock.Anything).
			Return([]*profile.UserProfile{riderA, riderB}, nil).Once()

		recorder := new(MockAuditRecorder)
		recorder.On("Record", mock.Anything, mock.AnythingOfType("audit.Entry")).Return(nil).Twice()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveryRepo).Once()
		uow.On("ProfileRepository").Return(profileRepo).Once()
		uow.On("AuditRecorder").Return(recorder).Twice()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		notifier := new(MockNotifier)
		notifier.On("PublishDeliveryStatusChanged", mock.Anything, mock.Anything).Return(nil).Twice()

		h := commands.NewAutoAssignRidersCommandHandler(factory, notifier, discardLogger())
		cmd := commands.NewAutoAssignRidersCommand()
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, delivery.Assigned, first.Status())
		assert.Equal(t, delivery.Assigned, second.Status())
		require.NotNil(t, first.RiderID())
		require.NotNil(t, second.RiderID())

		// Both riders start at zero load, so the two deliveries must go to
		// different riders.
		assert.False(t, first.RiderID().IsEqual(*second.RiderID()))
		notifier.AssertExpectations(t)
	})

	t.Run("no_available_riders_fails_sweep", func(t *testing.T) {
		ctx := t.Context()
		aggregate := testDelivery(t)
		require.NoError(t, aggregate.TransitionTo(delivery.Searching, nil, "", nil, ""))

		deliveryRepo := new(MockDeliveryRepository)
		deliveryRepo.On("GetAllInStatus", mock.Anything, delivery.Searching).
			Return([]*delivery.Delivery{aggregate}, nil).Once()
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetAvailableRiders", mock.Anything).
			Return([]*profile.UserProfile{}, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveryRepo).Once()
		uow.On("ProfileRepository").Return(profileRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAutoAssignRidersCommandHandler(factory, new(MockNotifier), discardLogger())
		cmd := commands.NewAutoAssignRidersCommand()
		require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrNoAvailableRiders)
		assert.Equal(t, delivery.Searching, aggregate.Status())
	})

	t.Run("no_searching_deliveries_commits_cleanly", func(t *testing.T) {
		ctx := t.Context()
		deliveryRepo := new(MockDeliveryRepository)
		deliveryRepo.On("GetAllInStatus", mock.Anything, delivery.Searching).
			Return([]*delivery.Delivery{}, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DeliveryRepository").Return(deliveryRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAutoAssignRidersCommandHandler(factory, new(MockNotifier), discardLogger())
		cmd := commands.NewAutoAssignRidersCommand()
		require.NoError(t, h.Handle(ctx, cmd))
	})
}
