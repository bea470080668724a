package commands_test

import (
	"testing"

	"fleetlog/internal/core/application/usecases/commands"
	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	veh := availableVehicle(t, "ABCD-123")
	cmd, err := commands.NewDeleteVehicleCommand(veh.ID())
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	logRepo := new(MockRouteLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(logRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		logRepo.On("GetActiveByVehicle", mock.Anything, veh.ID()).
			Return(nil, errs.NewObjectNotFoundError("vehicleId", veh.ID())).Once(),
		vehicleRepo.On("Delete", mock.Anything, veh.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	vehicleRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteVehicleCommandHandler_Handle_RejectedWhileInUse(t *testing.T) {
	ctx := t.Context()
	veh := inUseVehicle(t, "ABCD-123", kernel.NewUUID())
	cmd, err := commands.NewDeleteVehicleCommand(veh.ID())
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	logRepo := new(MockRouteLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(logRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	logRepo.AssertNotCalled(t, "GetActiveByVehicle", mock.Anything, mock.Anything)
	vehicleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteVehicleCommandHandler_Handle_RejectedWhenOpenLegHasNoPointer(t *testing.T) {
	// The pointer write after a start was lost, but Juan's leg is still
	// open in the log store; the delete must not go through.
	ctx := t.Context()
	veh := availableVehicle(t, "ABCD-123")
	open := activeLogFor(t, kernel.NewUUID(), veh, "Juan", 1000)
	cmd, err := commands.NewDeleteVehicleCommand(veh.ID())
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	logRepo := new(MockRouteLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(logRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		logRepo.On("GetActiveByVehicle", mock.Anything, veh.ID()).Return(open, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	vehicleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteVehicleCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteVehicleCommand(id)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(new(MockRouteLogRepository)).Once(),
		vehicleRepo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("vehicleId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
