package commands_test

import (
	"testing"
	"time"

	"fleetlog/internal/core/application/usecases/commands"
	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransferRouteLogCommandHandler_Handle_Success(t *testing.T) {
	// Juan hands the vehicle over to Pedro at km 1200. Juan's leg closes as
	// TRANSFERRED and Pedro's leg opens at the same reading.
	ctx := t.Context()
	currentLogID := kernel.NewUUID()
	veh := inUseVehicle(t, "ABCD-123", currentLogID)
	current := activeLogFor(t, currentLogID, veh, "Juan", 1000)

	successorID := kernel.NewUUID()
	cmd, err := commands.NewTransferRouteLogCommand(
		successorID, currentLogID, "Pedro", 1200, "handoff at depot", nil, time.Now())
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	logRepo := new(MockRouteLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(logRepo).Once(),
		logRepo.On("Get", mock.Anything, currentLogID).Return(current, nil).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		logRepo.On("Close", mock.Anything, current).Return(nil).Once(),
		logRepo.On("Add", mock.Anything, mock.AnythingOfType("*routelog.RouteLog")).Return(nil).Once(),
		vehicleRepo.On("UpdateWithStatusCheck", mock.Anything, veh, vehicle.InUse).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferRouteLogCommandHandler(factory)
	closed, successor, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, closed)
	require.NotNil(t, successor)

	// Successor continues exactly where the outgoing leg ended.
	assert.True(t, successor.ID().IsEqual(successorID))
	assert.Equal(t, "Pedro", successor.DriverName())
	assert.Equal(t, 1200, successor.StartMileage())
	assert.Equal(t, routelog.Active, successor.Status())

	// Outgoing leg comes back closed as TRANSFERRED naming Pedro.
	assert.True(t, closed.ID().IsEqual(currentLogID))
	assert.Equal(t, routelog.Transferred, closed.Status())
	require.NotNil(t, closed.EndMileage())
	assert.Equal(t, 1200, *closed.EndMileage())
	require.NotNil(t, closed.TransferTo())
	assert.Equal(t, "Pedro", *closed.TransferTo())
	require.NotNil(t, closed.ReceiverName())
	assert.Equal(t, "Pedro", *closed.ReceiverName())

	// Vehicle stays IN_USE but points at the successor.
	assert.Equal(t, vehicle.InUse, veh.Status())
	require.NotNil(t, veh.ActiveRouteLogID())
	assert.True(t, veh.ActiveRouteLogID().IsEqual(successorID))

	vehicleRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransferRouteLogCommandHandler_Handle_UnknownLog(t *testing.T) {
	ctx := t.Context()
	logID := kernel.NewUUID()
	cmd, err := commands.NewTransferRouteLogCommand(
		kernel.NewUUID(), logID, "Pedro", 1200, "", nil, time.Now())
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	logRepo := new(MockRouteLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(logRepo).Once(),
		logRepo.On("Get", mock.Anything, logID).
			Return(nil, errs.NewObjectNotFoundError("routeLogId", logID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferRouteLogCommandHandler(factory)
	closed, successor, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, closed)
	assert.Nil(t, successor)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	logRepo.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransferRouteLogCommandHandler_Handle_AlreadyClosedLeg(t *testing.T) {
	// Pedro already took over; a stale retry of Juan's handoff must fail
	// without closing Pedro's leg.
	ctx := t.Context()
	oldLogID := kernel.NewUUID()
	currentLogID := kernel.NewUUID()
	veh := inUseVehicle(t, "ABCD-123", currentLogID)
	old := finishedLogFor(t, oldLogID, veh, "Juan", 1000, 1200)

	cmd, err := commands.NewTransferRouteLogCommand(
		kernel.NewUUID(), oldLogID, "Pedro", 1200, "", nil, time.Now())
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	logRepo := new(MockRouteLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(logRepo).Once(),
		logRepo.On("Get", mock.Anything, oldLogID).Return(old, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferRouteLogCommandHandler(factory)
	closed, successor, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, closed)
	assert.Nil(t, successor)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	vehicleRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	logRepo.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
	logRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransferRouteLogCommandHandler_Handle_EndMileageBelowStart(t *testing.T) {
	ctx := t.Context()
	currentLogID := kernel.NewUUID()
	veh := inUseVehicle(t, "ABCD-123", currentLogID)
	current := activeLogFor(t, currentLogID, veh, "Juan", 1000)

	cmd, err := commands.NewTransferRouteLogCommand(
		kernel.NewUUID(), currentLogID, "Pedro", 900, "", nil, time.Now())
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	logRepo := new(MockRouteLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(logRepo).Once(),
		logRepo.On("Get", mock.Anything, currentLogID).Return(current, nil).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferRouteLogCommandHandler(factory)
	_, _, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	// The outgoing leg is untouched.
	assert.Equal(t, routelog.Active, current.Status())
	assert.Nil(t, current.EndMileage())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransferRouteLogCommandHandler_Handle_ConcurrentClosureLosesOnWrite(t *testing.T) {
	// A concurrent finish already closed the leg: the conditional closure
	// UPDATE matches zero rows and the whole transfer rolls back.
	ctx := t.Context()
	currentLogID := kernel.NewUUID()
	veh := inUseVehicle(t, "ABCD-123", currentLogID)
	current := activeLogFor(t, currentLogID, veh, "Juan", 1000)

	cmd, err := commands.NewTransferRouteLogCommand(
		kernel.NewUUID(), currentLogID, "Pedro", 1200, "", nil, time.Now())
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	logRepo := new(MockRouteLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("RouteLogRepository").Return(logRepo).Once(),
		logRepo.On("Get", mock.Anything, currentLogID).Return(current, nil).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		logRepo.On("Close", mock.Anything, current).
			Return(errs.NewInvalidStateError("route log", routelog.Finished.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferRouteLogCommandHandler(factory)
	_, _, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	logRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
