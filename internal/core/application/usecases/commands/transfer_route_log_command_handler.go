package commands

import (
	"context"

	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/core/domain/services"
	"fleetlog/internal/pkg/errs"
)

// TransferRouteLogCommandHandler hands custody of a vehicle to a new driver.
// The outgoing leg is addressed by its own ID and must still be ACTIVE, so a
// retried handoff of an already-closed leg fails with InvalidStateError
// instead of closing the vehicle's current leg. Closing the outgoing leg,
// opening the successor and repointing the vehicle happen inside one
// transaction. The closure write is additionally conditioned on the leg
// still being ACTIVE and the vehicle write on it still being IN_USE, so a
// concurrent finish or transfer cannot interleave.
type TransferRouteLogCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransferRouteLogCommandHandler creates a handler for custody handoffs.
// Requires a UoWFactory spanning both the vehicle registry and the log store.
func NewTransferRouteLogCommandHandler(uowFactory UoWFactory) TransferRouteLogCommandHandler {
	return TransferRouteLogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer command and returns the closed outgoing leg
// together with the successor leg, which starts at the odometer reading the
// outgoing leg ended on.
// Returns ObjectNotFoundError when no leg has the given ID and
// InvalidStateError when the leg was already closed.
func (h *TransferRouteLogCommandHandler) Handle(
	ctx context.Context,
	cmd TransferRouteLogCommand,
) (*routelog.RouteLog, *routelog.RouteLog, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	logRepo := uow.RouteLogRepository()

	current, err := logRepo.Get(ctx, cmd.LogID())
	if err != nil {
		return nil, nil, err
	}

	if current.Status() != routelog.Active {
		return nil, nil, errs.NewInvalidStateError("routeLog", current.Status().String())
	}

	veh, err := vehicleRepo.Get(ctx, current.VehicleID())
	if err != nil {
		return nil, nil, err
	}

	successor, err := services.NewCustodyTransferService().Transfer(
		current, veh, cmd.SuccessorID(), cmd.NewDriverName(),
		cmd.EndMileage(), cmd.NotesEnd(), cmd.ImagesEnd(), cmd.EndDate())
	if err != nil {
		return nil, nil, err
	}

	if err = logRepo.Close(ctx, current); err != nil {
		return nil, nil, err
	}

	if err = logRepo.Add(ctx, successor); err != nil {
		return nil, nil, err
	}

	if err = vehicleRepo.UpdateWithStatusCheck(ctx, veh, vehicle.InUse); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return current, successor, nil
}
