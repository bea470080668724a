package commands

import (
	"context"

	"fleetlog/internal/core/domain/model/vehicle"
)

// ChangeVehicleStatusCommandHandler handles manual vehicle status changes.
// The write is conditioned on the status the vehicle had when it was loaded,
// so a custody operation racing this command cannot be silently overwritten.
type ChangeVehicleStatusCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewChangeVehicleStatusCommandHandler creates a handler for manual status changes.
func NewChangeVehicleStatusCommandHandler(uowFactory VehicleUoWFactory) ChangeVehicleStatusCommandHandler {
	return ChangeVehicleStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns InvalidStateError when the transition is not allowed (for example
// into or out of IN_USE) and CustodyConflictError when a concurrent
// operation changed the vehicle first.
func (h *ChangeVehicleStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeVehicleStatusCommand,
) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()

	veh, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	loadedStatus := veh.Status()
	if err = veh.ChangeStatus(cmd.Target()); err != nil {
		return nil, err
	}

	if err = vehicleRepo.UpdateWithStatusCheck(ctx, veh, loadedStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return veh, nil
}
