package commands

import (
	"context"
	"errors"

	"fleetlog/internal/pkg/errs"
)

// DeleteVehicleCommandHandler handles vehicle removal.
// Deletion is rejected while the vehicle has an open custody leg; the check
// consults both the active-log pointer and the log store, so a leg whose
// pointer write was lost still blocks the delete. Closed history rows are
// removed together with the vehicle by the cascading foreign key.
type DeleteVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle deletion.
func NewDeleteVehicleCommandHandler(uowFactory UoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle deletion command.
// Returns InvalidStateError when the vehicle is currently IN_USE.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	logRepo := uow.RouteLogRepository()

	veh, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if veh.ActiveRouteLogID() != nil {
		return errs.NewInvalidStateError("vehicle", veh.Status().String())
	}

	// The pointer can lag behind the log store; an open leg blocks the
	// delete either way.
	if _, err = logRepo.GetActiveByVehicle(ctx, veh.ID()); err == nil {
		return errs.NewInvalidStateError("vehicle", veh.Status().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = vehicleRepo.Delete(ctx, veh.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
