package commands

import (
	"context"

	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/errs"
)

// FinishRouteLogCommandHandler closes a custody leg and releases the vehicle.
// The leg is addressed by its own ID and must still be ACTIVE, so a retried
// closure of an already-closed leg fails with InvalidStateError instead of
// closing the vehicle's current leg. The closure write is additionally
// conditioned on the leg still being ACTIVE, so two callers finishing the
// same leg cannot both succeed.
type FinishRouteLogCommandHandler struct {
	uowFactory UoWFactory
}

// NewFinishRouteLogCommandHandler creates a handler for closing custody legs.
// Requires a UoWFactory spanning both the vehicle registry and the log store.
func NewFinishRouteLogCommandHandler(uowFactory UoWFactory) FinishRouteLogCommandHandler {
	return FinishRouteLogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish command and returns the closed leg.
// Returns ObjectNotFoundError when no leg has the given ID,
// InvalidStateError when the leg was already closed, and a validation error
// when endMileage precedes the leg's start mileage (equal readings are
// allowed).
func (h *FinishRouteLogCommandHandler) Handle(
	ctx context.Context,
	cmd FinishRouteLogCommand,
) (*routelog.RouteLog, error) {
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
	logRepo := uow.RouteLogRepository()

	log, err := logRepo.Get(ctx, cmd.LogID())
	if err != nil {
		return nil, err
	}

	if log.Status() != routelog.Active {
		return nil, errs.NewInvalidStateError("routeLog", log.Status().String())
	}

	veh, err := vehicleRepo.Get(ctx, log.VehicleID())
	if err != nil {
		return nil, err
	}

	if err = log.Finish(
		cmd.EndMileage(), cmd.NotesEnd(), cmd.ImagesEnd(),
		cmd.ReceiverName(), cmd.EndDate()); err != nil {
		return nil, err
	}

	if err = veh.EndCustody(); err != nil {
		return nil, err
	}

	if err = logRepo.Close(ctx, log); err != nil {
		return nil, err
	}

	if err = vehicleRepo.UpdateWithStatusCheck(ctx, veh, vehicle.InUse); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return log, nil
}
