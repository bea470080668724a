package commands

import (
	"context"

	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
)

// StartRouteLogCommandHandler opens a custody leg for a vehicle.
// Creating the ACTIVE log and moving the vehicle AVAILABLE -> IN_USE happen
// inside one transaction; the vehicle write is conditioned on it still being
// AVAILABLE, so of two drivers racing for the same vehicle exactly one wins
// and the other receives CustodyConflictError.
type StartRouteLogCommandHandler struct {
	uowFactory UoWFactory
}

// NewStartRouteLogCommandHandler creates a handler for opening custody legs.
// Requires a UoWFactory spanning both the vehicle registry and the log store.
func NewStartRouteLogCommandHandler(uowFactory UoWFactory) StartRouteLogCommandHandler {
	return StartRouteLogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command and returns the new ACTIVE route log.
// Returns CustodyConflictError when the vehicle is not AVAILABLE.
func (h *StartRouteLogCommandHandler) Handle(
	ctx context.Context,
	cmd StartRouteLogCommand,
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

	veh, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	log, err := routelog.NewRouteLog(
		cmd.LogID(), veh.ID(), cmd.DriverName(), cmd.StartMileage(),
		cmd.NotesStart(), cmd.ImagesStart(), cmd.StartDate())
	if err != nil {
		return nil, err
	}

	if err = veh.StartCustody(log.ID()); err != nil {
		return nil, err
	}

	if err = logRepo.Add(ctx, log); err != nil {
		return nil, err
	}

	if err = vehicleRepo.UpdateWithStatusCheck(ctx, veh, vehicle.Available); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return log, nil
}
