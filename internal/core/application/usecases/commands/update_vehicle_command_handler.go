package commands

import (
	"context"
	"errors"

	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/errs"
)

// UpdateVehicleCommandHandler handles administrative updates to a vehicle's
// descriptive data. Plate changes are checked for uniqueness against the
// rest of the registry.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle update operations.
func NewUpdateVehicleCommandHandler(uowFactory VehicleUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle update command.
// Loads the vehicle, rejects the new plate if another vehicle already holds
// it, applies the changes and persists them. Returns the updated aggregate.
func (h *UpdateVehicleCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateVehicleCommand,
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

	if !veh.Plate().IsEqual(cmd.Plate()) {
		other, plateErr := vehicleRepo.GetByPlate(ctx, cmd.Plate())
		if plateErr == nil && !other.ID().IsEqual(veh.ID()) {
			return nil, errs.NewDuplicatePlateError(cmd.Plate().String())
		}
		if plateErr != nil && !errors.Is(plateErr, errs.ErrObjectNotFound) {
			return nil, plateErr
		}
	}

	if err = veh.UpdateDetails(cmd.Plate(), cmd.Brand(), cmd.Model(), cmd.Year(), cmd.Documents()); err != nil {
		return nil, err
	}

	if err = vehicleRepo.Update(ctx, veh); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return veh, nil
}
