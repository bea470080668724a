package commands

import (
	"context"
	"errors"

	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/errs"
)

// CreateVehicleCommandHandler handles the business logic for vehicle registration.
// New vehicles start in AVAILABLE status with no custody history.
//
// Example:
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrDuplicatePlate) {
//	    // the plate is already registered
//	}
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
// Requires a VehicleUoWFactory for transactional persistence.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Checks plate uniqueness inside the transaction before inserting; the
// database unique index backs this check up against concurrent inserts.
// Returns the created aggregate on success and DuplicatePlateError when the
// plate is already taken.
func (h *CreateVehicleCommandHandler) Handle(
	ctx context.Context,
	cmd CreateVehicleCommand,
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

	_, err := vehicleRepo.GetByPlate(ctx, cmd.Plate())
	if err == nil {
		return nil, errs.NewDuplicatePlateError(cmd.Plate().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newVehicle, err := vehicle.NewVehicle(
		cmd.VehicleID(), cmd.Plate(), cmd.Brand(), cmd.Model(), cmd.Year(), cmd.Documents())
	if err != nil {
		return nil, err
	}

	if err = vehicleRepo.Add(ctx, newVehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newVehicle, nil
}
