package commands

import (
	"errors"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a request to change a vehicle's descriptive
// data: plate, brand, model, year and document expiry dates. Custody state is
// never touched by this command.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	plate     kernel.Plate
	brand     string
	model     string
	year      int
	documents vehicle.DocumentDates

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to update a vehicle's details.
// Validates that the vehicle ID and plate are properly constructed.
func NewUpdateVehicleCommand(
	vehicleID kernel.UUID,
	plate kernel.Plate,
	brand, model string,
	year int,
	documents vehicle.DocumentDates,
) (UpdateVehicleCommand, error) {
	cmd := UpdateVehicleCommand{
		brand:     brand,
		model:     model,
		year:      year,
		documents: documents,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlate(plate),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to update.
func (c UpdateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the new normalized plate number.
func (c UpdateVehicleCommand) Plate() kernel.Plate {
	return c.plate
}

// Brand returns the new vehicle brand.
func (c UpdateVehicleCommand) Brand() string {
	return c.brand
}

// Model returns the new vehicle model.
func (c UpdateVehicleCommand) Model() string {
	return c.model
}

// Year returns the new manufacturing year.
func (c UpdateVehicleCommand) Year() int {
	return c.year
}

// Documents returns the new document expiry dates.
func (c UpdateVehicleCommand) Documents() vehicle.DocumentDates {
	return c.documents
}

func (c *UpdateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateVehicleCommand) setPlate(plate kernel.Plate) error {
	if err := plate.Validate(); err != nil {
		return err
	}

	c.plate = plate
	return nil
}
