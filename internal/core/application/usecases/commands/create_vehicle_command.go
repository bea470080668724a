package commands

import (
	"errors"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new fleet vehicle.
// Carries a caller-generated vehicle ID so the API can return the identifier
// it was asked to create.
//
// Example:
//
//	plate, _ := kernel.NewPlate("abcd-123") // normalized to ABCD-123
//	cmd, err := NewCreateVehicleCommand(kernel.NewUUID(), plate, "Toyota", "Hilux", 2022, docs)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	plate     kernel.Plate
	brand     string
	model     string
	year      int
	documents vehicle.DocumentDates

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Validates that the vehicle ID and plate are properly constructed value
// objects. Brand, model, year and document dates are optional and validated
// by the aggregate.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	plate kernel.Plate,
	brand, model string,
	year int,
	documents vehicle.DocumentDates,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
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
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVehicleCommandIsNotConstructed if validation fails.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the new vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the normalized plate number.
func (c CreateVehicleCommand) Plate() kernel.Plate {
	return c.plate
}

// Brand returns the vehicle brand, empty if not provided.
func (c CreateVehicleCommand) Brand() string {
	return c.brand
}

// Model returns the vehicle model, empty if not provided.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Year returns the manufacturing year, zero if not provided.
func (c CreateVehicleCommand) Year() int {
	return c.year
}

// Documents returns the vehicle document expiry dates.
func (c CreateVehicleCommand) Documents() vehicle.DocumentDates {
	return c.documents
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setPlate(plate kernel.Plate) error {
	if err := plate.Validate(); err != nil {
		return err
	}

	c.plate = plate
	return nil
}
