package commands

import (
	"errors"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/guard"
)

var ErrChangeVehicleStatusCommandIsNotConstructed = errors.New(
	"ChangeVehicleStatusCommand must be created via NewChangeVehicleStatusCommand constructor",
)

// ChangeVehicleStatusCommand represents a manual status change request,
// such as sending a vehicle to maintenance or marking it transferred out of
// the fleet. IN_USE is never a manual target: only the custody lifecycle
// moves vehicles into and out of it.
type ChangeVehicleStatusCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	target    vehicle.Status

	guard guard.ConstructorGuard
}

// NewChangeVehicleStatusCommand creates a command to manually change a
// vehicle's status. Validates that the vehicle ID and target status are valid;
// whether the transition is allowed is decided by the aggregate.
func NewChangeVehicleStatusCommand(
	vehicleID kernel.UUID,
	target vehicle.Status,
) (ChangeVehicleStatusCommand, error) {
	cmd := ChangeVehicleStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeVehicleStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVehicleStatusCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to change.
func (c ChangeVehicleStatusCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Target returns the requested status.
func (c ChangeVehicleStatusCommand) Target() vehicle.Status {
	return c.target
}

func (c *ChangeVehicleStatusCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *ChangeVehicleStatusCommand) setTarget(target vehicle.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
