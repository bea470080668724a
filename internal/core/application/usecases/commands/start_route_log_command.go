package commands

import (
	"errors"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/errs"
	"fleetlog/internal/pkg/guard"
)

var ErrStartRouteLogCommandIsNotConstructed = errors.New(
	"StartRouteLogCommand must be created via NewStartRouteLogCommand constructor",
)

// StartRouteLogCommand represents a request to open custody of a vehicle:
// a driver takes the vehicle at a given odometer reading and a new ACTIVE
// route log begins. Carries a caller-generated log ID.
//
// Example:
//
//	cmd, err := NewStartRouteLogCommand(
//	    kernel.NewUUID(), vehicleID, "Juan", 1000, "tank full", nil, time.Now())
//	if err != nil {
//	    return err
//	}
//	log, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrCustodyConflict) {
//	    // somebody else holds the vehicle
//	}
type StartRouteLogCommand struct { //nolint:recvcheck //using for validation
	logID        kernel.UUID
	vehicleID    kernel.UUID
	driverName   string
	startMileage int
	notesStart   string
	imagesStart  []string
	startDate    time.Time

	guard guard.ConstructorGuard
}

// NewStartRouteLogCommand creates a command to open a custody leg.
// Validates identifiers, requires a driver name and a start date, and
// rejects negative mileage.
func NewStartRouteLogCommand(
	logID kernel.UUID,
	vehicleID kernel.UUID,
	driverName string,
	startMileage int,
	notesStart string,
	imagesStart []string,
	startDate time.Time,
) (StartRouteLogCommand, error) {
	cmd := StartRouteLogCommand{
		notesStart:  notesStart,
		imagesStart: imagesStart,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLogID(logID),
		cmd.setVehicleID(vehicleID),
		cmd.setDriverName(driverName),
		cmd.setStartMileage(startMileage),
		cmd.setStartDate(startDate),
	); err != nil {
		return StartRouteLogCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteLogCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteLogCommandIsNotConstructed)
}

// LogID returns the identifier for the new route log.
func (c StartRouteLogCommand) LogID() kernel.UUID {
	return c.logID
}

// VehicleID returns the identifier of the vehicle taken into custody.
func (c StartRouteLogCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DriverName returns the custodian taking the vehicle.
func (c StartRouteLogCommand) DriverName() string {
	return c.driverName
}

// StartMileage returns the odometer reading at handover.
func (c StartRouteLogCommand) StartMileage() int {
	return c.startMileage
}

// NotesStart returns the free-form notes recorded at handover.
func (c StartRouteLogCommand) NotesStart() string {
	return c.notesStart
}

// ImagesStart returns the image URIs attached at handover.
func (c StartRouteLogCommand) ImagesStart() []string {
	return c.imagesStart
}

// StartDate returns the instant custody begins.
func (c StartRouteLogCommand) StartDate() time.Time {
	return c.startDate
}

func (c *StartRouteLogCommand) setLogID(logID kernel.UUID) error {
	if err := logID.Validate(); err != nil {
		return err
	}

	c.logID = logID
	return nil
}

func (c *StartRouteLogCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *StartRouteLogCommand) setDriverName(driverName string) error {
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}

	c.driverName = driverName
	return nil
}

func (c *StartRouteLogCommand) setStartMileage(startMileage int) error {
	if startMileage < 0 {
		return errs.NewValueIsInvalidError("startMileage")
	}

	c.startMileage = startMileage
	return nil
}

func (c *StartRouteLogCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}

	c.startDate = startDate
	return nil
}
