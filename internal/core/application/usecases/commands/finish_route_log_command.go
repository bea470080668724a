package commands

import (
	"errors"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/errs"
	"fleetlog/internal/pkg/guard"
)

var ErrFinishRouteLogCommandIsNotConstructed = errors.New(
	"FinishRouteLogCommand must be created via NewFinishRouteLogCommand constructor",
)

// FinishRouteLogCommand represents the end of a custody leg: the vehicle is
// returned, the leg closes as FINISHED and the vehicle becomes AVAILABLE
// again. The command addresses the leg being closed by its own ID, so a
// retry of an already-closed leg fails instead of closing a successor leg.
// The receiver name is optional; when set it records who accepted the
// vehicle back.
type FinishRouteLogCommand struct { //nolint:recvcheck //using for validation
	logID        kernel.UUID
	endMileage   int
	notesEnd     string
	imagesEnd    []string
	receiverName string
	endDate      time.Time

	guard guard.ConstructorGuard
}

// NewFinishRouteLogCommand creates a command to close the custody leg
// identified by logID. Requires the closure instant and rejects negative
// mileage. receiverName may be empty.
func NewFinishRouteLogCommand(
	logID kernel.UUID,
	endMileage int,
	notesEnd string,
	imagesEnd []string,
	receiverName string,
	endDate time.Time,
) (FinishRouteLogCommand, error) {
	cmd := FinishRouteLogCommand{
		notesEnd:     notesEnd,
		imagesEnd:    imagesEnd,
		receiverName: receiverName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLogID(logID),
		cmd.setEndMileage(endMileage),
		cmd.setEndDate(endDate),
	); err != nil {
		return FinishRouteLogCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishRouteLogCommand) Validate() error {
	return c.guard.Validate(ErrFinishRouteLogCommandIsNotConstructed)
}

// LogID returns the identifier of the custody leg being closed.
func (c FinishRouteLogCommand) LogID() kernel.UUID {
	return c.logID
}

// EndMileage returns the odometer reading at return.
func (c FinishRouteLogCommand) EndMileage() int {
	return c.endMileage
}

// NotesEnd returns the closing notes.
func (c FinishRouteLogCommand) NotesEnd() string {
	return c.notesEnd
}

// ImagesEnd returns the closing image URIs.
func (c FinishRouteLogCommand) ImagesEnd() []string {
	return c.imagesEnd
}

// ReceiverName returns who accepted the vehicle back, empty if unrecorded.
func (c FinishRouteLogCommand) ReceiverName() string {
	return c.receiverName
}

// EndDate returns the closure instant.
func (c FinishRouteLogCommand) EndDate() time.Time {
	return c.endDate
}

func (c *FinishRouteLogCommand) setLogID(logID kernel.UUID) error {
	if err := logID.Validate(); err != nil {
		return err
	}

	c.logID = logID
	return nil
}

func (c *FinishRouteLogCommand) setEndMileage(endMileage int) error {
	if endMileage < 0 {
		return errs.NewValueIsInvalidError("endMileage")
	}

	c.endMileage = endMileage
	return nil
}

func (c *FinishRouteLogCommand) setEndDate(endDate time.Time) error {
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}

	c.endDate = endDate
	return nil
}
