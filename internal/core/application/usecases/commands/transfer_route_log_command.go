package commands

import (
	"errors"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/errs"
	"fleetlog/internal/pkg/guard"
)

var ErrTransferRouteLogCommandIsNotConstructed = errors.New(
	"TransferRouteLogCommand must be created via NewTransferRouteLogCommand constructor",
)

// TransferRouteLogCommand represents a custody handoff: the leg identified
// by logID is closed as TRANSFERRED and a successor leg opens for the new
// driver at the same odometer reading. Addressing the leg by its own ID
// means a handoff aimed at an already-closed leg fails instead of closing
// whichever leg is active now. Carries a caller-generated ID for the
// successor leg.
//
// Example:
//
//	cmd, err := NewTransferRouteLogCommand(
//	    kernel.NewUUID(), logID, "Pedro", 1200, "handoff at depot", nil, time.Now())
//	if err != nil {
//	    return err
//	}
//	closed, successor, err := handler.Handle(ctx, cmd)
type TransferRouteLogCommand struct { //nolint:recvcheck //using for validation
	successorID   kernel.UUID
	logID         kernel.UUID
	newDriverName string
	endMileage    int
	notesEnd      string
	imagesEnd     []string
	endDate       time.Time

	guard guard.ConstructorGuard
}

// NewTransferRouteLogCommand creates a command to hand the custody leg
// identified by logID over to a new driver. Validates identifiers, requires
// the receiving driver's name and the handoff instant, and rejects negative
// mileage.
func NewTransferRouteLogCommand(
	successorID kernel.UUID,
	logID kernel.UUID,
	newDriverName string,
	endMileage int,
	notesEnd string,
	imagesEnd []string,
	endDate time.Time,
) (TransferRouteLogCommand, error) {
	cmd := TransferRouteLogCommand{
		notesEnd:  notesEnd,
		imagesEnd: imagesEnd,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSuccessorID(successorID),
		cmd.setLogID(logID),
		cmd.setNewDriverName(newDriverName),
		cmd.setEndMileage(endMileage),
		cmd.setEndDate(endDate),
	); err != nil {
		return TransferRouteLogCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferRouteLogCommand) Validate() error {
	return c.guard.Validate(ErrTransferRouteLogCommandIsNotConstructed)
}

// SuccessorID returns the identifier for the successor route log.
func (c TransferRouteLogCommand) SuccessorID() kernel.UUID {
	return c.successorID
}

// LogID returns the identifier of the custody leg being handed over.
func (c TransferRouteLogCommand) LogID() kernel.UUID {
	return c.logID
}

// NewDriverName returns the receiving custodian.
func (c TransferRouteLogCommand) NewDriverName() string {
	return c.newDriverName
}

// EndMileage returns the odometer reading at handoff.
func (c TransferRouteLogCommand) EndMileage() int {
	return c.endMileage
}

// NotesEnd returns the closing notes for the outgoing leg.
func (c TransferRouteLogCommand) NotesEnd() string {
	return c.notesEnd
}

// ImagesEnd returns the closing image URIs for the outgoing leg.
func (c TransferRouteLogCommand) ImagesEnd() []string {
	return c.imagesEnd
}

// EndDate returns the handoff instant.
func (c TransferRouteLogCommand) EndDate() time.Time {
	return c.endDate
}

func (c *TransferRouteLogCommand) setSuccessorID(successorID kernel.UUID) error {
	if err := successorID.Validate(); err != nil {
		return err
	}

	c.successorID = successorID
	return nil
}

func (c *TransferRouteLogCommand) setLogID(logID kernel.UUID) error {
	if err := logID.Validate(); err != nil {
		return err
	}

	c.logID = logID
	return nil
}

func (c *TransferRouteLogCommand) setNewDriverName(newDriverName string) error {
	if newDriverName == "" {
		return errs.NewValueIsRequiredError("newDriverName")
	}

	c.newDriverName = newDriverName
	return nil
}

func (c *TransferRouteLogCommand) setEndMileage(endMileage int) error {
	if endMileage < 0 {
		return errs.NewValueIsInvalidError("endMileage")
	}

	c.endMileage = endMileage
	return nil
}

func (c *TransferRouteLogCommand) setEndDate(endDate time.Time) error {
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}

	c.endDate = endDate
	return nil
}
