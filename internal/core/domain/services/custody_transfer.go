package services

import (
	"fmt"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/errs"
)

// CustodyTransferService is the domain service for custody handoffs between
// drivers. A handoff closes the current route log as Transferred and opens a
// fresh Active leg for the receiving driver in one logical step, keeping the
// vehicle InUse the whole time.
//
// The service only mutates aggregates in memory; persisting all three changes
// atomically is the command handler's job, via a unit of work.
//
// Business rules:
//   - the log being closed must belong to the given vehicle
//   - the successor leg starts exactly where the closed leg ended: its
//     startMileage is the closed leg's endMileage
//   - the vehicle never transiently leaves InUse and never points at a
//     closed leg after the handoff
type CustodyTransferService struct{}

// NewCustodyTransferService creates a CustodyTransferService.
func NewCustodyTransferService() CustodyTransferService {
	return CustodyTransferService{}
}

// Transfer executes the handoff on the given aggregates.
//
// Parameters:
//   - current: the Active log being closed
//   - veh: the vehicle whose custody is handed over
//   - successorID: identifier for the new leg
//   - newDriverName: the receiving custodian
//   - endMileage: odometer at handoff, must be >= current.StartMileage
//   - notesEnd, imagesEnd: closure notes and images for the closed leg
//   - now: the handoff instant (closure of the old leg, start of the new one)
//
// Returns the successor leg on success. On any failure the aggregates are
// left unchanged: the closing log validates its own preconditions before
// mutating, and the successor is constructed before the vehicle is repointed.
func (CustodyTransferService) Transfer(
	current *routelog.RouteLog,
	veh *vehicle.Vehicle,
	successorID kernel.UUID,
	newDriverName string,
	endMileage int,
	notesEnd string,
	imagesEnd []string,
	now time.Time,
) (*routelog.RouteLog, error) {
	if err := current.Validate(); err != nil {
		return nil, err
	}
	if err := veh.Validate(); err != nil {
		return nil, err
	}
	if !current.VehicleID().IsEqual(veh.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("logId",
			fmt.Errorf("route log %s does not belong to vehicle %s", current.ID(), veh.ID()))
	}

	if err := current.Transfer(newDriverName, endMileage, notesEnd, imagesEnd, now); err != nil {
		return nil, err
	}

	successor, err := routelog.NewRouteLog(
		successorID, veh.ID(), newDriverName, endMileage, "", nil, now)
	if err != nil {
		return nil, err
	}

	if err = veh.HandOver(successorID); err != nil {
		return nil, err
	}

	return successor, nil
}
