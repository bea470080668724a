package vehicle

import (
	"fmt"

	"fleetlog/internal/pkg/errs"
)

// Status represents the availability state of a vehicle.
// It implements a state machine with defined transitions:
//
//	Available ──> InUse ──> Available
//	    │ ▲
//	    ▼ │
//	Maintenance / Transferred   (manual side states, no custody)
//
// Available/InUse transitions are driven exclusively by the route-log
// lifecycle; Maintenance and Transferred are reachable only through manual
// status changes while the vehicle carries no active custody.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the vehicle has no active custody and can be started.
	Available

	// InUse means a driver currently holds custody via an active route log.
	InUse

	// Maintenance marks the vehicle as manually taken out of rotation.
	Maintenance

	// Transferred marks the vehicle as handed off out of the fleet.
	Transferred
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Available:   "AVAILABLE",
		InUse:       "IN_USE",
		Maintenance: "MAINTENANCE",
		Transferred: "TRANSFERRED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "AVAILABLE",
		InUse:       "IN_USE",
		Maintenance: "MAINTENANCE",
		Transferred: "TRANSFERRED",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid vehicle status", s))
}

// Validate checks that the Status is one of the defined values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("AVAILABLE", "IN_USE", ...).
// It implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartUse transitions the status to InUse.
//
// Valid transitions:
//   - Available -> InUse
//
// Any other current status means custody cannot start now.
func (s Status) StartUse() (Status, error) {
	if s != Available {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to start use", s.String()))
	}
	return InUse, nil
}

// Release transitions the status back to Available when custody ends.
//
// Valid transitions:
//   - InUse -> Available
func (s Status) Release() (Status, error) {
	if s != InUse {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to release", s.String()))
	}
	return Available, nil
}

// ChangeManually validates a manual status change to target.
// Manual changes may move between Available, Maintenance and Transferred,
// but never into or out of InUse: those transitions belong to the route-log
// lifecycle.
func (s Status) ChangeManually(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s == InUse || target == InUse {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("manual change %s -> %s is not allowed", s.String(), target.String()))
	}
	return target, nil
}

// ValidateCanHoldActiveLog validates the consistency between vehicle status
// and the presence of an active route log pointer.
//
// Rules:
//   - InUse vehicles must reference an active route log
//   - every other status must not reference one
func (s Status) ValidateCanHoldActiveLog(hasActiveLog bool) error {
	if hasActiveLog && s != InUse {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to hold an active route log", s.String()))
	}
	if !hasActiveLog && s == InUse {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s requires an active route log", s.String()))
	}
	return nil
}
