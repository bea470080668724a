package routelog

import (
	"fmt"

	"fleetlog/internal/pkg/errs"
)

// Status represents the lifecycle state of a route log leg.
//
// State transitions:
//
//	Active ──┬──> Finished
//	         └──> Transferred
//
// Both closed states are final. Double closure is rejected, never silently
// ignored, because re-crediting mileage on an already closed leg would corrupt
// billing and audit history.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status: the leg is open and the named driver
	// currently holds custody of the vehicle.
	Active

	// Finished means the leg closed and the vehicle returned to the pool.
	Finished

	// Transferred means the leg closed by handing custody to the next driver.
	Transferred
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Active:      "ACTIVE",
		Finished:    "FINISHED",
		Transferred: "TRANSFERRED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:      "ACTIVE",
		Finished:    "FINISHED",
		Transferred: "TRANSFERRED",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid route log status", s))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("ACTIVE", "FINISHED", ...).
// It implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsClosed reports whether the status is one of the final states.
func (s Status) IsClosed() bool {
	return s == Finished || s == Transferred
}

// Finish transitions the status to Finished.
//
// Valid transitions:
//   - Active -> Finished
func (s Status) Finish() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to finish", s.String()))
	}
	return Finished, nil
}

// Transfer transitions the status to Transferred.
//
// Valid transitions:
//   - Active -> Transferred
func (s Status) Transfer() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to transfer", s.String()))
	}
	return Transferred, nil
}

// ValidateCanHaveClosure validates the consistency between status and the
// presence of closure fields (end mileage, end date).
//
// Rules:
//   - Active legs must not carry closure fields
//   - Finished and Transferred legs must carry them
func (s Status) ValidateCanHaveClosure(closed bool) error {
	if closed && !s.IsClosed() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to carry closure fields", s.String()))
	}
	if !closed && s.IsClosed() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s requires closure fields", s.String()))
	}
	return nil
}
