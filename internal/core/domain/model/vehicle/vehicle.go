package vehicle

import (
	"errors"
	"fmt"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
	// created through NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// yearMin/yearMax bound the optional manufacturing year field.
const (
	yearMin = 1950
	yearMax = 2100
)

// DocumentDates holds the expiry dates of the regulatory documents tracked per
// vehicle. The dates are plain fields: the custody invariants never depend on
// them, they only feed the expiry queries and the sweep job.
type DocumentDates struct {
	CirculationPermit time.Time
	TechnicalReview   time.Time
	Insurance         time.Time
	GasesReview       time.Time
}

// Vehicle is the aggregate root for a fleet vehicle. It manages the vehicle's
// identity, regulatory document dates, and the custody state machine.
//
// Vehicle maintains these invariants:
//   - the plate number is always a validated, normalized kernel.Plate
//   - status is InUse if and only if activeRouteLogID is set
//   - custody transitions only happen through StartCustody, HandOver and
//     EndCustody; manual status changes are rejected while custody is active
//
// Fields are private; the aggregate can only be built through NewVehicle or
// RestoreVehicle, which both enforce the invariants above.
type Vehicle struct {
	// id is the stable surrogate key, immutable after creation
	id kernel.UUID

	// plate is the normalized unique plate number
	plate kernel.Plate

	// brand, model and year are optional descriptive fields
	brand string
	model string
	year  int

	// documents are the regulatory document expiry dates
	documents DocumentDates

	// status is the current availability state
	status Status

	// activeRouteLogID references the open route log while status is InUse
	activeRouteLogID *kernel.UUID

	// isConstructed ensures the vehicle was created via a constructor
	isConstructed bool
}

// NewVehicle creates a Vehicle in Available status with no active custody.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - plate: normalized plate number (must be a constructed kernel.Plate)
//   - brand, model: optional descriptive fields, may be empty
//   - year: optional manufacturing year, 0 means unset
//   - documents: regulatory document expiry dates
//
// Returns a validation error if any parameter is invalid.
func NewVehicle(
	id kernel.UUID,
	plate kernel.Plate,
	brand, model string,
	year int,
	documents DocumentDates,
) (*Vehicle, error) {
	v := &Vehicle{
		status:        Available,
		documents:     documents,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setDescription(brand, model, year),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence with its stored
// status and active-log pointer. The status/pointer pair is validated so a
// corrupted row cannot materialize as an aggregate violating the custody
// invariant.
func RestoreVehicle(
	id kernel.UUID,
	plate kernel.Plate,
	brand, model string,
	year int,
	documents DocumentDates,
	status Status,
	activeRouteLogID *kernel.UUID,
) (*Vehicle, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHoldActiveLog(activeRouteLogID != nil); err != nil {
		return nil, err
	}
	if activeRouteLogID != nil {
		if err := activeRouteLogID.Validate(); err != nil {
			return nil, err
		}
	}

	v, err := NewVehicle(id, plate, brand, model, year, documents)
	if err != nil {
		return nil, err
	}

	v.status = status
	v.activeRouteLogID = activeRouteLogID
	return v, nil
}

// Validate ensures the Vehicle instance was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the normalized plate number.
func (v *Vehicle) Plate() kernel.Plate {
	return v.plate
}

// Brand returns the optional brand field.
func (v *Vehicle) Brand() string {
	return v.brand
}

// Model returns the optional model field.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the optional manufacturing year, 0 when unset.
func (v *Vehicle) Year() int {
	return v.year
}

// Documents returns the regulatory document expiry dates.
func (v *Vehicle) Documents() DocumentDates {
	return v.documents
}

// Status returns the current availability state.
func (v *Vehicle) Status() Status {
	return v.status
}

// ActiveRouteLogID returns the identifier of the currently open route log,
// or nil while no custody is active.
func (v *Vehicle) ActiveRouteLogID() *kernel.UUID {
	return v.activeRouteLogID
}

// StartCustody opens custody on the vehicle: Available -> InUse, pointing at
// the newly created route log.
//
// Returns CustodyConflictError when the vehicle is not Available. A concurrent
// start that already won presents exactly the same way, so callers treat both
// as "someone else holds this vehicle".
func (v *Vehicle) StartCustody(logID kernel.UUID) error {
	if err := logID.Validate(); err != nil {
		return err
	}

	newStatus, err := v.status.StartUse()
	if err != nil {
		return errs.NewCustodyConflictErrorWithCause("vehicle", v.id.String(),
			fmt.Errorf("vehicle is %s, not %s", v.status.String(), Available.String()))
	}

	v.status = newStatus
	v.activeRouteLogID = &logID
	return nil
}

// HandOver repoints the vehicle at the successor route log during a custody
// transfer. The vehicle stays InUse for the whole handoff; it never becomes
// transiently Available.
//
// Returns InvalidStateError when the vehicle holds no active custody.
func (v *Vehicle) HandOver(newLogID kernel.UUID) error {
	if err := newLogID.Validate(); err != nil {
		return err
	}
	if v.status != InUse || v.activeRouteLogID == nil {
		return errs.NewInvalidStateError("vehicle", v.status.String())
	}

	v.activeRouteLogID = &newLogID
	return nil
}

// EndCustody closes custody on the vehicle: InUse -> Available, clearing the
// active-log pointer.
//
// Returns InvalidStateError when the vehicle is not InUse.
func (v *Vehicle) EndCustody() error {
	newStatus, err := v.status.Release()
	if err != nil {
		return errs.NewInvalidStateError("vehicle", v.status.String())
	}

	v.status = newStatus
	v.activeRouteLogID = nil
	return nil
}

// ChangeStatus applies a manual status change (maintenance, transferred out
// of fleet, back to available). Rejected with InvalidStateError while custody
// is active or when targeting InUse.
func (v *Vehicle) ChangeStatus(target Status) error {
	newStatus, err := v.status.ChangeManually(target)
	if err != nil {
		return errs.NewInvalidStateErrorWithCause("vehicle", v.status.String(), err)
	}

	v.status = newStatus
	return nil
}

// UpdateDetails replaces the administrative fields of the vehicle: plate,
// descriptive fields and document dates. Custody state is untouched.
func (v *Vehicle) UpdateDetails(plate kernel.Plate, brand, model string, year int, documents DocumentDates) error {
	if err := errors.Join(
		v.setPlate(plate),
		v.setDescription(brand, model, year),
	); err != nil {
		return err
	}

	v.documents = documents
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate kernel.Plate) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setDescription(brand, model string, year int) error {
	if year != 0 && (year < yearMin || year > yearMax) {
		return errs.NewValueIsOutOfRangeError("year", year, yearMin, yearMax)
	}
	v.brand = brand
	v.model = model
	v.year = year
	return nil
}
