package routelog

import (
	"errors"
	"fmt"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/errs"
)

var (
	// ErrRouteLogIsNotConstructed is returned when a RouteLog instance was not
	// created through NewRouteLog or RestoreRouteLog.
	ErrRouteLogIsNotConstructed = errors.New("RouteLog must be created via NewRouteLog constructor")
)

// RouteLog is the aggregate root for one custody leg. It records who drove
// the vehicle, the odometer readings bounding the leg, free-text notes and
// opaque image URIs captured at both ends.
//
// RouteLog maintains these invariants:
//   - vehicleID never changes after creation: a leg belongs to exactly one
//     vehicle for its entire lifetime
//   - endMileage >= startMileage whenever the leg is closed
//   - closure happens exactly once; a second Finish or Transfer fails with
//     InvalidStateError
//   - transferTo is set if and only if the closure was a transfer
type RouteLog struct {
	// id is the immutable surrogate key
	id kernel.UUID

	// vehicleID is the owning vehicle, immutable for the leg's lifetime
	vehicleID kernel.UUID

	// status is the lifecycle state of the leg
	status Status

	// driverName is the custodian during this leg
	driverName string

	// startMileage/endMileage bound the leg; endMileage is nil while Active
	startMileage int
	endMileage   *int

	// startDate is set at creation, endDate at closure
	startDate time.Time
	endDate   *time.Time

	// notesStart/notesEnd are free text
	notesStart string
	notesEnd   string

	// imagesStart/imagesEnd are ordered opaque URIs; imagesEnd is append-only
	imagesStart []string
	imagesEnd   []string

	// receiverName records who received the vehicle at closure
	receiverName *string

	// transferTo names the next custodian, set only for transfer closures
	transferTo *string

	// isConstructed ensures the log was created via a constructor
	isConstructed bool
}

// NewRouteLog creates an Active route log starting a custody leg.
//
// Parameters:
//   - id: unique identifier for the leg (must be a valid UUID)
//   - vehicleID: the owning vehicle (must be a valid UUID)
//   - driverName: the custodian, must be non-empty
//   - startMileage: odometer reading at start, must be non-negative
//   - notesStart: optional free text
//   - imagesStart: optional opaque image URIs
//   - startDate: the leg's start instant, must be non-zero
//
// Returns a validation error if any parameter is invalid.
func NewRouteLog(
	id kernel.UUID,
	vehicleID kernel.UUID,
	driverName string,
	startMileage int,
	notesStart string,
	imagesStart []string,
	startDate time.Time,
) (*RouteLog, error) {
	log := &RouteLog{
		status:        Active,
		notesStart:    notesStart,
		imagesStart:   cloneURIs(imagesStart),
		isConstructed: true,
	}

	if err := errors.Join(
		log.setID(id),
		log.setVehicleID(vehicleID),
		log.setDriverName(driverName),
		log.setStartMileage(startMileage),
		log.setStartDate(startDate),
	); err != nil {
		return nil, err
	}

	return log, nil
}

// RestoreRouteLog reconstructs a RouteLog from persistence with its stored
// status and closure fields. The status/closure combination is validated so a
// corrupted row cannot materialize as an open leg with closure data or a
// closed leg without it.
func RestoreRouteLog(
	id kernel.UUID,
	vehicleID kernel.UUID,
	status Status,
	driverName string,
	startMileage int,
	endMileage *int,
	startDate time.Time,
	endDate *time.Time,
	notesStart, notesEnd string,
	imagesStart, imagesEnd []string,
	receiverName, transferTo *string,
) (*RouteLog, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveClosure(endMileage != nil && endDate != nil); err != nil {
		return nil, err
	}
	if status == Transferred && transferTo == nil {
		return nil, errs.NewValueIsRequiredError("transferTo")
	}
	if status != Transferred && transferTo != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("transferTo",
			fmt.Errorf("transferTo is only set on %s legs", Transferred.String()))
	}
	if endMileage != nil && *endMileage < startMileage {
		return nil, errs.NewValueIsInvalidErrorWithCause("endMileage",
			fmt.Errorf("end mileage %d is less than start mileage %d", *endMileage, startMileage))
	}

	log, err := NewRouteLog(id, vehicleID, driverName, startMileage, notesStart, imagesStart, startDate)
	if err != nil {
		return nil, err
	}

	log.status = status
	log.endMileage = endMileage
	log.endDate = endDate
	log.notesEnd = notesEnd
	log.imagesEnd = cloneURIs(imagesEnd)
	log.receiverName = receiverName
	log.transferTo = transferTo
	return log, nil
}

// Validate ensures the RouteLog instance was created through a constructor.
func (l *RouteLog) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrRouteLogIsNotConstructed
	}
	return nil
}

// IsEqual compares two route logs by identity.
func (l *RouteLog) IsEqual(other *RouteLog) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the leg's unique identifier.
func (l *RouteLog) ID() kernel.UUID {
	return l.id
}

// VehicleID returns the owning vehicle's identifier.
func (l *RouteLog) VehicleID() kernel.UUID {
	return l.vehicleID
}

// Status returns the lifecycle state of the leg.
func (l *RouteLog) Status() Status {
	return l.status
}

// DriverName returns the custodian during this leg.
func (l *RouteLog) DriverName() string {
	return l.driverName
}

// StartMileage returns the odometer reading at the start of the leg.
func (l *RouteLog) StartMileage() int {
	return l.startMileage
}

// EndMileage returns the odometer reading at closure, nil while Active.
func (l *RouteLog) EndMileage() *int {
	return l.endMileage
}

// StartDate returns the leg's start instant.
func (l *RouteLog) StartDate() time.Time {
	return l.startDate
}

// EndDate returns the closure instant, nil while Active.
func (l *RouteLog) EndDate() *time.Time {
	return l.endDate
}

// NotesStart returns the free text captured at the start of the leg.
func (l *RouteLog) NotesStart() string {
	return l.notesStart
}

// NotesEnd returns the free text captured at closure.
func (l *RouteLog) NotesEnd() string {
	return l.notesEnd
}

// ImagesStart returns the opaque image URIs captured at the start of the leg.
func (l *RouteLog) ImagesStart() []string {
	return cloneURIs(l.imagesStart)
}

// ImagesEnd returns the opaque image URIs captured toward closure.
func (l *RouteLog) ImagesEnd() []string {
	return cloneURIs(l.imagesEnd)
}

// ReceiverName returns who received the vehicle at closure, nil while Active.
func (l *RouteLog) ReceiverName() *string {
	return l.receiverName
}

// TransferTo returns the next custodian for transfer closures, nil otherwise.
func (l *RouteLog) TransferTo() *string {
	return l.transferTo
}

// AttachEndImages appends image URIs to the end-image list of an open leg.
// Supports multi-step uploads that land before the true closure; the closure
// itself appends its own images after these.
//
// Returns InvalidStateError if the leg is already closed.
func (l *RouteLog) AttachEndImages(uris []string) error {
	if l.status != Active {
		return errs.NewInvalidStateError("route log", l.status.String())
	}
	l.imagesEnd = append(l.imagesEnd, uris...)
	return nil
}

// Finish closes the leg as Finished: the driver returned the vehicle and it
// goes back to the pool.
//
// Parameters:
//   - endMileage: odometer at closure, must be >= StartMileage (equal allowed)
//   - notesEnd: optional free text
//   - imagesEnd: optional image URIs, appended to any previously attached
//   - receiverName: optional, who physically received the vehicle
//   - endDate: the closure instant
//
// Returns InvalidStateError if the leg is not Active (double closure is
// rejected) and a validation error if endMileage precedes startMileage.
func (l *RouteLog) Finish(
	endMileage int,
	notesEnd string,
	imagesEnd []string,
	receiverName string,
	endDate time.Time,
) error {
	newStatus, err := l.status.Finish()
	if err != nil {
		return errs.NewInvalidStateError("route log", l.status.String())
	}
	if err = l.validateClosure(endMileage, endDate); err != nil {
		return err
	}

	l.status = newStatus
	l.applyClosure(endMileage, notesEnd, imagesEnd, endDate)
	if receiverName != "" {
		l.receiverName = &receiverName
	}
	return nil
}

// Transfer closes the leg as Transferred, naming the next custodian. The
// successor leg is created by the custody transfer domain service; this
// method only closes the current one.
//
// Returns InvalidStateError if the leg is not Active, a required-value error
// if receiverName is empty, and a validation error if endMileage precedes
// startMileage.
func (l *RouteLog) Transfer(
	receiverName string,
	endMileage int,
	notesEnd string,
	imagesEnd []string,
	endDate time.Time,
) error {
	if receiverName == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}

	newStatus, err := l.status.Transfer()
	if err != nil {
		return errs.NewInvalidStateError("route log", l.status.String())
	}
	if err = l.validateClosure(endMileage, endDate); err != nil {
		return err
	}

	l.status = newStatus
	l.applyClosure(endMileage, notesEnd, imagesEnd, endDate)
	l.receiverName = &receiverName
	l.transferTo = &receiverName
	return nil
}

// validateClosure checks the closure parameters without mutating the leg.
func (l *RouteLog) validateClosure(endMileage int, endDate time.Time) error {
	if endMileage < l.startMileage {
		return errs.NewValueIsInvalidErrorWithCause("endMileage",
			fmt.Errorf("end mileage %d is less than start mileage %d", endMileage, l.startMileage))
	}
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}
	return nil
}

// applyClosure writes the shared closure fields. imagesEnd merges with any
// previously attached end images instead of replacing them.
func (l *RouteLog) applyClosure(endMileage int, notesEnd string, imagesEnd []string, endDate time.Time) {
	l.endMileage = &endMileage
	l.endDate = &endDate
	l.notesEnd = notesEnd
	l.imagesEnd = append(l.imagesEnd, imagesEnd...)
}

func (l *RouteLog) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *RouteLog) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleId", err)
	}
	l.vehicleID = vehicleID
	return nil
}

func (l *RouteLog) setDriverName(driverName string) error {
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}
	l.driverName = driverName
	return nil
}

func (l *RouteLog) setStartMileage(startMileage int) error {
	if startMileage < 0 {
		return errs.NewValueIsInvalidErrorWithCause("startMileage",
			fmt.Errorf("%d is not a non-negative integer", startMileage))
	}
	l.startMileage = startMileage
	return nil
}

func (l *RouteLog) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	l.startDate = startDate
	return nil
}

// cloneURIs copies an URI slice so aggregate state never aliases caller slices.
func cloneURIs(uris []string) []string {
	if len(uris) == 0 {
		return nil
	}
	out := make([]string, len(uris))
	copy(out, uris)
	return out
}
