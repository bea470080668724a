package queries

import (
	"errors"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/guard"
)

var ErrGetActiveRouteLogQueryIsNotConstructed = errors.New(
	"GetActiveRouteLogQuery must be created via NewGetActiveRouteLogQuery constructor",
)

// GetActiveRouteLogQuery retrieves the open custody leg of a vehicle:
// who currently holds it and since when.
//
// Example:
//
//	query, err := NewGetActiveRouteLogQuery(vehicleID)
//	if err != nil {
//	    return err
//	}
//
//	log, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nobody holds the vehicle right now
//	}
type GetActiveRouteLogQuery struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveRouteLogQuery creates a query for a vehicle's open custody leg.
func NewGetActiveRouteLogQuery(vehicleID kernel.UUID) (GetActiveRouteLogQuery, error) {
	q := GetActiveRouteLogQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setVehicleID(vehicleID); err != nil {
		return GetActiveRouteLogQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveRouteLogQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRouteLogQueryIsNotConstructed)
}

// VehicleID returns the vehicle whose custody is being looked up.
func (q GetActiveRouteLogQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

func (q *GetActiveRouteLogQuery) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	q.vehicleID = vehicleID
	return nil
}

// RouteLogQueryResponse represents a custody leg in the read model.
// Status carries the wire representation (ACTIVE, FINISHED, TRANSFERRED);
// closure fields are nil while the leg is open.
type RouteLogQueryResponse struct {
	ID           kernel.UUID
	VehicleID    kernel.UUID
	Status       string
	DriverName   string
	StartMileage int
	EndMileage   *int
	StartDate    time.Time
	EndDate      *time.Time
	NotesStart   string
	NotesEnd     string
	ImagesStart  []string
	ImagesEnd    []string
	ReceiverName *string
	TransferTo   *string
}
