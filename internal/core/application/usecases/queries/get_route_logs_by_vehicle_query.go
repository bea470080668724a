package queries

import (
	"errors"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/guard"
)

var ErrGetRouteLogsByVehicleQueryIsNotConstructed = errors.New(
	"GetRouteLogsByVehicleQuery must be created via NewGetRouteLogsByVehicleQuery constructor",
)

// GetRouteLogsByVehicleQuery retrieves the full custody history of a vehicle,
// most recent leg first.
type GetRouteLogsByVehicleQuery struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteLogsByVehicleQuery creates a query for a vehicle's custody history.
func NewGetRouteLogsByVehicleQuery(vehicleID kernel.UUID) (GetRouteLogsByVehicleQuery, error) {
	q := GetRouteLogsByVehicleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setVehicleID(vehicleID); err != nil {
		return GetRouteLogsByVehicleQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteLogsByVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteLogsByVehicleQueryIsNotConstructed)
}

// VehicleID returns the vehicle whose history is being looked up.
func (q GetRouteLogsByVehicleQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

func (q *GetRouteLogsByVehicleQuery) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	q.vehicleID = vehicleID
	return nil
}
