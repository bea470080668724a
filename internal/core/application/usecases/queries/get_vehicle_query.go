package queries

import (
	"errors"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery retrieves a single vehicle by its identifier.
type GetVehicleQuery struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleQuery creates a query for one vehicle.
func NewGetVehicleQuery(vehicleID kernel.UUID) (GetVehicleQuery, error) {
	q := GetVehicleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setVehicleID(vehicleID); err != nil {
		return GetVehicleQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

// VehicleID returns the identifier being looked up.
func (q GetVehicleQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

func (q *GetVehicleQuery) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	q.vehicleID = vehicleID
	return nil
}
