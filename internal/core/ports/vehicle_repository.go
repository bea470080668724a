package ports

import (
	"context"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// A plate-number uniqueness violation surfaces as DuplicatePlateError.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle unconditionally.
	// Used for administrative updates that do not touch custody state.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// UpdateWithStatusCheck persists changes to an existing vehicle only if
	// its stored status still equals expected at write time (compare-and-set).
	// A concurrent transition that already changed the status surfaces as
	// CustodyConflictError. All custody transitions go through this method so
	// two racing operations on the same vehicle cannot both win.
	UpdateWithStatusCheck(ctx context.Context, aggregate *vehicle.Vehicle, expected vehicle.Status) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByPlate retrieves a vehicle by its normalized plate number.
	// Returns ObjectNotFoundError when no vehicle carries the plate.
	GetByPlate(ctx context.Context, plate kernel.Plate) (*vehicle.Vehicle, error)

	// GetAll retrieves all vehicles ordered by plate number.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)

	// Delete removes a vehicle. Route-log history is removed with it via the
	// cascading foreign key; callers must reject deletion while an active log
	// exists before reaching this method.
	Delete(ctx context.Context, id kernel.UUID) error
}
