package ports

import (
	"context"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
)

// RouteLogRepository defines the persistence contract for route log aggregates.
type RouteLogRepository interface {
	// Add persists a new route log to storage.
	Add(ctx context.Context, aggregate *routelog.RouteLog) error

	// Close persists the closure of a route log. The write is conditioned on
	// the stored row still being ACTIVE (compare-and-set): if a concurrent
	// closure already won, InvalidStateError is returned and nothing is
	// written. This is what makes double closure impossible even when two
	// callers loaded the same Active leg.
	Close(ctx context.Context, aggregate *routelog.RouteLog) error

	// Get retrieves a route log by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*routelog.RouteLog, error)

	// GetActiveByVehicle retrieves the single ACTIVE log for a vehicle,
	// ordered by start date descending in case a stale pointer ever left
	// more than one candidate. Returns ObjectNotFoundError when none exists.
	GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (*routelog.RouteLog, error)

	// GetAllByVehicle retrieves the full custody history of a vehicle,
	// most recent leg first.
	GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*routelog.RouteLog, error)
}
