package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary spanning the vehicle
// registry and the route log store. Every lifecycle operation (start,
// transfer, finish) runs inside exactly one unit of work so no partially
// applied custody transition is ever observable.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction started by Begin().
	VehicleRepository() VehicleRepository

	// RouteLogRepository returns a RouteLogRepository bound to the current
	// transaction started by Begin().
	RouteLogRepository() RouteLogRepository
}
