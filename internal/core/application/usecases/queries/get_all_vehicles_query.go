// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery retrieves the whole fleet registry.
// Returns plate, descriptive data, current status and the active custody
// pointer for each vehicle, ordered by plate.
//
// Example:
//
//	query := NewGetAllVehiclesQuery()
//	handler := NewGetAllVehiclesQueryHandler(db)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve vehicles: %w", err)
//	}
//
//	for _, v := range vehicles {
//	    fmt.Printf("%s (%s %s) is %s\n", v.Plate, v.Brand, v.Model, v.Status)
//	}
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to retrieve all vehicles.
// This is a parameterless query that fetches the complete registry.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllVehiclesQueryIsNotConstructed if validation fails.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// VehicleQueryResponse represents vehicle information in the read model.
// Status carries the wire representation (AVAILABLE, IN_USE, MAINTENANCE,
// TRANSFERRED); document dates are zero when not recorded.
type VehicleQueryResponse struct {
	ID                kernel.UUID
	Plate             string
	Brand             string
	Model             string
	Year              int
	Status            string
	ActiveRouteLogID  *kernel.UUID
	CirculationPermit time.Time
	TechnicalReview   time.Time
	Insurance         time.Time
	GasesReview       time.Time
}
