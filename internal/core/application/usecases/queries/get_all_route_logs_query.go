package queries

import (
	"errors"

	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/pkg/guard"
)

var ErrGetAllRouteLogsQueryIsNotConstructed = errors.New(
	"GetAllRouteLogsQuery must be created via NewGetAllRouteLogsQuery constructor",
)

// GetAllRouteLogsQuery retrieves custody legs across the whole fleet with
// optional filters: by status (e.g. every ACTIVE leg right now) and by
// driver name.
//
// Example:
//
//	query, err := NewGetAllRouteLogsQuery("ACTIVE", "")
//	if err != nil {
//	    return err
//	}
//	open, err := handler.Handle(ctx, query)
type GetAllRouteLogsQuery struct { //nolint:recvcheck //using for validation
	status     *routelog.Status
	driverName string

	guard guard.ConstructorGuard
}

// NewGetAllRouteLogsQuery creates a query over all custody legs.
// status filters by the wire representation when non-empty; driverName
// filters by exact custodian name when non-empty.
func NewGetAllRouteLogsQuery(status, driverName string) (GetAllRouteLogsQuery, error) {
	q := GetAllRouteLogsQuery{
		driverName: driverName,
		guard:      guard.NewConstructorGuard(),
	}

	if err := q.setStatus(status); err != nil {
		return GetAllRouteLogsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllRouteLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRouteLogsQueryIsNotConstructed)
}

// Status returns the status filter, nil when unfiltered.
func (q GetAllRouteLogsQuery) Status() *routelog.Status {
	return q.status
}

// DriverName returns the driver filter, empty when unfiltered.
func (q GetAllRouteLogsQuery) DriverName() string {
	return q.driverName
}

func (q *GetAllRouteLogsQuery) setStatus(status string) error {
	if status == "" {
		return nil
	}

	parsed, err := routelog.StatusFromString(status)
	if err != nil {
		return err
	}

	q.status = &parsed
	return nil
}
