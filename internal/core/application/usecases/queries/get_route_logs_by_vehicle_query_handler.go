package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRouteLogsByVehicleQueryHandler retrieves a vehicle's custody history.
type GetRouteLogsByVehicleQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteLogsByVehicleQueryHandler creates a handler for history queries.
func NewGetRouteLogsByVehicleQueryHandler(db *gorm.DB) GetRouteLogsByVehicleQueryHandler {
	return GetRouteLogsByVehicleQueryHandler{db: db}
}

// Handle executes the query, returning legs most recent first.
// An unknown vehicle yields an empty slice, not an error: history and
// existence are separate questions.
func (h GetRouteLogsByVehicleQueryHandler) Handle(
	ctx context.Context,
	query GetRouteLogsByVehicleQuery,
) ([]RouteLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	logs := make([]RouteLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+routeLogColumns+`
		FROM route_logs
		WHERE vehicle_id = ?
		ORDER BY start_date DESC
	`, query.VehicleID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanRouteLogRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		logs = append(logs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
