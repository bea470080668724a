package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllRouteLogsQueryHandler retrieves custody legs across the fleet.
type GetAllRouteLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRouteLogsQueryHandler creates a handler for fleet-wide log queries.
func NewGetAllRouteLogsQueryHandler(db *gorm.DB) GetAllRouteLogsQueryHandler {
	return GetAllRouteLogsQueryHandler{db: db}
}

// Handle executes the query, applying the optional status and driver
// filters, most recent leg first.
func (h GetAllRouteLogsQueryHandler) Handle(
	ctx context.Context,
	query GetAllRouteLogsQuery,
) ([]RouteLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT` + routeLogColumns + `
		FROM route_logs
		WHERE 1=1`
	args := make([]any, 0, 2)

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, int(*status))
	}
	if driver := query.DriverName(); driver != "" {
		sql += ` AND driver_name = ?`
		args = append(args, driver)
	}
	sql += `
		ORDER BY start_date DESC`

	logs := make([]RouteLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
