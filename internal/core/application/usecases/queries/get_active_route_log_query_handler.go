package queries

import (
	"context"
	"database/sql"
	"errors"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// routeLogColumns is the column list every route log query selects, in the
// order scanRouteLogRow expects.
const routeLogColumns = `
	id,
	vehicle_id,
	status,
	driver_name,
	start_mileage,
	end_mileage,
	start_date,
	end_date,
	notes_start,
	notes_end,
	images_start,
	images_end,
	receiver_name,
	transfer_to`

// GetActiveRouteLogQueryHandler retrieves a vehicle's open custody leg.
// Resolution is pointer-first: the vehicle's active-log pointer wins when it
// is set and still names an ACTIVE leg; a pointer left behind by a failed
// write falls back to the latest ACTIVE row for the vehicle, so a stale
// pointer never hides real custody.
type GetActiveRouteLogQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveRouteLogQueryHandler creates a handler for active custody lookups.
func NewGetActiveRouteLogQueryHandler(db *gorm.DB) GetActiveRouteLogQueryHandler {
	return GetActiveRouteLogQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns ObjectNotFoundError when the vehicle does not exist or has no open
// custody leg.
func (h GetActiveRouteLogQueryHandler) Handle(
	ctx context.Context,
	query GetActiveRouteLogQuery,
) (RouteLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RouteLogQueryResponse{}, err
	}

	var pointer *uuid.UUID
	result := h.db.WithContext(ctx).Raw(`
		SELECT active_route_log_id FROM vehicles WHERE id = ?
	`, query.VehicleID().Bytes()).Scan(&pointer)
	if result.Error != nil {
		return RouteLogQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return RouteLogQueryResponse{}, errs.NewObjectNotFoundError(
			"vehicleId", query.VehicleID().String())
	}

	if pointer != nil {
		resp, err := h.byID(ctx, query, *pointer)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return RouteLogQueryResponse{}, err
		}
		// Stale pointer: the leg it names is gone or already closed.
	}

	return h.latestActive(ctx, query)
}

func (h GetActiveRouteLogQueryHandler) byID(
	ctx context.Context,
	query GetActiveRouteLogQuery,
	id uuid.UUID,
) (RouteLogQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+routeLogColumns+`
		FROM route_logs
		WHERE id = ? AND status = ?
	`, id, int(routelog.Active)).Rows()
	if err != nil {
		return RouteLogQueryResponse{}, err
	}
	defer rows.Close()

	return oneRouteLogRow(rows, query.VehicleID())
}

func (h GetActiveRouteLogQueryHandler) latestActive(
	ctx context.Context,
	query GetActiveRouteLogQuery,
) (RouteLogQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+routeLogColumns+`
		FROM route_logs
		WHERE vehicle_id = ? AND status = ?
		ORDER BY start_date DESC
		LIMIT 1
	`, query.VehicleID().Bytes(), int(routelog.Active)).Rows()
	if err != nil {
		return RouteLogQueryResponse{}, err
	}
	defer rows.Close()

	return oneRouteLogRow(rows, query.VehicleID())
}

func oneRouteLogRow(rows *sql.Rows, vehicleID kernel.UUID) (RouteLogQueryResponse, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return RouteLogQueryResponse{}, err
		}
		return RouteLogQueryResponse{}, errs.NewObjectNotFoundError("vehicleId", vehicleID.String())
	}

	resp, err := scanRouteLogRow(rows)
	if err != nil {
		return RouteLogQueryResponse{}, err
	}

	return resp, rows.Err()
}

// scanRouteLogRow maps one row of the route log projection to the read model.
func scanRouteLogRow(rows *sql.Rows) (RouteLogQueryResponse, error) {
	var resp RouteLogQueryResponse
	var id, vehicleID uuid.UUID
	var status int
	var imagesStart, imagesEnd pq.StringArray

	err := rows.Scan(
		&id,
		&vehicleID,
		&status,
		&resp.DriverName,
		&resp.StartMileage,
		&resp.EndMileage,
		&resp.StartDate,
		&resp.EndDate,
		&resp.NotesStart,
		&resp.NotesEnd,
		&imagesStart,
		&imagesEnd,
		&resp.ReceiverName,
		&resp.TransferTo,
	)
	if err != nil {
		return RouteLogQueryResponse{}, err
	}

	logID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RouteLogQueryResponse{}, err
	}
	resp.ID = logID

	vID, err := kernel.UUIDFromBytes(vehicleID[:])
	if err != nil {
		return RouteLogQueryResponse{}, err
	}
	resp.VehicleID = vID

	resp.Status = routelog.Status(status).String()
	resp.ImagesStart = []string(imagesStart)
	resp.ImagesEnd = []string(imagesEnd)
	return resp, nil
}
