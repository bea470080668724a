package queries

import (
	"context"

	"fleetlog/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVehicleQueryHandler retrieves one vehicle from the database.
type GetVehicleQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleQueryHandler creates a handler for single-vehicle lookups.
func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns ObjectNotFoundError when no vehicle carries the identifier.
func (h GetVehicleQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleQuery,
) (VehicleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate,
			brand,
			model,
			year,
			status,
			active_route_log_id,
			circulation_permit_expiry,
			technical_review_expiry,
			insurance_expiry,
			gases_review_expiry
		FROM vehicles
		WHERE id = ?
	`, query.VehicleID().Bytes()).Rows()
	if err != nil {
		return VehicleQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return VehicleQueryResponse{}, err
		}
		return VehicleQueryResponse{}, errs.NewObjectNotFoundError("vehicleId", query.VehicleID().String())
	}

	resp, err := scanVehicleRow(rows)
	if err != nil {
		return VehicleQueryResponse{}, err
	}

	return resp, rows.Err()
}
