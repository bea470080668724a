package queries

import (
	"context"
	"database/sql"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler retrieves the fleet registry from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for registry retrieval.
// Requires a GORM database connection for query execution.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all vehicles ordered by plate.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]VehicleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleQueryResponse, 0)

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
		ORDER BY plate
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanVehicleRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

// scanVehicleRow maps one row of the vehicle projection to the read model.
// Shared by every query that selects the full vehicle column list.
func scanVehicleRow(rows *sql.Rows) (VehicleQueryResponse, error) {
	var resp VehicleQueryResponse
	var id uuid.UUID
	var activeLogID *uuid.UUID
	var status int
	var circulationPermit, technicalReview, insurance, gasesReview sql.NullTime

	err := rows.Scan(
		&id,
		&resp.Plate,
		&resp.Brand,
		&resp.Model,
		&resp.Year,
		&status,
		&activeLogID,
		&circulationPermit,
		&technicalReview,
		&insurance,
		&gasesReview,
	)
	if err != nil {
		return VehicleQueryResponse{}, err
	}

	vehicleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return VehicleQueryResponse{}, err
	}
	resp.ID = vehicleID

	if activeLogID != nil {
		logID, idErr := kernel.UUIDFromBytes((*activeLogID)[:])
		if idErr != nil {
			return VehicleQueryResponse{}, idErr
		}
		resp.ActiveRouteLogID = &logID
	}

	resp.Status = vehicle.Status(status).String()
	resp.CirculationPermit = nullableTime(circulationPermit)
	resp.TechnicalReview = nullableTime(technicalReview)
	resp.Insurance = nullableTime(insurance)
	resp.GasesReview = nullableTime(gasesReview)
	return resp, nil
}

func nullableTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
