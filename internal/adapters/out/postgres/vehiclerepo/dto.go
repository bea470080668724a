// Package vehiclerepo provides data transfer objects and mapping functions for
// vehicle persistence. This package implements the repository pattern for the
// vehicle domain aggregate, handling the conversion between domain entities
// and database representations.
package vehiclerepo

import (
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The plate carries a unique index so duplicate registrations
// are rejected at the database level even under concurrent inserts.
type VehicleDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate            string    `gorm:"uniqueIndex;not null"`
	Brand            string
	Model            string
	Year             int
	Status           int        `gorm:"index"`
	ActiveRouteLogID *uuid.UUID `gorm:"type:uuid"`

	CirculationPermitExpiry *time.Time
	TechnicalReviewExpiry   *time.Time
	InsuranceExpiry         *time.Time
	GasesReviewExpiry       *time.Time
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
// Unset document dates map to NULL columns.
func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	var activeLogID *uuid.UUID
	if id := v.ActiveRouteLogID(); id != nil {
		raw := id.Bytes()
		activeLogID = &raw
	}

	docs := v.Documents()
	return VehicleDTO{
		ID:               v.ID().Bytes(),
		Plate:            v.Plate().String(),
		Brand:            v.Brand(),
		Model:            v.Model(),
		Year:             v.Year(),
		Status:           int(v.Status()),
		ActiveRouteLogID: activeLogID,

		CirculationPermitExpiry: nullableDate(docs.CirculationPermit),
		TechnicalReviewExpiry:   nullableDate(docs.TechnicalReview),
		InsuranceExpiry:         nullableDate(docs.Insurance),
		GasesReviewExpiry:       nullableDate(docs.GasesReview),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
// Reconstructs the full aggregate including custody state using RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	plate, err := kernel.NewPlate(dto.Plate)
	if err != nil {
		return nil, err
	}

	var activeLogID *kernel.UUID
	if dto.ActiveRouteLogID != nil {
		logID, logErr := kernel.UUIDFromBytes((*dto.ActiveRouteLogID)[:])
		if logErr != nil {
			return nil, logErr
		}
		activeLogID = &logID
	}

	docs := vehicle.DocumentDates{
		CirculationPermit: dateValue(dto.CirculationPermitExpiry),
		TechnicalReview:   dateValue(dto.TechnicalReviewExpiry),
		Insurance:         dateValue(dto.InsuranceExpiry),
		GasesReview:       dateValue(dto.GasesReviewExpiry),
	}

	return vehicle.RestoreVehicle(
		id, plate, dto.Brand, dto.Model, dto.Year, docs,
		vehicle.Status(dto.Status), activeLogID)
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func dateValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
