// Package routelogrepo provides data transfer objects and mapping functions
// for route log persistence. This package implements the repository pattern
// for the route log domain aggregate, handling the conversion between domain
// entities and database representations.
package routelogrepo

import (
	"time"

	"fleetlog/internal/adapters/out/postgres/vehiclerepo"
	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RouteLogDTO represents the database structure for persisting route log
// aggregates. Image URI lists are stored as PostgreSQL text arrays. The
// vehicle foreign key cascades on delete so removing a vehicle removes its
// custody history.
type RouteLogDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Status       int       `gorm:"index"`
	DriverName   string    `gorm:"index;not null"`
	StartMileage int
	EndMileage   *int
	StartDate    time.Time `gorm:"index"`
	EndDate      *time.Time
	NotesStart   string
	NotesEnd     string
	ImagesStart  pq.StringArray `gorm:"type:text[]"`
	ImagesEnd    pq.StringArray `gorm:"type:text[]"`
	ReceiverName *string
	TransferTo   *string

	Vehicle vehiclerepo.VehicleDTO `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for route log entities.
// Overrides GORM's default naming convention to use "route_logs".
func (RouteLogDTO) TableName() string {
	return "route_logs"
}

// fromDomain converts a route log domain aggregate to its database representation.
func fromDomain(l *routelog.RouteLog) RouteLogDTO {
	return RouteLogDTO{
		ID:           l.ID().Bytes(),
		VehicleID:    l.VehicleID().Bytes(),
		Status:       int(l.Status()),
		DriverName:   l.DriverName(),
		StartMileage: l.StartMileage(),
		EndMileage:   l.EndMileage(),
		StartDate:    l.StartDate(),
		EndDate:      l.EndDate(),
		NotesStart:   l.NotesStart(),
		NotesEnd:     l.NotesEnd(),
		ImagesStart:  pq.StringArray(l.ImagesStart()),
		ImagesEnd:    pq.StringArray(l.ImagesEnd()),
		ReceiverName: l.ReceiverName(),
		TransferTo:   l.TransferTo(),
	}
}

// toDomain converts a database DTO to a route log domain aggregate.
// Reconstructs the full aggregate including closure state using RestoreRouteLog.
func toDomain(dto RouteLogDTO) (*routelog.RouteLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return routelog.RestoreRouteLog(
		id,
		vehicleID,
		routelog.Status(dto.Status),
		dto.DriverName,
		dto.StartMileage,
		dto.EndMileage,
		dto.StartDate,
		dto.EndDate,
		dto.NotesStart,
		dto.NotesEnd,
		[]string(dto.ImagesStart),
		[]string(dto.ImagesEnd),
		dto.ReceiverName,
		dto.TransferTo,
	)
}
