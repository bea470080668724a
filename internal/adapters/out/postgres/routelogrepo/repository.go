package routelogrepo

import (
	"context"
	"errors"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRouteLogRepository implements RouteLogRepository using GORM.
type GormRouteLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteLogRepository creates a new GORM route log repository.
func NewGormRouteLogRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteLogRepository {
	return &GormRouteLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route log to the database.
func (r *GormRouteLogRepository) Add(ctx context.Context, aggregate *routelog.RouteLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Close persists the closure of a route log. The UPDATE is conditioned on
// the stored row still being ACTIVE (compare-and-set): zero matched rows
// means a concurrent closure already won, which surfaces as
// InvalidStateError so double closure is impossible.
func (r *GormRouteLogRepository) Close(ctx context.Context, aggregate *routelog.RouteLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.Status().IsClosed() {
		return errs.NewInvalidStateError("route log", aggregate.Status().String())
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteLogDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(routelog.Active)).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("route log", routelog.Active.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route log by ID.
func (r *GormRouteLogRepository) Get(ctx context.Context, id kernel.UUID) (*routelog.RouteLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteLogDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("logId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByVehicle retrieves the vehicle's open custody leg, newest first
// in case a stale pointer ever left more than one ACTIVE row.
func (r *GormRouteLogRepository) GetActiveByVehicle(
	ctx context.Context,
	vehicleID kernel.UUID,
) (*routelog.RouteLog, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dto RouteLogDTO
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND status = ?", vehicleID.Bytes(), int(routelog.Active)).
		Order("start_date DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleId", vehicleID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByVehicle retrieves the vehicle's full custody history, most recent
// leg first.
func (r *GormRouteLogRepository) GetAllByVehicle(
	ctx context.Context,
	vehicleID kernel.UUID,
) ([]*routelog.RouteLog, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteLogDTO
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID.Bytes()).
		Order("start_date DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	logs := make([]*routelog.RouteLog, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, nil
}
