package commands_test

import (
	"context"
	"testing"
	"time"

	"fleetlog/internal/core/application/usecases/commands"
	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateWithStatusCheck(
	ctx context.Context, v *vehicle.Vehicle, expected vehicle.Status,
) error {
	args := m.Called(ctx, v, expected)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByPlate(ctx context.Context, plate kernel.Plate) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRouteLogRepository struct{ mock.Mock }

func (m *MockRouteLogRepository) Add(ctx context.Context, l *routelog.RouteLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRouteLogRepository) Close(ctx context.Context, l *routelog.RouteLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRouteLogRepository) Get(ctx context.Context, id kernel.UUID) (*routelog.RouteLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*routelog.RouteLog), args.Error(1)
}

func (m *MockRouteLogRepository) GetActiveByVehicle(
	ctx context.Context, vehicleID kernel.UUID,
) (*routelog.RouteLog, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*routelog.RouteLog), args.Error(1)
}

func (m *MockRouteLogRepository) GetAllByVehicle(
	ctx context.Context, vehicleID kernel.UUID,
) ([]*routelog.RouteLog, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*routelog.RouteLog), args.Error(1)
}

type MockVehicleUoW struct{ mock.Mock }

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) RouteLogRepository() ports.RouteLogRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteLogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Test fixtures shared by handler tests.

func mustPlate(t *testing.T, raw string) kernel.Plate {
	t.Helper()
	plate, err := kernel.NewPlate(raw)
	require.NoError(t, err)
	return plate
}

func availableVehicle(t *testing.T, rawPlate string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), mustPlate(t, rawPlate), "Toyota", "Hilux", 2022,
		vehicle.DocumentDates{})
	require.NoError(t, err)
	return v
}

func inUseVehicle(t *testing.T, rawPlate string, activeLogID kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(
		kernel.NewUUID(), mustPlate(t, rawPlate), "Toyota", "Hilux", 2022,
		vehicle.DocumentDates{}, vehicle.InUse, &activeLogID)
	require.NoError(t, err)
	return v
}

func activeLogFor(t *testing.T, logID kernel.UUID, v *vehicle.Vehicle, driver string, startMileage int) *routelog.RouteLog {
	t.Helper()
	l, err := routelog.RestoreRouteLog(
		logID, v.ID(), routelog.Active, driver, startMileage, nil,
		time.Now().Add(-time.Hour), nil, "", "", nil, nil, nil, nil)
	require.NoError(t, err)
	return l
}

func finishedLogFor(t *testing.T, logID kernel.UUID, v *vehicle.Vehicle, driver string, startMileage, endMileage int) *routelog.RouteLog {
	t.Helper()
	endDate := time.Now().Add(-time.Minute)
	l, err := routelog.RestoreRouteLog(
		logID, v.ID(), routelog.Finished, driver, startMileage, &endMileage,
		time.Now().Add(-time.Hour), &endDate, "", "", nil, nil, nil, nil)
	require.NoError(t, err)
	return l
}
