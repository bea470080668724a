package routelogrepo_test

import (
	"context"
	"testing"
	"time"

	"fleetlog/internal/adapters/out/postgres/routelogrepo"
	"fleetlog/internal/adapters/out/postgres/vehiclerepo"
	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// RouteLogRepositoryIntegrationTestSuite provides integration tests for
// RouteLogRepository using PostgreSQL containers.
type RouteLogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	logRepository *routelogrepo.GormRouteLogRepository
	tracker       *MockAggregateTracker
	vehicleID     kernel.UUID
}

func (suite *RouteLogRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&routelogrepo.RouteLogDTO{},
	))
}

func (suite *RouteLogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE route_logs, vehicles").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.logRepository = routelogrepo.NewGormRouteLogRepository(suite.db, suite.tracker)

	// Logs need an owning vehicle for the foreign key.
	plate, err := kernel.NewPlate("ABCD-123")
	suite.Require().NoError(err)
	veh, err := vehicle.NewVehicle(
		kernel.NewUUID(), plate, "Toyota", "Hilux", 2022, vehicle.DocumentDates{})
	suite.Require().NoError(err)

	vehicleRepo := vehiclerepo.NewGormVehicleRepository(suite.db, suite.tracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(vehicleRepo.Add(context.Background(), veh))
	suite.vehicleID = veh.ID()
}

func (suite *RouteLogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RouteLogRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	start := time.Now().Truncate(time.Microsecond)
	log, err := routelog.NewRouteLog(
		kernel.NewUUID(), suite.vehicleID, "Juan", 1000,
		"tank full", []string{"/uploads/front.jpg", "/uploads/back.jpg"}, start)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.logRepository.Add(ctx, log))

	loaded, err := suite.logRepository.Get(ctx, log.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(log.ID()))
	suite.True(loaded.VehicleID().IsEqual(suite.vehicleID))
	suite.Equal(routelog.Active, loaded.Status())
	suite.Equal("Juan", loaded.DriverName())
	suite.Equal(1000, loaded.StartMileage())
	suite.Equal("tank full", loaded.NotesStart())
	suite.Equal([]string{"/uploads/front.jpg", "/uploads/back.jpg"}, loaded.ImagesStart())
	suite.Empty(loaded.ImagesEnd())
	suite.Nil(loaded.EndMileage())
	suite.Nil(loaded.EndDate())
	suite.True(loaded.StartDate().Equal(start))
}

func (suite *RouteLogRepositoryIntegrationTestSuite) TestClose_FinishedLeg_Persisted() {
	ctx := context.Background()
	log := suite.addActiveLog("Pedro", 1200)

	err := log.Finish(1500, "returned clean", []string{"/uploads/end.jpg"}, "Ana", time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.logRepository.Close(ctx, log))

	loaded, err := suite.logRepository.Get(ctx, log.ID())
	suite.Require().NoError(err)
	suite.Equal(routelog.Finished, loaded.Status())
	suite.Require().NotNil(loaded.EndMileage())
	suite.Equal(1500, *loaded.EndMileage())
	suite.Equal([]string{"/uploads/end.jpg"}, loaded.ImagesEnd())
	suite.Require().NotNil(loaded.ReceiverName())
	suite.Equal("Ana", *loaded.ReceiverName())
	suite.Nil(loaded.TransferTo())
}

func (suite *RouteLogRepositoryIntegrationTestSuite) TestClose_AlreadyClosedRow_ReturnsInvalidState() {
	ctx := context.Background()
	log := suite.addActiveLog("Pedro", 1200)

	// A concurrent caller closed the row first.
	suite.Require().NoError(suite.db.Model(&routelogrepo.RouteLogDTO{}).
		Where("id = ?", log.ID().Bytes()).
		Update("status", int(routelog.Finished)).Error)

	suite.Require().NoError(log.Finish(1500, "", nil, "Ana", time.Now()))
	err := suite.logRepository.Close(ctx, log)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrInvalidState)
}

func (suite *RouteLogRepositoryIntegrationTestSuite) TestClose_OpenLeg_Rejected() {
	log := suite.addActiveLog("Pedro", 1200)

	err := suite.logRepository.Close(context.Background(), log)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrInvalidState)
}

func (suite *RouteLogRepositoryIntegrationTestSuite) TestGetActiveByVehicle() {
	ctx := context.Background()

	// One closed leg and one open leg; only the open one counts.
	closed, err := routelog.RestoreRouteLog(
		kernel.NewUUID(), suite.vehicleID, routelog.Finished, "Juan", 800,
		intPtr(1000), time.Now().Add(-48*time.Hour), timePtr(time.Now().Add(-24*time.Hour)),
		"", "", nil, nil, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logRepository.Add(ctx, closed))

	open := suite.addActiveLog("Pedro", 1000)

	loaded, err := suite.logRepository.GetActiveByVehicle(ctx, suite.vehicleID)
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(open.ID()))
}

func (suite *RouteLogRepositoryIntegrationTestSuite) TestGetActiveByVehicle_NoneOpen() {
	_, err := suite.logRepository.GetActiveByVehicle(context.Background(), suite.vehicleID)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RouteLogRepositoryIntegrationTestSuite) TestGetAllByVehicle_MostRecentFirst() {
	ctx := context.Background()
	base := time.Now().Add(-72 * time.Hour)

	var ids []kernel.UUID
	for i, driver := range []string{"Juan", "Pedro", "Ana"} {
		log, err := routelog.RestoreRouteLog(
			kernel.NewUUID(), suite.vehicleID, routelog.Finished, driver, 1000*i,
			intPtr(1000*(i+1)), base.Add(time.Duration(i)*24*time.Hour),
			timePtr(base.Add(time.Duration(i)*24*time.Hour+time.Hour)),
			"", "", nil, nil, nil, nil)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.logRepository.Add(ctx, log))
		ids = append(ids, log.ID())
	}

	logs, err := suite.logRepository.GetAllByVehicle(ctx, suite.vehicleID)
	suite.Require().NoError(err)
	suite.Require().Len(logs, 3)
	suite.True(logs[0].ID().IsEqual(ids[2]))
	suite.True(logs[1].ID().IsEqual(ids[1]))
	suite.True(logs[2].ID().IsEqual(ids[0]))
}

func (suite *RouteLogRepositoryIntegrationTestSuite) addActiveLog(driver string, startMileage int) *routelog.RouteLog {
	log, err := routelog.NewRouteLog(
		kernel.NewUUID(), suite.vehicleID, driver, startMileage, "", nil,
		time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logRepository.Add(context.Background(), log))
	return log
}

func intPtr(v int) *int              { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestRouteLogRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RouteLogRepositoryIntegrationTestSuite))
}
