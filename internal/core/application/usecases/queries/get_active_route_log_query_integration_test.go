package queries_test

import (
	"context"
	"testing"
	"time"

	"fleetlog/internal/adapters/out/postgres/routelogrepo"
	"fleetlog/internal/adapters/out/postgres/vehiclerepo"
	"fleetlog/internal/core/application/usecases/queries"
	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker; the query tests
// only use the repositories for seeding.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// GetActiveRouteLogQueryIntegrationTestSuite exercises active custody
// resolution against PostgreSQL, including recovery from a stale active-log
// pointer.
type GetActiveRouteLogQueryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	vehicleRepo *vehiclerepo.GormVehicleRepository
	logRepo     *routelogrepo.GormRouteLogRepository
	handler     queries.GetActiveRouteLogQueryHandler
	vehicleID   kernel.UUID
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) SetupSuite() {
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

	suite.vehicleRepo = vehiclerepo.NewGormVehicleRepository(db, noopTracker{})
	suite.logRepo = routelogrepo.NewGormRouteLogRepository(db, noopTracker{})
	suite.handler = queries.NewGetActiveRouteLogQueryHandler(db)
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE route_logs, vehicles").Error)

	plate, err := kernel.NewPlate("ABCD-123")
	suite.Require().NoError(err)
	veh, err := vehicle.NewVehicle(
		kernel.NewUUID(), plate, "Toyota", "Hilux", 2022, vehicle.DocumentDates{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.vehicleRepo.Add(context.Background(), veh))
	suite.vehicleID = veh.ID()
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) addActiveLog(
	driver string, startMileage int, start time.Time,
) *routelog.RouteLog {
	log, err := routelog.NewRouteLog(
		kernel.NewUUID(), suite.vehicleID, driver, startMileage, "", nil, start)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logRepo.Add(context.Background(), log))
	return log
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) addFinishedLog(
	driver string, startMileage, endMileage int, start time.Time,
) *routelog.RouteLog {
	end := start.Add(time.Hour)
	log, err := routelog.RestoreRouteLog(
		kernel.NewUUID(), suite.vehicleID, routelog.Finished, driver, startMileage,
		&endMileage, start, &end, "", "", nil, nil, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logRepo.Add(context.Background(), log))
	return log
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) setPointer(id *kernel.UUID) {
	update := suite.db.Model(&vehiclerepo.VehicleDTO{}).
		Where("id = ?", suite.vehicleID.Bytes())
	if id == nil {
		suite.Require().NoError(update.Update("active_route_log_id", nil).Error)
		return
	}
	suite.Require().NoError(update.Update("active_route_log_id", id.Bytes()).Error)
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) TestPointerNamesActiveLeg() {
	open := suite.addActiveLog("Pedro", 1200, time.Now().Add(-time.Hour))
	id := open.ID()
	suite.setPointer(&id)

	query, err := queries.NewGetActiveRouteLogQuery(suite.vehicleID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(open.ID()))
	suite.Equal("Pedro", resp.DriverName)
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) TestStalePointer_FallsBackToActiveLeg() {
	// The pointer still names Juan's closed leg, as if the pointer update
	// after a handoff never landed. Pedro's open leg must win anyway.
	closed := suite.addFinishedLog("Juan", 1000, 1200, time.Now().Add(-48*time.Hour))
	open := suite.addActiveLog("Pedro", 1200, time.Now().Add(-time.Hour))
	closedID := closed.ID()
	suite.setPointer(&closedID)

	query, err := queries.NewGetActiveRouteLogQuery(suite.vehicleID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(open.ID()))
	suite.Equal("Pedro", resp.DriverName)
	suite.Equal(routelog.Active.String(), resp.Status)
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) TestStalePointer_NoOpenLeg() {
	closed := suite.addFinishedLog("Juan", 1000, 1200, time.Now().Add(-48*time.Hour))
	closedID := closed.ID()
	suite.setPointer(&closedID)

	query, err := queries.NewGetActiveRouteLogQuery(suite.vehicleID)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) TestNoPointer_ScansForActiveLeg() {
	open := suite.addActiveLog("Pedro", 1200, time.Now().Add(-time.Hour))
	suite.setPointer(nil)

	query, err := queries.NewGetActiveRouteLogQuery(suite.vehicleID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(open.ID()))
}

func (suite *GetActiveRouteLogQueryIntegrationTestSuite) TestUnknownVehicle() {
	query, err := queries.NewGetActiveRouteLogQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetActiveRouteLogQueryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetActiveRouteLogQueryIntegrationTestSuite))
}
