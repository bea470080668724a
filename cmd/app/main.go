package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"

	"fleetlog/cmd"
	_ "fleetlog/docs"
	httpadapter "fleetlog/internal/adapters/in/http"
	"fleetlog/internal/adapters/out/blobfs"
	"fleetlog/internal/adapters/out/postgres/routelogrepo"
	"fleetlog/internal/adapters/out/postgres/vehiclerepo"
	"fleetlog/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	blobStore, err := blobfs.NewFileBlobStore(configs.UploadsDir)
	if err != nil {
		log.Fatalf("Failed to create uploads dir: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, blobStore)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		UploadsDir:          goDotEnvVariable("UPLOADS_DIR"),
		DocExpiryWindowDays: goDotEnvIntVariable("DOC_EXPIRY_WINDOW_DAYS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid integer value for %s", key)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns the unique index violation on vehicles.plate into
	// gorm.ErrDuplicatedKey, which the repository maps to DuplicatePlateError.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&routelogrepo.RouteLogDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateVehicleCommandHandler(),
		app.CreateUpdateVehicleCommandHandler(),
		app.CreateDeleteVehicleCommandHandler(),
		app.CreateChangeVehicleStatusCommandHandler(),
		app.CreateStartRouteLogCommandHandler(),
		app.CreateTransferRouteLogCommandHandler(),
		app.CreateFinishRouteLogCommandHandler(),
		app.CreateGetAllVehiclesQueryHandler(),
		app.CreateGetVehicleQueryHandler(),
		app.CreateGetActiveRouteLogQueryHandler(),
		app.CreateGetRouteLogsByVehicleQueryHandler(),
		app.CreateGetAllRouteLogsQueryHandler(),
		app.CreateGetExpiringDocumentsQueryHandler(),
		app.BlobStore(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
