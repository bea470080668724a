package cmd

import (
	"log/slog"

	"fleetlog/internal/adapters/out/postgres"
	"fleetlog/internal/core/application/usecases/commands"
	"fleetlog/internal/core/application/usecases/queries"
	"fleetlog/internal/core/ports"
	"fleetlog/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	blobStore  ports.BlobStore
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, blobStore ports.BlobStore) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		blobStore:  blobStore,
		config:     config,
	}
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeVehicleStatusCommandHandler() commands.ChangeVehicleStatusCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeVehicleStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateStartRouteLogCommandHandler() commands.StartRouteLogCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRouteLogCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferRouteLogCommandHandler() commands.TransferRouteLogCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferRouteLogCommandHandler(f)
}

func (c *CompositionRoot) CreateFinishRouteLogCommandHandler() commands.FinishRouteLogCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishRouteLogCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	return queries.NewGetVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveRouteLogQueryHandler() queries.GetActiveRouteLogQueryHandler {
	return queries.NewGetActiveRouteLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteLogsByVehicleQueryHandler() queries.GetRouteLogsByVehicleQueryHandler {
	return queries.NewGetRouteLogsByVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRouteLogsQueryHandler() queries.GetAllRouteLogsQueryHandler {
	return queries.NewGetAllRouteLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpiringDocumentsQueryHandler() queries.GetExpiringDocumentsQueryHandler {
	return queries.NewGetExpiringDocumentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) BlobStore() ports.BlobStore {
	return c.blobStore
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetExpiringDocumentsQueryHandler(),
		c.config.DocExpiryWindowDays,
		logger,
	)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
