package cmd

import (
	"log/slog"
	"os"
	"time"

	httpin "rates/internal/adapters/in/http"
	"rates/internal/adapters/out/postgres"
	"rates/internal/adapters/out/postgres/courierrepo"
	"rates/internal/adapters/out/postgres/pincoderepo"
	"rates/internal/adapters/out/postgres/planrepo"
	"rates/internal/adapters/out/postgres/shipmentrepo"
	"rates/internal/adapters/out/redis/pincodecache"
	"rates/internal/core/application/usecases/commands"
	"rates/internal/core/application/usecases/queries"
	"rates/internal/core/domain/services"
	"rates/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// pincodeCacheTTL bounds how stale a cached directory entry may get.
// Pincode reference data changes on the order of months.
const pincodeCacheTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  services.PincodeDirectory
	calculator services.RateCalculator
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var directory services.PincodeDirectory = pincoderepo.NewGormPincodeDirectory(gormDB)
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		directory = pincodecache.NewReadThroughDirectory(client, directory, pincodeCacheTTL, logger)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  directory,
		calculator: services.NewRateCalculator(),
		logger:     logger,
	}
}

// MigrateDB creates or updates the schema for all persistence DTOs.
func (c *CompositionRoot) MigrateDB() error {
	return c.gormDB.AutoMigrate(
		&courierrepo.CourierDTO{},
		&planrepo.PlanDTO{},
		&planrepo.CourierPricingDTO{},
		&planrepo.ZonePricingDTO{},
		&shipmentrepo.ShipmentDTO{},
		&pincoderepo.PincodeDTO{},
	)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePlanCommandHandler() commands.CreatePlanCommandHandler {
	var f commands.PlanUoWFactory = FuncPlanUoWFactory(func() commands.PlanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePlanCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.directory, c.calculator)
}

func (c *CompositionRoot) CreateBookPendingShipmentsCommandHandler() commands.BookPendingShipmentsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookPendingShipmentsCommandHandler(f, c.directory, c.calculator)
}

func (c *CompositionRoot) CreateCalculateRatesQueryHandler() queries.CalculateRatesQueryHandler {
	// Read path outside any transaction: an unstarted unit of work hands out
	// repositories bound to the base connection.
	uow := c.uowFactory.Create()
	return queries.NewCalculateRatesQueryHandler(
		uow.PlanRepository(),
		uow.CourierRepository(),
		c.directory,
		c.calculator,
	)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRateCardQueryHandler() queries.GetRateCardQueryHandler {
	return queries.NewGetRateCardQueryHandler(c.gormDB)
}

// CreateHTTPServer wires all command and query handlers into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateCourierCommandHandler(),
		c.CreateCreatePlanCommandHandler(),
		c.CreateCreateShipmentCommandHandler(),
		c.CreateCalculateRatesQueryHandler(),
		c.CreateGetAllCouriersQueryHandler(),
		c.CreateGetRateCardQueryHandler(),
	)
}

// CreateJobManager wires the background booking sweep.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateBookPendingShipmentsCommandHandler(),
		c.logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncPlanUoWFactory func() commands.PlanUoW

func (f FuncPlanUoWFactory) Create() commands.PlanUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
