package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "rates/internal/adapters/out/postgres"
	"rates/internal/adapters/out/postgres/courierrepo"
	"rates/internal/adapters/out/postgres/planrepo"
	"rates/internal/adapters/out/postgres/shipmentrepo"
	"rates/internal/core/domain/model/courier"
	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"
	"rates/internal/core/domain/model/rate"
	"rates/internal/core/domain/model/shipment"
	"rates/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&planrepo.PlanDTO{},
		&planrepo.CourierPricingDTO{},
		&planrepo.ZonePricingDTO{},
		&shipmentrepo.ShipmentDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, zone_pricings, courier_pricings, plans, couriers").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow1.PlanRepository(), "First instance should provide plan repository")
	suite.NotNil(uow1.CourierRepository(), "First instance should provide courier repository")
	suite.NotNil(uow2.ShipmentRepository(), "Second instance should provide shipment repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add shipment within transaction
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Verify shipment exists within transaction
	retrieved, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify shipment persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
}

// TestUnitOfWork_BookingWorkflow verifies the full quote-and-book workflow
// across courier, plan and shipment repositories within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_BookingWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCourier := createTestCourier()
	testPlan := createTestPlan(testCourier.ID())
	testShipment := createTestShipment()

	// Begin transaction for the entire workflow
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Register the courier and the plan that prices it
	err = uow.CourierRepository().Add(ctx, testCourier)
	suite.Require().NoError(err)

	err = uow.PlanRepository().Add(ctx, testPlan)
	suite.Require().NoError(err)

	// Step 2: Record the seller's shipment
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Step 3: Book the accepted quote (domain operation)
	quote, err := rate.NewRateQuote(
		testCourier.ID(), testCourier.Name(), kernel.ZoneWithinCity, 0.6, 40, 0, 0)
	suite.Require().NoError(err)

	err = testShipment.Book(quote)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Update(ctx, testShipment)
	suite.Require().NoError(err)

	// Commit the entire workflow
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Booked, retrievedShipment.Status())
	suite.Require().NotNil(retrievedShipment.Courier())
	suite.Equal(testCourier.ID(), *retrievedShipment.Courier())
	suite.Require().NotNil(retrievedShipment.Quote())
	suite.InDelta(40.0, retrievedShipment.Quote().TotalCharge(), 1e-9)

	retrievedPlan, err := newUow.PlanRepository().GetDefault(ctx)
	suite.Require().NoError(err)
	_, ok := retrievedPlan.PricingFor(testCourier.ID())
	suite.True(ok, "Default plan should price the registered courier")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()
	testCourier := createTestCourier()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.CourierRepository().Add(ctx, testCourier)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	_, err = uow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().Error(err, "Shipment should not exist after rollback")

	_, err = newUow.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().Error(err, "Courier should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	shipment1 := createTestShipment()
	shipment2 := createTestShipment()

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different shipments in each transaction
	err = uow1.ShipmentRepository().Add(ctx, shipment1)
	suite.Require().NoError(err)

	err = uow2.ShipmentRepository().Add(ctx, shipment2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "UOW1 should see shipment1")

	_, err = uow1.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "UOW1 should not see shipment2")

	_, err = uow2.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().NoError(err, "UOW2 should see shipment2")

	_, err = uow2.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().Error(err, "UOW2 should not see shipment1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only shipment1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "Shipment1 should persist after commit")

	_, err = newUow.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "Shipment2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()

	// Add shipment without beginning transaction (should auto-commit)
	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Verify shipment persists immediately
	retrieved, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrieved, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
}

// TestUnitOfWork_BacklogConsistency verifies the created-status backlog query
// reflects uncommitted bookings inside the transaction and after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_BacklogConsistency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	pending := createTestShipment()
	toBook := createTestShipment()
	testCourier := createTestCourier()

	err := uow.ShipmentRepository().Add(ctx, pending)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, toBook)
	suite.Require().NoError(err)

	// Begin transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Book one shipment inside the transaction
	quote, err := rate.NewRateQuote(
		testCourier.ID(), testCourier.Name(), kernel.ZoneWithinCity, 0.6, 40, 0, 0)
	suite.Require().NoError(err)
	err = toBook.Book(quote)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Update(ctx, toBook)
	suite.Require().NoError(err)

	// Backlog within the transaction should only contain the pending shipment
	backlog, err := uow.ShipmentRepository().GetAllInCreatedStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(backlog, 1)
	suite.Equal(pending.ID(), backlog[0].ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify backlog still consistent after commit
	newUow := suite.factory.Create()
	backlog, err = newUow.ShipmentRepository().GetAllInCreatedStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(backlog, 1)
	suite.Equal(pending.ID(), backlog[0].ID())
}

// createTestShipment creates a valid shipment in Created status.
func createTestShipment() *shipment.Shipment {
	pickup, _ := kernel.NewPincode("560001")
	delivery, _ := kernel.NewPincode("560002")
	request, _ := rate.NewRateRequest(
		pickup, delivery,
		0.6, rate.WeightUnitKilogram,
		10, 10, 10, rate.SizeUnitCentimeter,
		rate.PaymentTypePrepaid, 0, false,
	)
	testShipment, _ := shipment.NewShipment(kernel.NewUUID(), request)
	return testShipment
}

// createTestCourier creates a valid courier for testing purposes.
func createTestCourier() *courier.Courier {
	testCourier, _ := courier.NewCourier(
		kernel.NewUUID(), "Test Courier", courier.ServiceTypeSurface, false, 4*time.Hour)
	return testCourier
}

// createTestPlan creates a default plan pricing the given courier for WITHIN_CITY.
func createTestPlan(courierID kernel.UUID) *pricing.PricingPlan {
	entry, _ := pricing.NewCourierPricing(courierID, 0.5, 0.5, 10, 40, 1.5, true, false, false, false)
	row, _ := pricing.NewZonePricing(kernel.ZoneWithinCity, 30, 10, true, 0, 0, 0)
	_ = entry.AddZonePricing(row)

	plan, _ := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
	_ = plan.AddCourierPricing(entry)
	return plan
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
