package pincoderepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rates/internal/adapters/out/postgres/pincoderepo"
	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PincodeDirectoryIntegrationTestSuite provides integration tests for the
// pincode directory using a PostgreSQL container. Seed data goes through
// database/sql directly, the way the reference table is loaded in production.
type PincodeDirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	seedDB    *sql.DB
	directory *pincoderepo.GormPincodeDirectory
}

func (suite *PincodeDirectoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&pincoderepo.PincodeDTO{}))

	seedDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)
	suite.seedDB = seedDB
}

func (suite *PincodeDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pincodes").Error)

	suite.seedPincode("560001", "Bangalore", "Karnataka", true)
	suite.seedPincode("570001", "Mysore", "Karnataka", false)
	suite.seedPincode("781001", "Guwahati", "Assam", false)

	suite.directory = pincoderepo.NewGormPincodeDirectory(suite.db)
}

func (suite *PincodeDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.seedDB != nil {
		suite.Require().NoError(suite.seedDB.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PincodeDirectoryIntegrationTestSuite) TestLookup_KnownPincode_ReturnsRecord() {
	ctx := context.Background()

	info, err := suite.directory.Lookup(ctx, suite.pincode("560001"))
	suite.Require().NoError(err)

	suite.Equal("Bangalore", info.City())
	suite.Equal("Karnataka", info.State())
	suite.True(info.IsMetro())
}

func (suite *PincodeDirectoryIntegrationTestSuite) TestLookup_NonMetroPincode_ReturnsRecord() {
	ctx := context.Background()

	info, err := suite.directory.Lookup(ctx, suite.pincode("570001"))
	suite.Require().NoError(err)

	suite.Equal("Mysore", info.City())
	suite.False(info.IsMetro())
}

func (suite *PincodeDirectoryIntegrationTestSuite) TestLookup_UnknownPincode_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.directory.Lookup(ctx, suite.pincode("999999"))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PincodeDirectoryIntegrationTestSuite) TestLookup_UnconstructedPincode_ReturnsValidationError() {
	ctx := context.Background()

	_, err := suite.directory.Lookup(ctx, kernel.Pincode{})
	suite.Require().Error(err)
}

// seedPincode inserts one reference row through database/sql.
func (suite *PincodeDirectoryIntegrationTestSuite) seedPincode(pincode, city, state string, isMetro bool) {
	_, err := suite.seedDB.Exec(
		"INSERT INTO pincodes (pincode, city, state, is_metro) VALUES ($1, $2, $3, $4)",
		pincode, city, state, isMetro,
	)
	suite.Require().NoError(err)
}

func (suite *PincodeDirectoryIntegrationTestSuite) pincode(value string) kernel.Pincode {
	pincode, err := kernel.NewPincode(value)
	suite.Require().NoError(err)
	return pincode
}

func TestPincodeDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PincodeDirectoryIntegrationTestSuite))
}
