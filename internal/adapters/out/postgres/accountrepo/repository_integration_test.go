package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/accountrepo"
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// AccountRepositoryIntegrationTestSuite covers the vendor and partner
// repositories against a PostgreSQL container.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	vendorRepo  *accountrepo.GormVendorRepository
	partnerRepo *accountrepo.GormPartnerRepository
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&accountrepo.VendorDTO{}, &accountrepo.PartnerDTO{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vendors, delivery_partners").Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.vendorRepo = accountrepo.NewGormVendorRepository(suite.db, tracker)
	suite.partnerRepo = accountrepo.NewGormPartnerRepository(suite.db, tracker)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestVendor_AddAndGet() {
	ctx := context.Background()
	vendor, err := account.NewVendor(kernel.NewUUID(), kernel.NewUUID(), "Pizza Palace")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.vendorRepo.Add(ctx, vendor))

	loaded, err := suite.vendorRepo.Get(ctx, vendor.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(vendor.ID()))
	suite.True(loaded.AccountID().IsEqual(vendor.AccountID()))
	suite.Equal("Pizza Palace", loaded.Name())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestVendor_Get_NotFound() {
	_, err := suite.vendorRepo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestPartner_AddAndGet() {
	ctx := context.Background()
	partner, err := account.NewDeliveryPartner(kernel.NewUUID(), kernel.NewUUID(), "Bob")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.partnerRepo.Add(ctx, partner))

	loaded, err := suite.partnerRepo.Get(ctx, partner.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(partner.ID()))
	suite.Equal("Bob", loaded.Name())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestPartner_Get_NotFound() {
	_, err := suite.partnerRepo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
