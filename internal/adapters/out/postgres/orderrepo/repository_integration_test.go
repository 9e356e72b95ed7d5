package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(vendorID kernel.UUID) *order.Order {
	item, err := order.NewItem("Margherita", 2)
	suite.Require().NoError(err)
	side, err := order.NewItem("Garlic bread", 1)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), vendorID, "Alice", "alice@example.com", "12 Oak Avenue",
		[]order.Item{item, side}, time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) addWithItems(aggregate *order.Order) {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NoError(suite.repository.AddItems(ctx, aggregate.ID(), aggregate.Items()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.NewUUID())
	suite.addWithItems(aggregate)

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(aggregate.ID()))
	suite.True(loaded.VendorID().IsEqual(aggregate.VendorID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.Nil(loaded.Partner())
	suite.Nil(loaded.Location())
	suite.Equal("Alice", loaded.CustomerName())
	suite.Equal("12 Oak Avenue", loaded.DeliveryAddress())

	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Margherita", items[0].Name())
	suite.Equal(2, items[0].Quantity())
	suite.Equal("Garlic bread", items[1].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_WithoutItems_ItemsIncompleteOrderLoads() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.NewUUID())

	// Only the order row is written; the item insert never happened.
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(loaded.Items())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullLifecycle() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	aggregate := suite.createTestOrder(vendorID)
	suite.addWithItems(aggregate)

	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(aggregate.Assign(vendorID, partnerID, now))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	suite.Require().NoError(aggregate.StartDelivery(partnerID, now.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	point, err := kernel.NewGeoPoint(52.52, 13.405)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.ReportLocation(partnerID, point, now.Add(2*time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, loaded.Status())
	suite.Require().NotNil(loaded.Partner())
	suite.True(loaded.Partner().IsEqual(partnerID))
	suite.Require().NotNil(loaded.Location())
	suite.InEpsilon(52.52, loaded.Location().Latitude(), 1e-9)
	suite.InEpsilon(13.405, loaded.Location().Longitude(), 1e-9)
	suite.Equal(now.Add(2*time.Minute), loaded.UpdatedAt())

	suite.Require().NoError(aggregate.MarkDelivered(partnerID, now.Add(3*time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err = suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_NotFound() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.NewUUID())

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllForVendor_NewestFirst() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()

	first := suite.createTestOrder(vendorID)
	suite.addWithItems(first)

	// Later order for the same vendor.
	item, err := order.NewItem("Calzone", 1)
	suite.Require().NoError(err)
	second, err := order.NewOrder(
		kernel.NewUUID(), vendorID, "Bob", "", "34 Elm Street",
		[]order.Item{item}, first.CreatedAt().Add(time.Hour),
	)
	suite.Require().NoError(err)
	suite.addWithItems(second)

	// Order from another vendor must not appear.
	other := suite.createTestOrder(kernel.NewUUID())
	suite.addWithItems(other)

	orders, err := suite.repository.GetAllForVendor(ctx, vendorID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID().IsEqual(second.ID()))
	suite.True(orders[1].ID().IsEqual(first.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllForPartner() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	partnerID := kernel.NewUUID()

	assigned := suite.createTestOrder(vendorID)
	suite.Require().NoError(assigned.Assign(vendorID, partnerID, time.Now().UTC()))
	suite.addWithItems(assigned)

	unassigned := suite.createTestOrder(vendorID)
	suite.addWithItems(unassigned)

	orders, err := suite.repository.GetAllForPartner(ctx, partnerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(assigned.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
