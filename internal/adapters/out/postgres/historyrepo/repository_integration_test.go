package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"partner/internal/adapters/out/postgres/historyrepo"
	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// HistoryRepositoryIntegrationTestSuite provides integration tests for the
// delivered-order archive using PostgreSQL containers.
type HistoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *historyrepo.GormHistoryRepository
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&historyrepo.DeliveredOrderDTO{}))
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivered_orders").Error)

	suite.repository = historyrepo.NewGormHistoryRepository(suite.db)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestArchive_DeliveredOrder_Persists() {
	ctx := context.Background()

	delivered := suite.createDeliveredOrder()

	err := suite.repository.Archive(ctx, delivered)
	suite.Require().NoError(err)

	suite.assertHistoryCount(1)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestArchive_NotConstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Archive(ctx, &order.Order{})
	suite.Require().Error(err)

	suite.assertHistoryCount(0)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestArchive_SameOrderTwice_KeepsSingleRow() {
	ctx := context.Background()

	delivered := suite.createDeliveredOrder()

	suite.Require().NoError(suite.repository.Archive(ctx, delivered))
	suite.Require().NoError(suite.repository.Archive(ctx, delivered))

	suite.assertHistoryCount(1)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetHistory_RoundTripsOrderFields() {
	ctx := context.Background()

	delivered := suite.createDeliveredOrder()
	suite.Require().NoError(suite.repository.Archive(ctx, delivered))

	history, err := suite.repository.GetHistory(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)

	restored := history[0]
	suite.True(restored.ID().IsEqual(delivered.ID()))
	suite.Equal(order.Delivered, restored.Status())
	suite.True(restored.Earnings().IsEqual(delivered.Earnings()))
	suite.Equal(delivered.PickupAddress(), restored.PickupAddress())
	suite.Equal(delivered.DropoffAddress(), restored.DropoffAddress())
	suite.Equal(delivered.CustomerName(), restored.CustomerName())
	suite.WithinDuration(delivered.AssignedAt(), restored.AssignedAt(), time.Second)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetHistory_MostRecentlyArchivedFirst() {
	ctx := context.Background()

	first := suite.createDeliveredOrder()
	second := suite.createDeliveredOrder()

	suite.Require().NoError(suite.repository.Archive(ctx, first))
	// ArchivedAt needs to differ for the ordering to be observable.
	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.repository.Archive(ctx, second))

	history, err := suite.repository.GetHistory(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.True(history[0].ID().IsEqual(second.ID()))
	suite.True(history[1].ID().IsEqual(first.ID()))
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetHistory_EmptyTable_ReturnsEmptySlice() {
	history, err := suite.repository.GetHistory(context.Background())
	suite.Require().NoError(err)
	suite.Empty(history)
}

// createDeliveredOrder builds a valid delivered order for archiving.
func (suite *HistoryRepositoryIntegrationTestSuite) createDeliveredOrder() *order.Order {
	earnings, err := kernel.NewMoney(1250, "USD")
	suite.Require().NoError(err)

	delivered, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.Delivered,
		earnings,
		"1 Pickup St",
		"2 Dropoff Ave",
		"Dana",
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	return delivered
}

// assertHistoryCount verifies the number of archived rows in the database.
func (suite *HistoryRepositoryIntegrationTestSuite) assertHistoryCount(expected int) {
	var count int64
	err := suite.db.Model(&historyrepo.DeliveredOrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestHistoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryRepositoryIntegrationTestSuite))
}
