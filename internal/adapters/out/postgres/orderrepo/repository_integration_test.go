package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"salesorders/internal/adapters/out/postgres/orderrepo"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE sales_orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.New)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original, err := order.RestoreOrder(kernel.NewUUID(), "ACME", order.Open, decimal.RequireFromString("12.34"), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal("ACME", retrieved.CustomerID())
	suite.Equal(order.Open, retrieved.Status())
	suite.Equal("12.34", retrieved.Total().StringFixed(2))
	suite.False(retrieved.IsDeleted())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_SoftDeletedOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Canceled)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(testOrder.MarkDeleted(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	_, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetForUpdate(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndTotal() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.New)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Closed))
	testOrder.ApplyTotal(decimal.RequireFromString("99.90"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Closed, retrieved.Status())
	suite.True(retrieved.Total().Equal(decimal.RequireFromString("99.9")))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder(order.New))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksConcurrentLocker() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.New)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	_, err := orderrepo.NewGormOrderRepository(tx).GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)

	acquired := make(chan error, 1)
	go func() {
		other := suite.db.Begin()
		_, lockErr := orderrepo.NewGormOrderRepository(other).GetForUpdate(ctx, testOrder.ID())
		other.Rollback()
		acquired <- lockErr
	}()

	select {
	case <-acquired:
		suite.Fail("second locker must wait for the first transaction")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(tx.Rollback().Error)

	select {
	case lockErr := <-acquired:
		suite.NoError(lockErr)
	case <-time.After(5 * time.Second):
		suite.Fail("second locker never acquired the row")
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Canceled)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))
	suite.assertOrderCount(0)

	err := suite.repository.Delete(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListDeletedBefore_ReturnsOnlyExpiredSoftDeletes() {
	ctx := context.Background()
	now := time.Now().UTC()

	old := suite.createDeletedOrder(ctx, now.Add(-48*time.Hour))
	older := suite.createDeletedOrder(ctx, now.Add(-72*time.Hour))
	suite.createDeletedOrder(ctx, now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(order.Open)))

	ids, err := suite.repository.ListDeletedBefore(ctx, now.Add(-24*time.Hour), 10)
	suite.Require().NoError(err)
	suite.Require().Len(ids, 2)
	suite.True(older.ID().IsEqual(ids[0]))
	suite.True(old.ID().IsEqual(ids[1]))

	limited, err := suite.repository.ListDeletedBefore(ctx, now.Add(-24*time.Hour), 1)
	suite.Require().NoError(err)
	suite.Len(limited, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(status order.Status) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), "customer-1", status, decimal.Zero, nil)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) createDeletedOrder(ctx context.Context, at time.Time) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), "customer-1", order.Canceled, decimal.Zero, &at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
