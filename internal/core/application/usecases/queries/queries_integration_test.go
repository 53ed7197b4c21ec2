package queries_test

import (
	"context"
	"testing"
	"time"

	"salesorders/internal/adapters/out/postgres/itemrepo"
	"salesorders/internal/adapters/out/postgres/migrations"
	"salesorders/internal/adapters/out/postgres/orderrepo"
	"salesorders/internal/core/application/usecases/queries"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	itemRepo  *itemrepo.GormItemRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := migrations.Open(dsn)
	suite.Require().NoError(err)
	defer sqlDB.Close()
	suite.Require().NoError(migrations.Up(sqlDB))

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
	suite.itemRepo = itemrepo.NewGormItemRepository(db)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE sales_items, sales_orders").Error)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_WithItems() {
	ctx := context.Background()
	o := suite.addOrder(order.Open, "30.00")
	suite.addItem(o, "P1", "2", "10")
	suite.addItem(o, "P2", "1", "10")

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), resp.ID)
	suite.Equal("customer-1", resp.CustomerID)
	suite.Equal("30.00", resp.Total.StringFixed(2))
	suite.Len(resp.Items, 2)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderItems_SoftDeletedOrderIsNotFound() {
	ctx := context.Background()
	o := suite.addOrder(order.Canceled, "0")
	suite.Require().NoError(o.MarkDeleted(time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query, err := queries.NewGetOrderItemsQuery(o.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderItemsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FilterAndExcludeDeleted() {
	ctx := context.Background()
	suite.addOrder(order.Open, "1")
	suite.addOrder(order.Open, "2")
	suite.addOrder(order.New, "3")
	deleted := suite.addOrder(order.Open, "4")
	suite.Require().NoError(deleted.MarkDeleted(time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, deleted))

	all, err := queries.NewListOrdersQuery(order.Unknown, 0, 0)
	suite.Require().NoError(err)
	orders, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Len(orders, 3)

	open, err := queries.NewListOrdersQuery(order.Open, 0, 0)
	suite.Require().NoError(err)
	orders, err = queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, open)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.Equal(order.Open, o.Status)
	}
}

func (suite *QueriesIntegrationTestSuite) addOrder(status order.Status, total string) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), "customer-1", status, decimal.RequireFromString(total), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) addItem(o *order.Order, productID, qty, price string) {
	item, err := order.NewItem(kernel.NewUUID(), o.ID(), productID,
		decimal.RequireFromString(qty), decimal.RequireFromString(price))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.itemRepo.Add(context.Background(), item))
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
