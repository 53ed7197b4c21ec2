package cmd

import (
	"fmt"

	httpin "salesorders/internal/adapters/in/http"
	"salesorders/internal/adapters/out/postgres"
	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"
	"salesorders/internal/jobs"

	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// OpenDatabase connects GORM to PostgreSQL. Driver errors are translated so
// duplicate keys surface as gorm.ErrDuplicatedKey.
func OpenDatabase(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateSoftDeleteOrderCommandHandler() commands.SoftDeleteOrderCommandHandler {
	return commands.NewSoftDeleteOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreatePurgeDeletedOrdersCommandHandler() commands.PurgeDeletedOrdersCommandHandler {
	return commands.NewPurgeDeletedOrdersCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() commands.DeleteItemCommandHandler {
	return commands.NewDeleteItemCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		UpdateOrder:     c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:     c.CreateDeleteOrderCommandHandler(),
		SoftDeleteOrder: c.CreateSoftDeleteOrderCommandHandler(),
		CreateItem:      c.CreateCreateItemCommandHandler(),
		UpdateItem:      c.CreateUpdateItemCommandHandler(),
		DeleteItem:      c.CreateDeleteItemCommandHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		GetOrderItems:   c.CreateGetOrderItemsQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeDeletedOrdersCommandHandler(),
		jobs.PurgeConfig{
			Schedule:  c.config.PurgeSchedule,
			Retention: c.config.PurgeRetention,
			BatchSize: c.config.PurgeBatchSize,
		},
		c.logger,
	)
}
