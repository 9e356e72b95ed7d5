package cmd

import (
	"log/slog"
	"time"

	httpin "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/rabbitmq"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderPublisher
	subscriber ports.OrderSubscriber
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderPublisher,
	subscriber *rabbitmq.OrderSubscriber,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		subscriber: subscriber,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportLocationCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRegisterVendorCommandHandler() commands.RegisterVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterVendorCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerOrdersQueryHandler() queries.GetPartnerOrdersQueryHandler {
	return queries.NewGetPartnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleDeliveriesQueryHandler() queries.GetStaleDeliveriesQueryHandler {
	return queries.NewGetStaleDeliveriesQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every endpoint to its use case handler.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	assignPartner := c.CreateAssignPartnerCommandHandler()
	startDelivery := c.CreateStartDeliveryCommandHandler()
	reportLocation := c.CreateReportLocationCommandHandler()
	markDelivered := c.CreateMarkDeliveredCommandHandler()
	registerVendor := c.CreateRegisterVendorCommandHandler()
	registerPartner := c.CreateRegisterPartnerCommandHandler()
	getVendorOrders := c.CreateGetVendorOrdersQueryHandler()
	getPartnerOrders := c.CreateGetPartnerOrdersQueryHandler()
	getOrder := c.CreateGetOrderQueryHandler()

	return httpin.NewServer(
		&createOrder,
		&assignPartner,
		&startDelivery,
		&reportLocation,
		&markDelivered,
		&registerVendor,
		&registerPartner,
		getVendorOrders,
		getPartnerOrders,
		getOrder,
		c.subscriber,
		[]byte(c.config.JWTSecret),
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(staleThreshold time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStaleDeliveriesQueryHandler(), staleThreshold, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}
