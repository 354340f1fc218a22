package cmd

import (
	"log/slog"
	"strings"

	apihttp "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/kafka"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/jobs"
	"forwarding/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Metrics

	// nil when Kafka is not configured
	publisher *kafka.OutboxPublisher
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    metrics.New(),
	}
	if cfg.KafkaEnabled() {
		root.publisher = kafka.NewOutboxPublisher(strings.Split(cfg.KafkaHost, ","), cfg.KafkaOrderChangedTopic, logger)
	}
	return root
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Close releases the Kafka writer, if any.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateRegisterForwarderCommandHandler() *commands.RegisterForwarderCommandHandler {
	h := commands.NewRegisterForwarderCommandHandler(c.forwarderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateConfigureConsolidationCommandHandler() *commands.ConfigureConsolidationCommandHandler {
	h := commands.NewConfigureConsolidationCommandHandler(c.forwarderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() *commands.CreateZoneCommandHandler {
	h := commands.NewCreateZoneCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateZoneCountriesCommandHandler() *commands.UpdateZoneCountriesCommandHandler {
	h := commands.NewUpdateZoneCountriesCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeactivateZoneCommandHandler() *commands.DeactivateZoneCommandHandler {
	h := commands.NewDeactivateZoneCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateRateCommandHandler() *commands.CreateRateCommandHandler {
	h := commands.NewCreateRateCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeactivateRateCommandHandler() *commands.DeactivateRateCommandHandler {
	h := commands.NewDeactivateRateCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateMarkLabelPrintedCommandHandler() *commands.MarkLabelPrintedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewMarkLabelPrintedCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateOrderStatusCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() *commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRelayOutboxCommandHandler(f, c.publisher, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateRollupStaffActivityCommandHandler() *commands.RollupStaffActivityCommandHandler {
	var f commands.StaffActivityUoWFactory = FuncStaffActivityUoWFactory(func() commands.StaffActivityUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRollupStaffActivityCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCalculateRateQueryHandler() queries.CalculateRateQueryHandler {
	var f queries.CatalogReaderFactory = FuncCatalogReaderFactory(func() queries.CatalogReader {
		return c.uowFactory.Create()
	})
	return queries.NewCalculateRateQueryHandler(f)
}

func (c *CompositionRoot) CreateListZonesQueryHandler() queries.ListZonesQueryHandler {
	return queries.NewListZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaffDailyStatsQueryHandler() queries.GetStaffDailyStatsQueryHandler {
	return queries.NewGetStaffDailyStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the echo instance serving the API.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := apihttp.NewServer(apihttp.Handlers{
		RegisterForwarder:      c.CreateRegisterForwarderCommandHandler(),
		ConfigureConsolidation: c.CreateConfigureConsolidationCommandHandler(),
		CreateZone:             c.CreateCreateZoneCommandHandler(),
		UpdateZoneCountries:    c.CreateUpdateZoneCountriesCommandHandler(),
		DeactivateZone:         c.CreateDeactivateZoneCommandHandler(),
		CreateRate:             c.CreateCreateRateCommandHandler(),
		DeactivateRate:         c.CreateDeactivateRateCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:      c.CreateUpdateOrderStatusCommandHandler(),
		MarkLabelPrinted:       c.CreateMarkLabelPrintedCommandHandler(),
		CalculateRate:          c.CreateCalculateRateQueryHandler(),
		ListZones:              c.CreateListZonesQueryHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		GetOrderHistory:        c.CreateGetOrderHistoryQueryHandler(),
		GetStaffDailyStats:     c.CreateGetStaffDailyStatsQueryHandler(),
	}, c.metrics, c.logger)

	return apihttp.NewRouter(server, c.metrics, c.logger)
}

// CreateJobManager schedules the roll-up and, with Kafka configured, the outbox relay.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	rollup := jobs.NewStaffActivityRollupJob(c.CreateRollupStaffActivityCommandHandler(), c.metrics, c.logger)

	var relay *jobs.OutboxRelayJob
	if c.publisher != nil {
		relay = jobs.NewOutboxRelayJob(c.CreateRelayOutboxCommandHandler(), c.cfg.OutboxBatchSize, c.logger)
	}

	return jobs.NewJobManager(rollup, relay, c.logger)
}

func (c *CompositionRoot) forwarderUoWFactory() commands.ForwarderUoWFactory {
	return FuncForwarderUoWFactory(func() commands.ForwarderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

type FuncForwarderUoWFactory func() commands.ForwarderUoW

func (f FuncForwarderUoWFactory) Create() commands.ForwarderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncStaffActivityUoWFactory func() commands.StaffActivityUoW

func (f FuncStaffActivityUoWFactory) Create() commands.StaffActivityUoW {
	return f()
}

type FuncCatalogReaderFactory func() queries.CatalogReader

func (f FuncCatalogReaderFactory) Create() queries.CatalogReader {
	return f()
}
