package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	kafkain "dispatch/internal/adapters/in/kafka"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/notify"
	"dispatch/internal/adapters/out/postgres/outboxrepo"
	"dispatch/internal/adapters/out/postgres/readmodel"
	"dispatch/internal/adapters/out/s3"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/metrics"

	"github.com/labstack/echo/v4"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CompositionRoot wires adapters to use cases for one store driver.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	metrics    *metrics.Metrics
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	reader     queries.Reader
	relayStore ports.OutboxRelayStore
	publisher  ports.EventPublisher
	closers    []func() error
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.reader = memory.NewReader(store)
		c.relayStore = memory.NewRelayStore(store)
		logger.Warn("using the in-memory store, data is lost on exit")

	case StoreDriverPostgres:
		gormDB, err := OpenDatabase(cfg)
		if err != nil {
			return nil, err
		}
		c.gormDB = gormDB
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		c.reader = readmodel.NewReader(gormDB)
		c.relayStore = outboxrepo.NewRelayStore(gormDB)
		c.closers = append(c.closers, func() error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	return c, nil
}

// OpenDatabase connects gorm to the configured PostgreSQL.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return gormDB, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// GormDB is nil for the memory store.
func (c *CompositionRoot) GormDB() *gorm.DB {
	return c.gormDB
}

// Close releases every resource opened by the root, last opened first.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) factory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.factory())
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.factory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.factory())
}

func (c *CompositionRoot) CreateSetDriverApprovalCommandHandler() commands.SetDriverApprovalCommandHandler {
	return commands.NewSetDriverApprovalCommandHandler(c.factory())
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.factory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.factory())
}

func (c *CompositionRoot) CreateListStaleDeliveriesQueryHandler() queries.ListStaleDeliveriesQueryHandler {
	return queries.NewListStaleDeliveriesQueryHandler(c.reader)
}

// CreateProofStorage returns nil when no bucket is configured; uploads then
// fail with commands.ErrProofStorageDisabled.
func (c *CompositionRoot) CreateProofStorage(ctx context.Context) (ports.ProofStorage, error) {
	if c.cfg.S3Bucket == "" {
		return nil, nil
	}
	storage, err := s3.NewProofStorage(ctx, s3.Config{
		Region:        c.cfg.S3Region,
		Bucket:        c.cfg.S3Bucket,
		Endpoint:      c.cfg.S3Endpoint,
		PublicBaseURL: c.cfg.S3PublicBaseURL,
	}, c.logger)
	if err != nil {
		return nil, err
	}
	return storage, nil
}

// CreateHandlers builds every use case the HTTP surface exposes.
func (c *CompositionRoot) CreateHandlers(ctx context.Context) (httpin.Handlers, error) {
	storage, err := c.CreateProofStorage(ctx)
	if err != nil {
		return httpin.Handlers{}, err
	}

	f := c.factory()
	return httpin.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		MarkOrderReady:        c.CreateMarkOrderReadyCommandHandler(),
		CancelOrder:           commands.NewCancelOrderCommandHandler(f),
		CreateDriver:          c.CreateCreateDriverCommandHandler(),
		CreateVehicle:         c.CreateCreateVehicleCommandHandler(),
		SetDriverApproval:     c.CreateSetDriverApprovalCommandHandler(),
		SetResourceActive:     commands.NewSetResourceActiveCommandHandler(f),
		AssignDelivery:        c.CreateAssignDeliveryCommandHandler(),
		AdvanceDeliveryStatus: commands.NewAdvanceDeliveryStatusCommandHandler(f),
		RecordPosition:        commands.NewRecordPositionCommandHandler(f, c.cfg.PositionSampleInterval),
		AttachProof:           commands.NewAttachProofCommandHandler(f),
		UploadProof:           commands.NewUploadProofCommandHandler(f, storage),
		SetVerification:       commands.NewSetVerificationCommandHandler(f),

		GetOrder:          queries.NewGetOrderQueryHandler(c.reader),
		ListReadyOrders:   queries.NewListReadyOrdersQueryHandler(c.reader),
		ListDrivers:       queries.NewListDriversQueryHandler(c.reader),
		ListVehicles:      queries.NewListVehiclesQueryHandler(c.reader),
		AvailableDrivers:  queries.NewAvailableDriversQueryHandler(c.reader),
		AvailableVehicles: queries.NewAvailableVehiclesQueryHandler(c.reader),
		GetDelivery:       queries.NewGetDeliveryQueryHandler(c.reader),
		ListDeliveries:    queries.NewListDeliveriesQueryHandler(c.reader),
		GetTimeline:       queries.NewGetTimelineQueryHandler(c.reader),
	}, nil
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	handlers, err := c.CreateHandlers(ctx)
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(httpin.NewServer(handlers, c.metrics, c.logger), c.metrics, c.logger)
}

// CreateEventPublisher returns the Kafka publisher, or a logging publisher
// when no brokers or topic are configured. The root closes it.
func (c *CompositionRoot) CreateEventPublisher() (ports.EventPublisher, error) {
	if c.publisher != nil {
		return c.publisher, nil
	}

	var publisher ports.EventPublisher = kafka.NewLogPublisher(c.logger)
	if len(c.cfg.KafkaBrokers) > 0 && c.cfg.KafkaDeliveryEventsTopic != "" {
		p, err := kafka.NewPublisher(c.cfg.KafkaBrokers, c.cfg.KafkaDeliveryEventsTopic, c.logger)
		if err != nil {
			return nil, err
		}
		publisher = p
	}

	c.publisher = publisher
	c.closers = append(c.closers, publisher.Close)
	return publisher, nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	publisher, err := c.CreateEventPublisher()
	if err != nil {
		return nil, err
	}

	relay := jobs.NewOutboxRelayJob(c.relayStore, publisher, c.cfg.OutboxBatchSize,
		c.cfg.OutboxRelaySchedule, c.metrics, c.logger)
	stale := jobs.NewStaleDeliveryReportJob(c.CreateListStaleDeliveriesQueryHandler(),
		c.cfg.StaleDeliveryAfter, c.cfg.StaleDeliverySchedule, c.metrics, c.logger)
	return jobs.NewJobManager(relay, stale), nil
}

// CreateInventoryConsumer returns nil when Kafka is not configured.
func (c *CompositionRoot) CreateInventoryConsumer() (*kafkain.Consumer, error) {
	consumer, err := kafkain.NewConsumer(
		c.cfg.KafkaBrokers,
		c.cfg.KafkaConsumerGroup,
		c.cfg.KafkaInventoryClearedTopic,
		c.CreateMarkOrderReadyCommandHandler(),
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	if consumer != nil {
		c.closers = append(c.closers, consumer.Close)
	}
	return consumer, nil
}

// CreateOutboxListener returns nil for the memory store, which has no
// notification channel; the relay schedule alone drives it.
func (c *CompositionRoot) CreateOutboxListener() (*notify.Listener, error) {
	if c.gormDB == nil {
		return nil, nil
	}
	return notify.NewListener(c.cfg.DSN(), postgres.OutboxChannel, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
