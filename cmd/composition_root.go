package cmd

import (
	"log/slog"

	inkafka "docflow/internal/adapters/in/kafka"
	"docflow/internal/adapters/out/docgen"
	outkafka "docflow/internal/adapters/out/kafka"
	"docflow/internal/adapters/out/postgres"
	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/ports"
	"docflow/internal/jobs"
	"docflow/internal/workers"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, command handlers and query handlers
// together. Stateful collaborators (the notifier, the generation worker, the
// pipeline snapshot) are created once here and shared; handlers are cheap and
// created per call.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger

	uowFactory postgres.GormUnitOfWorkFactory
	artifacts  ports.ArtifactStore
	generator  ports.DocumentGenerator
	notifier   *outkafka.Notifier
	worker     *workers.GenerationWorker
	snapshot   *queries.PipelineSnapshot
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	artifacts ports.ArtifactStore,
	logger *slog.Logger,
) *CompositionRoot {
	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		artifacts:  artifacts,
		generator:  docgen.NewClient(config.DocgenBaseURL),
		notifier:   outkafka.NewNotifier(config.KafkaBrokers, config.KafkaOrderStatusTopic, logger),
		snapshot:   queries.NewPipelineSnapshot(gormDB),
	}

	root.worker = workers.NewGenerationWorker(
		root.generator,
		root.artifacts,
		root.CreateCompleteGenerationCommandHandler(),
		root.CreateFailGenerationCommandHandler(),
		logger,
		config.GenerationWorkers,
		config.GenerationQueueSize,
	)

	return root
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateStartGenerationCommandHandler() commands.StartGenerationCommandHandler {
	return commands.NewStartGenerationCommandHandler(c.fullUoWFactory(), c.worker)
}

func (c *CompositionRoot) CreateCompleteGenerationCommandHandler() commands.CompleteGenerationCommandHandler {
	return commands.NewCompleteGenerationCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateFailGenerationCommandHandler() commands.FailGenerationCommandHandler {
	return commands.NewFailGenerationCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateApproveVersionCommandHandler() commands.ApproveVersionCommandHandler {
	return commands.NewApproveVersionCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRequestRegenerationCommandHandler() commands.RequestRegenerationCommandHandler {
	return commands.NewRequestRegenerationCommandHandler(c.fullUoWFactory(), c.worker)
}

func (c *CompositionRoot) CreateRequestClientInputCommandHandler() commands.RequestClientInputCommandHandler {
	return commands.NewRequestClientInputCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSubmitClientResponseCommandHandler() commands.SubmitClientResponseCommandHandler {
	return commands.NewSubmitClientResponseCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.fullUoWFactory(), c.artifacts, c.notifier)
}

func (c *CompositionRoot) CreateProcessPendingDeliveriesCommandHandler() commands.ProcessPendingDeliveriesCommandHandler {
	return commands.NewProcessPendingDeliveriesCommandHandler(
		c.fullUoWFactory(),
		c.CreateDeliverOrderCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateOverrideTransitionCommandHandler() commands.OverrideTransitionCommandHandler {
	return commands.NewOverrideTransitionCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() commands.ArchiveOrderCommandHandler {
	return commands.NewArchiveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetPriorityCommandHandler() commands.SetPriorityCommandHandler {
	return commands.NewSetPriorityCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddNoteCommandHandler() commands.AddNoteCommandHandler {
	return commands.NewAddNoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReopenVersionsCommandHandler() commands.ReopenVersionsCommandHandler {
	return commands.NewReopenVersionsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTimelineQueryHandler() queries.GetTimelineQueryHandler {
	return queries.NewGetTimelineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDocumentVersionsQueryHandler() queries.GetDocumentVersionsQueryHandler {
	return queries.NewGetDocumentVersionsQueryHandler(c.gormDB, c.artifacts, c.logger)
}

func (c *CompositionRoot) CreateGetPipelineQueryHandler() queries.GetPipelineQueryHandler {
	return queries.NewGetPipelineQueryHandler(c.snapshot)
}

// GenerationWorker returns the shared background rendering pool.
func (c *CompositionRoot) GenerationWorker() *workers.GenerationWorker {
	return c.worker
}

// CreatePaymentConsumer builds the inbound payment confirmation consumer.
func (c *CompositionRoot) CreatePaymentConsumer() *inkafka.PaymentConsumer {
	return inkafka.NewPaymentConsumer(
		c.config.KafkaBrokers,
		c.config.KafkaPaymentConfirmedTopic,
		c.config.KafkaConsumerGroup,
		c.CreateConfirmPaymentCommandHandler(),
		c.logger,
	)
}

// CreateJobManager builds the cron job manager with all background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderUoWFactory(),
		c.CreateFailGenerationCommandHandler(),
		c.CreateProcessPendingDeliveriesCommandHandler(),
		c.snapshot,
		c.config.GenerationTimeout,
		c.logger,
	)
}

// Close releases the root's long-lived resources.
func (c *CompositionRoot) Close() error {
	return c.notifier.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
