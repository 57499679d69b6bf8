package cmd

import (
	"log/slog"
	"os"

	"parcelflow/internal/adapters/in/http"
	"parcelflow/internal/adapters/out/lognotify"
	"parcelflow/internal/adapters/out/postgres"
	"parcelflow/internal/adapters/out/postgres/auditrepo"
	"parcelflow/internal/adapters/out/rmq"
	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/ports"
	"parcelflow/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and domain services together.
// All handlers share one unit of work factory, one authorizer and one
// notifier.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	authorizer *commands.Authorizer
	evaluator  *access.Evaluator
	notifier   ports.Notifier
	fees       commands.FeeSchedule
	logger     *slog.Logger

	closers []func() error
}

// NewCompositionRoot builds the object graph from configuration. When no
// AMQP URL is configured, status change events fall back to log lines.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	evaluator := access.NewEvaluator(access.DefaultRolePolicy())

	// Security-channel denials are written outside command transactions.
	securityRecorder := auditrepo.NewGormAuditRecorder(gormDB)
	authorizer := commands.NewAuthorizer(evaluator, securityRecorder, logger)

	rate, err := decimal.NewFromString(config.FeePerKgRate)
	if err != nil {
		return CompositionRoot{}, err
	}
	fees, err := commands.NewFeeSchedule(rate, kernel.Currency(config.FeeCurrency))
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		authorizer: authorizer,
		evaluator:  evaluator,
		fees:       fees,
		logger:     logger,
	}

	if config.AmqpURL != "" {
		publisher, pubErr := rmq.NewPublisher(config.AmqpURL, config.AmqpExchange, logger)
		if pubErr != nil {
			return CompositionRoot{}, pubErr
		}
		root.notifier = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		root.notifier = lognotify.NewNotifier(logger)
	}

	return root, nil
}

// Logger returns the application logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Close releases broker connections and other held resources.
func (c *CompositionRoot) Close() error {
	for _, closer := range c.closers {
		if err := closer(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.authorizer, c.fees)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.authorizer, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f, c.authorizer, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateApproveRiderCommandHandler() commands.ApproveRiderCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveRiderCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateRejectRiderCommandHandler() commands.RejectRiderCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectRiderCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateSetRiderAvailabilityCommandHandler() commands.SetRiderAvailabilityCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRiderAvailabilityCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateStartRiderSearchCommandHandler() commands.StartRiderSearchCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRiderSearchCommandHandler(f)
}

func (c *CompositionRoot) CreateAutoAssignRidersCommandHandler() commands.AutoAssignRidersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignRidersCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateTrackDeliveryQueryHandler() queries.TrackDeliveryQueryHandler {
	return queries.NewTrackDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingRidersQueryHandler() queries.GetPendingRidersQueryHandler {
	return queries.NewGetPendingRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

// CreateHTTPServer wires all handlers into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateAssignRiderCommandHandler(),
		c.CreateApproveRiderCommandHandler(),
		c.CreateRejectRiderCommandHandler(),
		c.CreateRecordPaymentCommandHandler(),
		c.CreateSetRiderAvailabilityCommandHandler(),
		c.CreateTrackDeliveryQueryHandler(),
		c.CreateGetDashboardStatsQueryHandler(),
		c.CreateGetPendingRidersQueryHandler(),
		c.CreateGetAuditTrailQueryHandler(),
		c.evaluator,
	)
}

// CreateJobManager wires the dispatch and auto-assignment sweeps.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateStartRiderSearchCommandHandler(),
		c.CreateAutoAssignRidersCommandHandler(),
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
