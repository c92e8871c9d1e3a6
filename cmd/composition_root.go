package cmd

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"tracker/internal/adapters/in/http"
	"tracker/internal/adapters/out/postgres"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/streaming"
	"tracker/internal/jobs"

	"gorm.io/gorm"
)

const (
	defaultKeepAliveSeconds     = 25
	defaultDeterministicDelayMs = 50
)

// CompositionRoot wires all application components together.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	registry   *streaming.Registry
	dispatcher *streaming.Dispatcher
	sequence   *streaming.Sequence
	simulator  *streaming.Simulator
}

// NewCompositionRoot builds the object graph from configuration.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := streaming.NewRegistry()
	dispatcher := streaming.NewDispatcher(registry, logger)
	sequence := streaming.NewSequence()

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		dispatcher: dispatcher,
		sequence:   sequence,
	}

	store := NewOrderStoreAdapter(
		root.CreateGetOrderQueryHandler(),
		root.CreateAdvanceOrderCommandHandler(),
	)
	root.simulator = streaming.NewSimulator(store, dispatcher, sequence, logger)

	return root
}

// Registry returns the subscription registry.
func (c *CompositionRoot) Registry() *streaming.Registry {
	return c.registry
}

// CreateJobManager creates the manager for all background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.registry, c.logger)
}

// CreateHTTPServer creates the HTTP server with all handlers wired in.
// The run context bounds simulation runs and should stay alive for the
// whole service lifetime.
func (c *CompositionRoot) CreateHTTPServer(runCtx context.Context, cfg Config) *http.Server {
	createOrderHandler := c.CreateCreateOrderCommandHandler()
	getOrderHandler := c.CreateGetOrderQueryHandler()

	return http.NewServer(http.ServerConfig{
		CreateOrderHandler:  &createOrderHandler,
		GetOrderHandler:     getOrderHandler,
		GetAllOrdersHandler: c.CreateGetAllOrdersQueryHandler(),
		Registry:            c.registry,
		Simulator:           c.simulator,
		Sequence:            c.sequence,
		RandomPolicy:        streaming.NewRandomRangePolicy(),
		DeterministicPolicy: streaming.NewFixedDelayPolicy(deterministicDelay(cfg)),
		KeepAliveInterval:   keepAliveInterval(cfg),
		RunContext:          runCtx,
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func keepAliveInterval(cfg Config) time.Duration {
	seconds := defaultKeepAliveSeconds
	if parsed, err := strconv.Atoi(cfg.StreamKeepAliveSeconds); err == nil && parsed > 0 {
		seconds = parsed
	}
	return time.Duration(seconds) * time.Second
}

func deterministicDelay(cfg Config) time.Duration {
	ms := defaultDeterministicDelayMs
	if parsed, err := strconv.Atoi(cfg.StreamDeterministicDelayMs); err == nil && parsed > 0 {
		ms = parsed
	}
	return time.Duration(ms) * time.Millisecond
}

// FuncOrderUoWFactory adapts a plain function to the command layer's
// unit-of-work factory interface, so the composition root can hand out
// narrowed views of the GORM factory without a dedicated adapter type.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create returns a fresh unit of work by invoking the wrapped function.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
