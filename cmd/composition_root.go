package cmd

import (
	"context"
	"log/slog"

	"deliverydate/internal/core/application/usecases/commands"
	"deliverydate/internal/core/application/usecases/queries"
	"deliverydate/internal/core/domain/services"
	"deliverydate/internal/jobs"

	"cloudeng.io/logging/ctxlog"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	calculator services.DeliveryDateCalculator
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		calculator: services.NewDeliveryDateCalculator(),
	}
}

// Context returns ctx carrying the application logger for the handlers.
func (c *CompositionRoot) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.calculator)
}

func (c *CompositionRoot) CreateEstimateDeliveryDateQueryHandler() queries.EstimateDeliveryDateQueryHandler {
	return queries.NewEstimateDeliveryDateQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateGetLeadTimesQueryHandler() queries.GetLeadTimesQueryHandler {
	return queries.NewGetLeadTimesQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateEstimateDeliveryDateQueryHandler(),
		jobs.AnnouncementSettings{
			Schedule:      c.config.AnnounceSchedule,
			DeliveryState: c.config.DeliveryState,
			Speed:         c.config.Speed(),
		},
		c.logger,
	)
}
