package jobs

import (
	"context"
	"log/slog"

	"deliverydate/internal/core/application/usecases/queries"
	"deliverydate/internal/core/domain/model/kernel"
	"deliverydate/internal/core/domain/model/leadtime"

	"cloudeng.io/logging/ctxlog"
	"github.com/robfig/cron/v3"
)

// DefaultAnnounceSchedule fires once a day at midnight.
const DefaultAnnounceSchedule = "0 0 0 * * *"

// AnnouncementSettings selects what EstimateAnnouncementJob estimates and when.
type AnnouncementSettings struct {
	Schedule      string
	DeliveryState string
	Speed         leadtime.Speed
}

// EstimateAnnouncementJob logs, on every tick, the delivery date an order
// placed at that moment would get.
type EstimateAnnouncementJob struct {
	handler  queries.EstimateDeliveryDateQueryHandler
	settings AnnouncementSettings
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewEstimateAnnouncementJob creates the job. An empty schedule means
// DefaultAnnounceSchedule.
func NewEstimateAnnouncementJob(
	handler queries.EstimateDeliveryDateQueryHandler,
	settings AnnouncementSettings,
	logger *slog.Logger,
) *EstimateAnnouncementJob {
	if settings.Schedule == "" {
		settings.Schedule = DefaultAnnounceSchedule
	}

	return &EstimateAnnouncementJob{
		handler:  handler,
		settings: settings,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "estimate_announcement_job"),
	}
}

// Schedule returns the cron expression the job runs on.
func (j *EstimateAnnouncementJob) Schedule() string {
	return j.settings.Schedule
}

// Start registers the job with its schedule and starts the scheduler.
func (j *EstimateAnnouncementJob) Start() error {
	_, err := j.cron.AddFunc(j.settings.Schedule, func() {
		ctx := ctxlog.WithLogger(context.Background(), j.logger)
		if _, err := j.Announce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Estimate announcement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Estimate announcement job started", "schedule", j.settings.Schedule)
	return nil
}

// Stop stops the scheduler and waits for a running announcement to finish.
func (j *EstimateAnnouncementJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Estimate announcement job stopped")
}

// Announce estimates the delivery date for an order placed now and logs it.
func (j *EstimateAnnouncementJob) Announce(ctx context.Context) (queries.EstimateDeliveryDateQueryResponse, error) {
	query, err := queries.NewEstimateDeliveryDateQuery(
		j.settings.DeliveryState,
		kernel.NewManagedDateNow(),
		j.settings.Speed,
	)
	if err != nil {
		return queries.EstimateDeliveryDateQueryResponse{}, err
	}

	estimate, err := j.handler.Handle(ctx, query)
	if err != nil {
		return queries.EstimateDeliveryDateQueryResponse{}, err
	}

	j.logger.InfoContext(ctx, "Delivery date estimated",
		"state", estimate.DeliveryState,
		"speed", estimate.Speed.String(),
		"lead_time_days", estimate.LeadTimeDays,
		"placed_on", estimate.PlacedOn.DateString(),
		"delivery_date", estimate.DeliveryDate.DateString(),
		"summary", "Order will be delivered on: "+estimate.DeliveryDate.String(),
	)

	return estimate, nil
}
