package jobs

import (
	"fmt"
	"log/slog"

	"deliverydate/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	estimateAnnouncementJob *EstimateAnnouncementJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	estimateHandler queries.EstimateDeliveryDateQueryHandler,
	announcement AnnouncementSettings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		estimateAnnouncementJob: NewEstimateAnnouncementJob(estimateHandler, announcement, logger),
	}
}

// EstimateAnnouncementJob returns the managed announcement job.
func (jm *JobManager) EstimateAnnouncementJob() *EstimateAnnouncementJob {
	return jm.estimateAnnouncementJob
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.estimateAnnouncementJob.Start(); err != nil {
		return fmt.Errorf("failed to start estimate announcement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.estimateAnnouncementJob.Stop()
}
