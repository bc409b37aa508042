// Package jobs provides scheduled background tasks for the delivery date estimator.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled,
// so schedules have six fields.
//
// # Available Jobs
//
// 1. EstimateAnnouncementJob - estimates the delivery date of an order placed
// at the moment of each tick and logs it. Runs daily at midnight unless
// configured otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(estimateHandler, jobs.AnnouncementSettings{
//		Schedule:      "0 0 0 * * *",
//		DeliveryState: "MA",
//		Speed:         leadtime.Rush,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - An invalid schedule fails Start, and StartAll stops whatever already started
// - Estimation failures during a tick are logged and the job keeps running
package jobs
