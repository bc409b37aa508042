package jobs_test

import (
	"log/slog"
	"testing"

	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	var buf syncBuffer
	jm := jobs.NewJobManager(newEstimateHandler(), jobs.AnnouncementSettings{
		DeliveryState: "MA",
		Speed:         leadtime.Rush,
	}, newLogger(&buf))

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, jobs.DefaultAnnounceSchedule, jm.EstimateAnnouncementJob().Schedule())
	assert.Contains(t, buf.String(), `"schedule":"0 0 0 * * *"`)
	assert.Contains(t, buf.String(), "Estimate announcement job stopped")
}

func TestJobManager_StartAllReportsInvalidSchedule(t *testing.T) {
	jm := jobs.NewJobManager(newEstimateHandler(), jobs.AnnouncementSettings{
		Schedule:      "61 * * * * *",
		DeliveryState: "MA",
		Speed:         leadtime.Rush,
	}, slog.New(slog.DiscardHandler))

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start estimate announcement job")
}
