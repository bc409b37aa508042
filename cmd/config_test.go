package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"deliverydate/cmd"
	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/jobs"
	"deliverydate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{cmd.DeliveryStateKey, cmd.RushDeliveryKey, cmd.AnnounceScheduleKey, cmd.LogLevelKey} {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "MA", config.DeliveryState)
	assert.False(t, config.RushDelivery)
	assert.Equal(t, leadtime.Regular, config.Speed())
	assert.Equal(t, jobs.DefaultAnnounceSchedule, config.AnnounceSchedule)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
}

func TestLoadConfig_EmptyPathSkipsFile(t *testing.T) {
	clearEnv(t)

	config, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "MA", config.DeliveryState)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "DELIVERY_STATE=NH\nRUSH_DELIVERY=true\nANNOUNCE_SCHEDULE=@hourly\nLOG_LEVEL=debug\n")

	config, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "NH", config.DeliveryState)
	assert.True(t, config.RushDelivery)
	assert.Equal(t, leadtime.Rush, config.Speed())
	assert.Equal(t, "@hourly", config.AnnounceSchedule)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
}

func TestLoadConfig_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "DELIVERY_STATE=NH\nRUSH_DELIVERY=true\n")
	t.Setenv(cmd.DeliveryStateKey, "CT")
	t.Setenv(cmd.RushDeliveryKey, "0")

	config, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "CT", config.DeliveryState)
	assert.False(t, config.RushDelivery)
}

func TestLoadConfig_DoesNotExportFileValues(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "DELIVERY_STATE=NH\n")

	_, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Empty(t, os.Getenv(cmd.DeliveryStateKey))
}

func TestLoadConfig_ReportsEveryInvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv(cmd.RushDeliveryKey, "maybe")
	t.Setenv(cmd.AnnounceScheduleKey, "0 0 25 * * *")
	t.Setenv(cmd.LogLevelKey, "loud")

	_, err := cmd.LoadConfig("")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), cmd.RushDeliveryKey)
	assert.Contains(t, err.Error(), cmd.AnnounceScheduleKey)
	assert.Contains(t, err.Error(), cmd.LogLevelKey)
}

func TestLoadConfig_UnreadableFile(t *testing.T) {
	clearEnv(t)

	_, err := cmd.LoadConfig(t.TempDir())

	require.Error(t, err)
}
