package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/jobs"
	"deliverydate/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	DeliveryStateKey    = "DELIVERY_STATE"
	RushDeliveryKey     = "RUSH_DELIVERY"
	AnnounceScheduleKey = "ANNOUNCE_SCHEDULE"
	LogLevelKey         = "LOG_LEVEL"

	DefaultDeliveryState = "MA"
)

type Config struct {
	DeliveryState    string
	RushDelivery     bool
	AnnounceSchedule string
	LogLevel         slog.Level
}

// Speed maps RushDelivery to the lead-time speed.
func (c Config) Speed() leadtime.Speed {
	return leadtime.SpeedFromRush(c.RushDelivery)
}

// LoadConfig reads the settings from the process environment, falling back
// to envFile and then to the defaults. A missing envFile is not an error.
// Every malformed value is reported.
func LoadConfig(envFile string) (Config, error) {
	fileValues, err := readEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := fileValues[key]; v != "" {
			return v
		}
		return def
	}

	config := Config{
		DeliveryState:    lookup(DeliveryStateKey, DefaultDeliveryState),
		AnnounceSchedule: lookup(AnnounceScheduleKey, jobs.DefaultAnnounceSchedule),
	}

	if err = errors.Join(
		config.setRushDelivery(lookup(RushDeliveryKey, "false")),
		config.validateAnnounceSchedule(),
		config.setLogLevel(lookup(LogLevelKey, "INFO")),
	); err != nil {
		return Config{}, err
	}

	return config, nil
}

func readEnvFile(envFile string) (map[string]string, error) {
	if envFile == "" {
		return map[string]string{}, nil
	}

	values, err := godotenv.Read(envFile)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	return values, nil
}

func (c *Config) setRushDelivery(value string) error {
	rush, err := strconv.ParseBool(value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(RushDeliveryKey, err)
	}

	c.RushDelivery = rush
	return nil
}

func (c *Config) validateAnnounceSchedule() error {
	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	if _, err := parser.Parse(c.AnnounceSchedule); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(AnnounceScheduleKey, err)
	}

	return nil
}

func (c *Config) setLogLevel(value string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(LogLevelKey, err)
	}

	c.LogLevel = level
	return nil
}
