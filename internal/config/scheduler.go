package config

import (
	"os"
	"strconv"
	"time"
)

const (
	submitTimeoutSecondsEnv = "SUBMIT_TIMEOUT_SECONDS"
	submitConcurrencyEnv    = "SUBMIT_CONCURRENCY"
	submitRatePerSecondEnv  = "SUBMIT_RATE_PER_SECOND"
	submitBurstEnv          = "SUBMIT_BURST"

	defaultSubmitTimeoutSeconds = 10
	defaultSubmitConcurrency    = 1
	defaultSubmitBurst          = 1
)

type SchedulerConfig struct {
	SubmitTimeout time.Duration
	Concurrency   int
	RatePerSecond float64
	Burst         int
}

// LoadSchedulerConfig falls back to the default for any unparsable value.
// A timeout of 0 disables the per-submission bound.
func LoadSchedulerConfig() *SchedulerConfig {
	timeoutSeconds := defaultSubmitTimeoutSeconds
	if v := os.Getenv(submitTimeoutSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			timeoutSeconds = parsed
		}
	}

	concurrency := defaultSubmitConcurrency
	if v := os.Getenv(submitConcurrencyEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			concurrency = parsed
		}
	}

	var ratePerSecond float64
	if v := os.Getenv(submitRatePerSecondEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			ratePerSecond = parsed
		}
	}

	burst := defaultSubmitBurst
	if v := os.Getenv(submitBurstEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			burst = parsed
		}
	}

	return &SchedulerConfig{
		SubmitTimeout: time.Duration(timeoutSeconds) * time.Second,
		Concurrency:   concurrency,
		RatePerSecond: ratePerSecond,
		Burst:         burst,
	}
}
