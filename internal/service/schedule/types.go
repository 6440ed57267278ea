package schedule

import (
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

const (
	DefaultSubmitTimeout = 10 * time.Second
	DefaultConcurrency   = 1
)

type Options struct {
	// SubmitTimeout bounds each platform submission. Zero disables it.
	SubmitTimeout time.Duration
	// Concurrency is the number of submissions in flight. 1 submits in order.
	Concurrency int
	// RatePerSecond paces submissions. Zero means unlimited.
	RatePerSecond float64
	Burst         int
	Now           func() time.Time
}

func DefaultOptions() Options {
	return Options{
		SubmitTimeout: DefaultSubmitTimeout,
		Concurrency:   DefaultConcurrency,
		Burst:         1,
		Now:           time.Now,
	}
}

// Result aggregates one scheduling pass. Each failure is one request.
type Result struct {
	Accepted int
	Rejected int
	Failures []error
	Handles  []domain.Handle
}

type CancelResult struct {
	Cancelled int
	Failed    int
	Failures  []error
}

type RescheduleResult struct {
	Cancel   CancelResult
	Schedule Result
}
