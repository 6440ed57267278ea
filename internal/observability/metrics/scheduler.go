package metrics

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	schedulerMeterName = "reminder.scheduler"
)

type SchedulerMetrics struct {
	notificationsSubmitted metric.Int64Counter
	notificationsCancelled metric.Int64Counter
	occurrencesExpanded    metric.Int64Histogram
	passDuration           metric.Float64Histogram
	dispatched             metric.Int64Counter
}

func NewSchedulerMetrics() (*SchedulerMetrics, error) {
	meter := otel.Meter(schedulerMeterName)

	notificationsSubmitted, err := meter.Int64Counter(
		"reminder_notifications_submitted_total",
		metric.WithDescription("Notification requests submitted to the platform"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsCancelled, err := meter.Int64Counter(
		"reminder_notifications_cancelled_total",
		metric.WithDescription("Scheduled notifications cancelled on the platform"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	occurrencesExpanded, err := meter.Int64Histogram(
		"reminder_occurrences_expanded",
		metric.WithDescription("Occurrences produced per scheduling pass"),
		metric.WithUnit("{occurrence}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 5, 10, 20, 30),
	)
	if err != nil {
		return nil, err
	}

	passDuration, err := meter.Float64Histogram(
		"reminder_pass_duration_seconds",
		metric.WithDescription("Duration of schedule and cancel passes"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	dispatched, err := meter.Int64Counter(
		"notification_interactions_dispatched_total",
		metric.WithDescription("Notification interactions routed by kind"),
		metric.WithUnit("{interaction}"),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerMetrics{
		notificationsSubmitted: notificationsSubmitted,
		notificationsCancelled: notificationsCancelled,
		occurrencesExpanded:    occurrencesExpanded,
		passDuration:           passDuration,
		dispatched:             dispatched,
	}, nil
}

func (m *SchedulerMetrics) RecordSubmission(ctx context.Context, channel string, isWarning bool, outcome string) {
	if m == nil {
		return
	}
	m.notificationsSubmitted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("warning", strconv.FormatBool(isWarning)),
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulerMetrics) RecordCancellation(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.notificationsCancelled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulerMetrics) RecordOccurrences(ctx context.Context, recurrence string, count int) {
	if m == nil {
		return
	}
	m.occurrencesExpanded.Record(ctx, int64(count), metric.WithAttributes(
		attribute.String("recurrence", recurrence),
	))
}

func (m *SchedulerMetrics) RecordPassDuration(ctx context.Context, operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.passDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

func (m *SchedulerMetrics) RecordDispatch(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.dispatched.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}
