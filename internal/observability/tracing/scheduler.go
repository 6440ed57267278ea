package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const schedulerTracerName = "github.com/KasumiMercury/primind-reminder-scheduler/internal/service/schedule"

func SchedulerTracer() trace.Tracer {
	return otel.Tracer(schedulerTracerName)
}

func StartSchedulePassSpan(ctx context.Context, reminderID, recurrence, priority string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.schedule",
		trace.WithAttributes(
			attribute.String("reminder.id", reminderID),
			attribute.String("reminder.recurrence", recurrence),
			attribute.String("reminder.priority", priority),
		),
	)
}

func StartCancelPassSpan(ctx context.Context, reminderID string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.cancel_all",
		trace.WithAttributes(
			attribute.String("reminder.id", reminderID),
		),
	)
}

func StartSubmissionSpan(ctx context.Context, reminderID, channel string, triggerAt time.Time, isWarning bool) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.submit",
		trace.WithAttributes(
			attribute.String("reminder.id", reminderID),
			attribute.String("notification.channel", channel),
			attribute.String("notification.trigger_at", triggerAt.Format(time.RFC3339)),
			attribute.Bool("notification.warning", isWarning),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartDispatchSpan(ctx context.Context, kind string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "dispatcher.dispatch",
		trace.WithAttributes(
			attribute.String("notification.kind", kind),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "reminder.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordSchedulePassResult(span trace.Span, occurrences, accepted, rejected int) {
	span.SetAttributes(
		attribute.Int("schedule.occurrences", occurrences),
		attribute.Int("schedule.accepted", accepted),
		attribute.Int("schedule.rejected", rejected),
	)
	if rejected > 0 {
		span.SetStatus(codes.Error, "some notifications were rejected")
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordCancelPassResult(span trace.Span, cancelled, failed int) {
	span.SetAttributes(
		attribute.Int("cancel.cancelled", cancelled),
		attribute.Int("cancel.failed", failed),
	)
	if failed > 0 {
		span.SetStatus(codes.Error, "some notifications could not be cancelled")
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordError(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
