package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/tracing"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/compose"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/expand"
)

type Service struct {
	platform         domain.NotificationPlatform
	expander         *expand.Expander
	composer         *compose.Composer
	recorder         domain.ScheduleResultRecorder
	schedulerMetrics *metrics.SchedulerMetrics
	limiter          *rate.Limiter
	opts             Options
}

func NewService(
	platform domain.NotificationPlatform,
	expander *expand.Expander,
	composer *compose.Composer,
	recorder domain.ScheduleResultRecorder,
	schedulerMetrics *metrics.SchedulerMetrics,
	opts Options,
) *Service {
	if opts.Concurrency < 1 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}

	return &Service{
		platform:         platform,
		expander:         expander,
		composer:         composer,
		recorder:         recorder,
		schedulerMetrics: schedulerMetrics,
		limiter:          limiter,
		opts:             opts,
	}
}

// Schedule expands the reminder, composes its notification requests and
// submits each one independently. Platform failures are collected per
// request and never abort the pass.
func (s *Service) Schedule(ctx context.Context, reminder *domain.Reminder) Result {
	if reminder == nil {
		err := &domain.ValidationError{Field: "reminder", Reason: "must be set"}
		slog.WarnContext(ctx, "reminder rejected before scheduling",
			slog.String("error", err.Error()),
		)
		return Result{Failures: []error{err}}
	}

	if err := reminder.Validate(); err != nil {
		slog.WarnContext(ctx, "reminder rejected before scheduling",
			slog.String("reminder_id", reminder.ID),
			slog.String("error", err.Error()),
		)
		return Result{Failures: []error{err}}
	}

	if reminder.Completed {
		slog.DebugContext(ctx, "skipping completed reminder",
			slog.String("reminder_id", reminder.ID),
		)
		return Result{}
	}

	ctx, span := tracing.StartSchedulePassSpan(ctx, reminder.ID, reminder.Recurrence.String(), reminder.Priority.String())
	defer span.End()

	started := time.Now()
	now := s.opts.Now()

	occurrences := s.expander.Expand(reminder, now)
	s.schedulerMetrics.RecordOccurrences(ctx, reminder.Recurrence.String(), len(occurrences))

	requests := make([]domain.NotificationRequest, 0, len(occurrences)*2)
	for _, occurrence := range occurrences {
		requests = append(requests, s.composer.Compose(reminder, occurrence, now)...)
	}

	slog.DebugContext(ctx, "composed notification requests",
		slog.String("reminder_id", reminder.ID),
		slog.Int("occurrence_count", len(occurrences)),
		slog.Int("request_count", len(requests)),
	)

	handles := make([]domain.Handle, len(requests))
	errs := make([]error, len(requests))
	s.fanOut(len(requests), func(i int) {
		handles[i], errs[i] = s.submit(ctx, reminder.ID, &requests[i])
	})

	result := Result{
		Handles: make([]domain.Handle, 0, len(requests)),
	}
	for i := range requests {
		if errs[i] != nil {
			result.Rejected++
			result.Failures = append(result.Failures, errs[i])
			continue
		}
		result.Accepted++
		result.Handles = append(result.Handles, handles[i])
	}

	duration := time.Since(started)
	tracing.RecordSchedulePassResult(span, len(occurrences), result.Accepted, result.Rejected)
	s.schedulerMetrics.RecordPassDuration(ctx, string(domain.OperationSchedule), duration)

	logAttrs := []any{
		slog.String("reminder_id", reminder.ID),
		slog.String("recurrence", reminder.Recurrence.String()),
		slog.Int("accepted", result.Accepted),
		slog.Int("rejected", result.Rejected),
		slog.Duration("duration", duration),
	}
	if result.Rejected > 0 {
		slog.WarnContext(ctx, "reminder scheduled with rejections", logAttrs...)
	} else {
		slog.InfoContext(ctx, "reminder scheduled", logAttrs...)
	}

	s.record(ctx, domain.ScheduleResultRecord{
		Operation:   domain.OperationSchedule,
		ReminderID:  reminder.ID,
		Recurrence:  reminder.Recurrence.String(),
		Priority:    reminder.Priority.String(),
		Occurrences: len(occurrences),
		Accepted:    result.Accepted,
		Rejected:    result.Rejected,
		Duration:    duration,
	})

	return result
}

// CancelAll cancels every scheduled notification whose metadata names the
// reminder. Cancelling an already cancelled reminder cancels nothing.
func (s *Service) CancelAll(ctx context.Context, reminderID string) CancelResult {
	ctx, span := tracing.StartCancelPassSpan(ctx, reminderID)
	defer span.End()

	started := time.Now()

	items, err := s.platform.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list scheduled notifications",
			slog.String("reminder_id", reminderID),
			slog.String("error", err.Error()),
		)
		tracing.RecordError(span, err)
		return CancelResult{
			Failures: []error{fmt.Errorf("%w: list scheduled notifications: %w", domain.ErrPlatformCancellation, err)},
		}
	}

	targets := make([]domain.Handle, 0)
	for _, item := range items {
		if item.Metadata.ReminderID() == reminderID {
			targets = append(targets, item.Handle)
		}
	}

	errs := make([]error, len(targets))
	s.fanOut(len(targets), func(i int) {
		if err := s.platform.Cancel(ctx, targets[i]); err != nil {
			errs[i] = &domain.CancellationError{Handle: targets[i], Err: err}
			s.schedulerMetrics.RecordCancellation(ctx, "failed")
			return
		}
		s.schedulerMetrics.RecordCancellation(ctx, "cancelled")
	})

	var result CancelResult
	for _, err := range errs {
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, err)
			continue
		}
		result.Cancelled++
	}

	duration := time.Since(started)
	tracing.RecordCancelPassResult(span, result.Cancelled, result.Failed)
	s.schedulerMetrics.RecordPassDuration(ctx, string(domain.OperationCancel), duration)

	slog.InfoContext(ctx, "reminder notifications cancelled",
		slog.String("reminder_id", reminderID),
		slog.Int("cancelled", result.Cancelled),
		slog.Int("failed", result.Failed),
	)

	s.record(ctx, domain.ScheduleResultRecord{
		Operation:  domain.OperationCancel,
		ReminderID: reminderID,
		Cancelled:  result.Cancelled,
		Failed:     result.Failed,
		Duration:   duration,
	})

	return result
}

// Reschedule replaces the reminder's schedule with a fresh one computed from
// now. Callers must not run two reschedules of the same reminder at once.
func (s *Service) Reschedule(ctx context.Context, reminder *domain.Reminder) RescheduleResult {
	if reminder == nil {
		return RescheduleResult{Schedule: s.Schedule(ctx, nil)}
	}

	cancelled := s.CancelAll(ctx, reminder.ID)
	scheduled := s.Schedule(ctx, reminder)

	return RescheduleResult{
		Cancel:   cancelled,
		Schedule: scheduled,
	}
}

// EnsureChannels registers the reminder channels. It must run before the
// first Schedule.
func (s *Service) EnsureChannels(ctx context.Context) error {
	for _, channel := range domain.ReminderChannels() {
		if err := s.platform.SetChannel(ctx, channel); err != nil {
			return fmt.Errorf("failed to register channel %s: %w", channel.ID, err)
		}
		slog.DebugContext(ctx, "notification channel registered",
			slog.String("channel", string(channel.ID)),
		)
	}
	return nil
}

func (s *Service) submit(ctx context.Context, reminderID string, req *domain.NotificationRequest) (domain.Handle, error) {
	ctx, span := tracing.StartSubmissionSpan(ctx, reminderID, string(req.Channel), req.TriggerAt, req.IsWarning())
	defer span.End()

	fail := func(err error) (domain.Handle, error) {
		slog.WarnContext(ctx, "platform rejected notification",
			slog.String("reminder_id", reminderID),
			slog.Time("trigger_at", req.TriggerAt),
			slog.Bool("is_warning", req.IsWarning()),
			slog.String("error", err.Error()),
		)
		tracing.RecordError(span, err)
		s.schedulerMetrics.RecordSubmission(ctx, string(req.Channel), req.IsWarning(), "rejected")
		return "", &domain.SubmissionError{
			ReminderID: reminderID,
			TriggerAt:  req.TriggerAt,
			IsWarning:  req.IsWarning(),
			Err:        err,
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fail(err)
		}
	}

	submitCtx := ctx
	if s.opts.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, s.opts.SubmitTimeout)
		defer cancel()
	}

	handle, err := s.platform.Schedule(submitCtx, req)
	if err != nil {
		return fail(err)
	}

	tracing.RecordError(span, nil)
	s.schedulerMetrics.RecordSubmission(ctx, string(req.Channel), req.IsWarning(), "accepted")

	return handle, nil
}

// fanOut runs fn for every index, at most opts.Concurrency at a time. fn
// reports its outcome through its own slot, so one failure never stops the
// others.
func (s *Service) fanOut(n int, fn func(i int)) {
	if s.opts.Concurrency <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(s.opts.Concurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Service) record(ctx context.Context, record domain.ScheduleResultRecord) {
	if s.recorder == nil {
		return
	}

	record.RunID = uuid.NewString()
	record.RecordedAt = s.opts.Now()

	if err := s.recorder.RecordScheduleResults(ctx, []domain.ScheduleResultRecord{record}); err != nil {
		slog.WarnContext(ctx, "failed to record schedule results",
			slog.String("reminder_id", record.ReminderID),
			slog.String("operation", string(record.Operation)),
			slog.String("error", err.Error()),
		)
	}
}
