package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/schedule"
)

// Scheduler is the part of schedule.Service the lifecycle depends on.
type Scheduler interface {
	Schedule(ctx context.Context, reminder *domain.Reminder) schedule.Result
	CancelAll(ctx context.Context, reminderID string) schedule.CancelResult
}

type Service struct {
	source    domain.ReminderSource
	scheduler Scheduler
	now       func() time.Time
}

func NewService(source domain.ReminderSource, scheduler Scheduler) *Service {
	return &Service{
		source:    source,
		scheduler: scheduler,
		now:       time.Now,
	}
}

// Complete marks the reminder completed in the store and then cancels what
// is still scheduled for it. A zero completedAt means now.
func (s *Service) Complete(ctx context.Context, reminderID, completedBy string, completedAt time.Time) (schedule.CancelResult, error) {
	if completedAt.IsZero() {
		completedAt = s.now()
	}

	if err := s.source.MarkCompleted(ctx, reminderID, completedBy, completedAt); err != nil {
		slog.ErrorContext(ctx, "failed to mark reminder completed",
			slog.String("reminder_id", reminderID),
			slog.String("error", err.Error()),
		)
		return schedule.CancelResult{}, fmt.Errorf("failed to mark reminder %s completed: %w", reminderID, err)
	}

	result := s.scheduler.CancelAll(ctx, reminderID)

	slog.InfoContext(ctx, "reminder completed",
		slog.String("reminder_id", reminderID),
		slog.String("completed_by", completedBy),
		slog.Int("cancelled", result.Cancelled),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// Reopen clears the completion state and schedules the reminder again from
// its current record.
func (s *Service) Reopen(ctx context.Context, reminderID string) (schedule.Result, error) {
	if err := s.source.MarkIncomplete(ctx, reminderID); err != nil {
		slog.ErrorContext(ctx, "failed to mark reminder incomplete",
			slog.String("reminder_id", reminderID),
			slog.String("error", err.Error()),
		)
		return schedule.Result{}, fmt.Errorf("failed to mark reminder %s incomplete: %w", reminderID, err)
	}

	reminder, err := s.load(ctx, reminderID)
	if err != nil {
		return schedule.Result{}, err
	}

	// the store may lag behind its own write
	reminder.Completed = false
	reminder.CompletedBy = ""
	reminder.CompletedAt = nil

	return s.scheduler.Schedule(ctx, reminder), nil
}

// ScheduleByID schedules the reminder as currently held by the store.
func (s *Service) ScheduleByID(ctx context.Context, reminderID string) (schedule.Result, error) {
	reminder, err := s.load(ctx, reminderID)
	if err != nil {
		return schedule.Result{}, err
	}

	return s.scheduler.Schedule(ctx, reminder), nil
}

func (s *Service) load(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	reminder, err := s.source.Get(ctx, reminderID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch reminder",
			slog.String("reminder_id", reminderID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to fetch reminder %s: %w", reminderID, err)
	}
	if reminder == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrReminderNotFound, reminderID)
	}
	return reminder, nil
}
