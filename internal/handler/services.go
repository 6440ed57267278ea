package handler

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/schedule"
)

//go:generate mockgen -source=services.go -destination=services_mock.go -package=handler

type ReminderScheduler interface {
	Schedule(ctx context.Context, reminder *domain.Reminder) schedule.Result
	CancelAll(ctx context.Context, reminderID string) schedule.CancelResult
	Reschedule(ctx context.Context, reminder *domain.Reminder) schedule.RescheduleResult
}

type ReminderLifecycle interface {
	Complete(ctx context.Context, reminderID, completedBy string, completedAt time.Time) (schedule.CancelResult, error)
	Reopen(ctx context.Context, reminderID string) (schedule.Result, error)
	ScheduleByID(ctx context.Context, reminderID string) (schedule.Result, error)
}

type InteractionDispatcher interface {
	Dispatch(ctx context.Context, metadata domain.Metadata)
}
