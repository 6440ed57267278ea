package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=reminder_source.go -destination=reminder_source_mock.go -package=domain

type ReminderSource interface {
	// Get returns nil without error when the reminder does not exist.
	Get(ctx context.Context, reminderID string) (*Reminder, error)
	MarkCompleted(ctx context.Context, reminderID, completedBy string, completedAt time.Time) error
	MarkIncomplete(ctx context.Context, reminderID string) error
}
