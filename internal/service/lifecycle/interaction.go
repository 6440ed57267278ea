package lifecycle

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/dispatch"
)

const completedByNotification = "notification"

// HandleReminderInteraction is registered with the dispatcher for reminder
// taps. Errors are logged and dropped.
func (s *Service) HandleReminderInteraction(ctx context.Context, interaction dispatch.ReminderInteraction) {
	if interaction.ReminderID == "" {
		slog.WarnContext(ctx, "reminder interaction without reminder id",
			slog.String("action", interaction.Action),
		)
		return
	}

	switch interaction.Action {
	case dispatch.ActionComplete:
		if _, err := s.Complete(ctx, interaction.ReminderID, completedByNotification, s.now()); err != nil {
			slog.WarnContext(ctx, "failed to complete reminder from notification",
				slog.String("reminder_id", interaction.ReminderID),
				slog.String("error", err.Error()),
			)
		}
	default:
		slog.InfoContext(ctx, "reminder notification opened",
			slog.String("reminder_id", interaction.ReminderID),
			slog.String("action", interaction.Action),
			slog.Bool("is_warning", interaction.IsWarning),
			slog.String("priority", interaction.Priority.String()),
			slog.String("category", interaction.Category),
		)
	}
}
