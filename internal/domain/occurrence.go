package domain

import "time"

// Occurrence is one concrete future firing instant of a reminder.
type Occurrence struct {
	ReminderID string
	FiringAt   time.Time
}

func NewOccurrence(reminderID string, firingAt time.Time) Occurrence {
	return Occurrence{
		ReminderID: reminderID,
		FiringAt:   firingAt,
	}
}
