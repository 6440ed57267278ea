package reminderstore

import (
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

type ReminderResponse struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Type              string     `json:"type"`
	DueDate           *time.Time `json:"due_date"`
	Recurrence        string     `json:"recurrence"`
	RecurrenceEndDate *time.Time `json:"recurrence_end_date,omitempty"`
	Completed         bool       `json:"completed"`
	CompletedBy       string     `json:"completed_by,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

type CompletionRequest struct {
	CompletedBy string    `json:"completed_by"`
	CompletedAt time.Time `json:"completed_at"`
}

func (r *ReminderResponse) ToDomain() *domain.Reminder {
	reminder := &domain.Reminder{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Category:          r.Category,
		Priority:          domain.ParsePriority(r.Priority),
		Type:              domain.ParseReminderType(r.Type),
		Recurrence:        domain.ParseRecurrenceRule(r.Recurrence),
		RecurrenceEndDate: r.RecurrenceEndDate,
		Completed:         r.Completed,
		CompletedBy:       r.CompletedBy,
		CompletedAt:       r.CompletedAt,
	}
	if r.DueDate != nil {
		reminder.DueDate = *r.DueDate
	}
	return reminder
}
