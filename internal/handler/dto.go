package handler

import (
	"errors"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/schedule"
)

type ReminderRequest struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Type              string     `json:"type"`
	DueDate           *time.Time `json:"due_date"`
	Recurrence        string     `json:"recurrence"`
	RecurrenceEndDate *time.Time `json:"recurrence_end_date"`
	Completed         bool       `json:"completed"`
}

func (r *ReminderRequest) toDomain() *domain.Reminder {
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
	}
	if r.DueDate != nil {
		reminder.DueDate = *r.DueDate
	}
	return reminder
}

type CompletionRequest struct {
	CompletedBy string     `json:"completed_by" binding:"required"`
	CompletedAt *time.Time `json:"completed_at"`
}

type InteractionRequest struct {
	Metadata map[string]string `json:"metadata" binding:"required"`
}

type ScheduleResponse struct {
	Accepted int      `json:"accepted"`
	Rejected int      `json:"rejected"`
	Failures []string `json:"failures"`
	Handles  []string `json:"handles"`
}

type CancelResponse struct {
	Cancelled int      `json:"cancelled"`
	Failed    int      `json:"failed"`
	Failures  []string `json:"failures"`
}

type RescheduleResponse struct {
	Cancel   CancelResponse   `json:"cancel"`
	Schedule ScheduleResponse `json:"schedule"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newScheduleResponse(result schedule.Result) ScheduleResponse {
	handles := make([]string, 0, len(result.Handles))
	for _, h := range result.Handles {
		handles = append(handles, h.String())
	}

	return ScheduleResponse{
		Accepted: result.Accepted,
		Rejected: result.Rejected,
		Failures: errorStrings(result.Failures),
		Handles:  handles,
	}
}

func newCancelResponse(result schedule.CancelResult) CancelResponse {
	return CancelResponse{
		Cancelled: result.Cancelled,
		Failed:    result.Failed,
		Failures:  errorStrings(result.Failures),
	}
}

func errorStrings(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}

// isValidationFailure reports a pass that was rejected before any
// submission.
func isValidationFailure(result schedule.Result) bool {
	return result.Accepted == 0 &&
		result.Rejected == 0 &&
		len(result.Failures) == 1 &&
		errors.Is(result.Failures[0], domain.ErrValidation)
}

func scheduleFailure(err error) schedule.Result {
	return schedule.Result{Failures: []error{err}}
}
