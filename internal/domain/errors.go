package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation           = errors.New("reminder validation failed")
	ErrPlatformSubmission   = errors.New("platform rejected notification")
	ErrPlatformCancellation = errors.New("platform failed to cancel notification")
	ErrReminderNotFound     = errors.New("reminder not found")
	ErrChannelNotRegistered = errors.New("notification channel not registered")
	ErrInvalidTrigger       = errors.New("trigger time is not in the future")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SubmissionError records one request the platform did not accept.
type SubmissionError struct {
	ReminderID string
	TriggerAt  time.Time
	IsWarning  bool
	Err        error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: reminder=%s trigger=%s warning=%t: %v",
		ErrPlatformSubmission.Error(), e.ReminderID, e.TriggerAt.Format(time.RFC3339), e.IsWarning, e.Err)
}

func (e *SubmissionError) Unwrap() []error {
	return []error{ErrPlatformSubmission, e.Err}
}

// CancellationError records one handle the platform failed to cancel.
type CancellationError struct {
	Handle Handle
	Err    error
}

func (e *CancellationError) Error() string {
	return fmt.Sprintf("%s: handle=%s: %v", ErrPlatformCancellation.Error(), e.Handle, e.Err)
}

func (e *CancellationError) Unwrap() []error {
	return []error{ErrPlatformCancellation, e.Err}
}
