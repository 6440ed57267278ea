package domain

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string {
	return string(p)
}

// ParsePriority falls back to medium for unknown values.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	case PriorityUrgent:
		return PriorityUrgent
	default:
		return PriorityMedium
	}
}

type ReminderType string

const (
	ReminderTypePersonal ReminderType = "personal"
	ReminderTypeShared   ReminderType = "shared"
)

func ParseReminderType(s string) ReminderType {
	if ReminderType(strings.ToLower(strings.TrimSpace(s))) == ReminderTypeShared {
		return ReminderTypeShared
	}
	return ReminderTypePersonal
}

type RecurrenceRule string

const (
	RecurrenceNone    RecurrenceRule = "none"
	RecurrenceDaily   RecurrenceRule = "daily"
	RecurrenceWeekly  RecurrenceRule = "weekly"
	RecurrenceMonthly RecurrenceRule = "monthly"
	RecurrenceYearly  RecurrenceRule = "yearly"
)

func (r RecurrenceRule) String() string {
	return string(r)
}

func (r RecurrenceRule) IsRecurring() bool {
	return r != RecurrenceNone && r != ""
}

// ParseRecurrenceRule falls back to none for unknown values.
func ParseRecurrenceRule(s string) RecurrenceRule {
	switch RecurrenceRule(strings.ToLower(strings.TrimSpace(s))) {
	case RecurrenceDaily:
		return RecurrenceDaily
	case RecurrenceWeekly:
		return RecurrenceWeekly
	case RecurrenceMonthly:
		return RecurrenceMonthly
	case RecurrenceYearly:
		return RecurrenceYearly
	default:
		return RecurrenceNone
	}
}

// Reminder is a reminder record as supplied by the reminder store.
// Only the completion fields are ever written back, and only through
// ReminderSource.
type Reminder struct {
	ID                string
	Title             string
	Description       string
	Category          string
	Priority          Priority
	Type              ReminderType
	DueDate           time.Time
	Recurrence        RecurrenceRule
	RecurrenceEndDate *time.Time
	Completed         bool
	CompletedBy       string
	CompletedAt       *time.Time
}

// Validate checks the preconditions for scheduling.
func (r *Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if r.DueDate.IsZero() {
		return &ValidationError{Field: "due_date", Reason: "must be set"}
	}
	return nil
}

func (r *Reminder) IsRecurring() bool {
	return r.Recurrence.IsRecurring()
}
