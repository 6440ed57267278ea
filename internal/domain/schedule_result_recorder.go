package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=schedule_result_recorder.go -destination=schedule_result_recorder_mock.go -package=domain

type ScheduleOperation string

const (
	OperationSchedule ScheduleOperation = "schedule"
	OperationCancel   ScheduleOperation = "cancel"
)

type ScheduleResultRecord struct {
	RunID       string
	Operation   ScheduleOperation
	ReminderID  string
	Recurrence  string
	Priority    string
	Occurrences int
	Accepted    int
	Rejected    int
	Cancelled   int
	Failed      int
	Duration    time.Duration
	RecordedAt  time.Time
}

type ScheduleResultRecorder interface {
	RecordScheduleResults(ctx context.Context, records []ScheduleResultRecord) error
	Flush(ctx context.Context) error
	Close() error
}
