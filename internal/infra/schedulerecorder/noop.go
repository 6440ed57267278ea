package schedulerecorder

import (
	"context"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.ScheduleResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordScheduleResults(_ context.Context, _ []domain.ScheduleResultRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
