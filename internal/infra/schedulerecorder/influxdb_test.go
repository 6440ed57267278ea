//go:build !gcloud

package schedulerecorder

import (
	"context"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

func TestToPoint(t *testing.T) {
	recordedAt := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	point := toPoint(domain.ScheduleResultRecord{
		RunID:       "run-1",
		Operation:   domain.OperationSchedule,
		ReminderID:  "r-1",
		Recurrence:  "weekly",
		Priority:    "high",
		Occurrences: 3,
		Accepted:    5,
		Rejected:    1,
		Duration:    1500 * time.Millisecond,
		RecordedAt:  recordedAt,
	})

	if point.Name() != influxMeasurement {
		t.Errorf("measurement: got %q", point.Name())
	}
	if !point.Time().Equal(recordedAt) {
		t.Errorf("time: got %v, want %v", point.Time(), recordedAt)
	}

	tags := make(map[string]string)
	for _, tag := range point.TagList() {
		tags[tag.Key] = tag.Value
	}
	for k, want := range map[string]string{"run_id": "run-1", "operation": "schedule", "recurrence": "weekly", "priority": "high"} {
		if tags[k] != want {
			t.Errorf("tag %s: got %q, want %q", k, tags[k], want)
		}
	}

	fields := make(map[string]any)
	for _, field := range point.FieldList() {
		fields[field.Key] = field.Value
	}
	if fields["accepted"] != int64(5) || fields["rejected"] != int64(1) || fields["duration_millis"] != int64(1500) {
		t.Errorf("unexpected fields: %v", fields)
	}
	if fields["reminder_id"] != "r-1" {
		t.Errorf("reminder_id field: got %v", fields["reminder_id"])
	}
}

func TestToPoint_DefaultsRunIDAndOmitsEmptyTags(t *testing.T) {
	point := toPoint(domain.ScheduleResultRecord{
		Operation:  domain.OperationCancel,
		ReminderID: "r-2",
		Cancelled:  2,
	})

	tags := make(map[string]string)
	for _, tag := range point.TagList() {
		tags[tag.Key] = tag.Value
	}
	if tags["run_id"] != "default" {
		t.Errorf("run_id: got %q, want default", tags["run_id"])
	}
	if _, ok := tags["recurrence"]; ok {
		t.Error("empty recurrence should not be tagged")
	}
}

func TestNewRecorder_FallsBackToNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "disabled", cfg: &Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o"}},
		{name: "missing credentials", cfg: &Config{InfluxDBURL: "http://localhost:8086"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, err := NewRecorder(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := recorder.(*noopRecorder); !ok {
				t.Errorf("expected noop recorder, got %T", recorder)
			}
		})
	}
}
