//go:build gcloud

package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

const testTaskName = "projects/p/locations/l/queues/q/tasks/t-1"

func httpTask(t *testing.T, body []byte, scheduleTime *timestamppb.Timestamp) *taskspb.Task {
	t.Helper()

	return &taskspb.Task{
		Name: testTaskName,
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Body:       body,
			},
		},
		ScheduleTime: scheduleTime,
	}
}

func payloadBody(t *testing.T, triggerAt time.Time) []byte {
	t.Helper()

	body, err := json.Marshal(NotificationPayload{
		Title: "Water plants",
		Metadata: map[string]string{
			domain.MetadataKeyKind:       domain.KindValueReminder,
			domain.MetadataKeyReminderID: "r-1",
			domain.MetadataKeyIsWarning:  "true",
		},
		TriggerAt: triggerAt,
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return body
}

func TestTaskItem(t *testing.T) {
	bodyTrigger := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	taskTrigger := time.Date(2030, 1, 1, 9, 5, 0, 0, time.UTC)

	tests := []struct {
		name        string
		task        *taskspb.Task
		wantErr     bool
		wantTrigger time.Time
	}{
		{
			name:        "schedule time wins",
			task:        httpTask(t, payloadBody(t, bodyTrigger), timestamppb.New(taskTrigger)),
			wantTrigger: taskTrigger,
		},
		{
			name:        "falls back to body trigger",
			task:        httpTask(t, payloadBody(t, bodyTrigger), nil),
			wantTrigger: bodyTrigger,
		},
		{
			name:    "undecodable body",
			task:    httpTask(t, []byte("not json"), nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := taskItem(tt.task)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if item.Handle != domain.Handle(testTaskName) {
				t.Errorf("handle: got %q", item.Handle)
			}
			if item.Metadata.ReminderID() != "r-1" {
				t.Errorf("reminder id: got %q", item.Metadata.ReminderID())
			}
			if !item.Metadata.IsWarning() {
				t.Error("warning flag lost")
			}
			if !item.TriggerAt.Equal(tt.wantTrigger) {
				t.Errorf("trigger: got %v, want %v", item.TriggerAt, tt.wantTrigger)
			}
		})
	}
}

func TestTaskItem_NoHTTPRequest(t *testing.T) {
	_, err := taskItem(&taskspb.Task{Name: testTaskName})
	if !errors.Is(err, errNotHTTPTask) {
		t.Errorf("got %v, want errNotHTTPTask", err)
	}
}

func TestIsTaskGone(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "not found", err: status.Error(codes.NotFound, "gone"), want: true},
		{name: "wrapped not found", err: fmt.Errorf("delete: %w", status.Error(codes.NotFound, "gone")), want: true},
		{name: "unavailable", err: status.Error(codes.Unavailable, "down"), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTaskGone(tt.err); got != tt.want {
				t.Errorf("isTaskGone() = %v, want %v", got, tt.want)
			}
		})
	}
}
