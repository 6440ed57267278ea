//go:build gcloud

package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

// CloudTasksPlatform schedules each notification as an HTTP task that POSTs
// the payload to the push sender at its trigger time.
type CloudTasksPlatform struct {
	client     *cloudtasks.Client
	queuePath  string
	targetURL  string
	maxRetries int
	channels   *ChannelRegistry
	now        func() time.Time
}

func NewCloudTasksPlatform(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksPlatform, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &CloudTasksPlatform{
		client:     client,
		queuePath:  fmt.Sprintf("projects/%s/locations/%s/queues/%s", cfg.ProjectID, cfg.LocationID, cfg.QueueID),
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
		channels:   NewChannelRegistry(),
		now:        time.Now,
	}, nil
}

func (p *CloudTasksPlatform) SetChannel(ctx context.Context, channel domain.Channel) error {
	return p.channels.Set(channel)
}

func (p *CloudTasksPlatform) Schedule(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error) {
	payload, err := buildPayload(req, p.channels, p.now())
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	// The name is fixed across retries so a retry of a create that landed
	// reports AlreadyExists instead of scheduling twice.
	taskName := fmt.Sprintf("%s/tasks/%s", p.queuePath, uuid.NewString())

	createReq := &taskspb.CreateTaskRequest{
		Parent: p.queuePath,
		Task: &taskspb.Task{
			Name: taskName,
			MessageType: &taskspb.Task_HttpRequest{
				HttpRequest: &taskspb.HttpRequest{
					HttpMethod: taskspb.HttpMethod_POST,
					Url:        p.targetURL,
					Headers: map[string]string{
						"Content-Type": "application/json",
					},
					Body: body,
				},
			},
			ScheduleTime: timestamppb.New(req.TriggerAt),
		},
	}

	attrs := []any{
		slog.String("reminder_id", req.Metadata.ReminderID()),
		slog.Time("trigger_at", req.TriggerAt),
	}

	err = withRetry(ctx, p.maxRetries, "task registration", attrs, func(ctx context.Context) error {
		return p.createTask(ctx, createReq, req.Metadata.ReminderID())
	})
	if err != nil {
		return "", err
	}

	return domain.Handle(taskName), nil
}

func (p *CloudTasksPlatform) createTask(ctx context.Context, req *taskspb.CreateTaskRequest, reminderID string) error {
	slog.DebugContext(ctx, "registering notification to Cloud Tasks",
		slog.String("queue_path", req.Parent),
		slog.String("reminder_id", reminderID),
	)

	createdTask, err := p.client.CreateTask(ctx, req)
	if err != nil {
		switch status.Code(err) {
		case codes.AlreadyExists:
			return nil
		case codes.InvalidArgument, codes.PermissionDenied, codes.FailedPrecondition:
			return permanent(fmt.Errorf("failed to create cloud task: %w", err))
		}
		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("reminder_id", reminderID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.InfoContext(ctx, "notification task registered to Cloud Tasks",
		slog.String("task_name", createdTask.Name),
		slog.String("reminder_id", reminderID),
	)
	return nil
}

// Cancel treats NotFound as success: the task already ran or was deleted.
func (p *CloudTasksPlatform) Cancel(ctx context.Context, handle domain.Handle) error {
	taskPath := handle.String()
	if !strings.Contains(taskPath, "/") {
		taskPath = fmt.Sprintf("%s/tasks/%s", p.queuePath, taskPath)
	}

	attrs := []any{
		slog.String("handle", handle.String()),
	}

	return withRetry(ctx, p.maxRetries, "task deletion", attrs, func(ctx context.Context) error {
		return p.deleteTask(ctx, taskPath)
	})
}

func (p *CloudTasksPlatform) deleteTask(ctx context.Context, taskPath string) error {
	slog.DebugContext(ctx, "deleting task from Cloud Tasks",
		slog.String("task_path", taskPath),
	)

	err := p.client.DeleteTask(ctx, &taskspb.DeleteTaskRequest{Name: taskPath})
	if err != nil {
		if isTaskGone(err) {
			slog.InfoContext(ctx, "task not found in Cloud Tasks (may have been processed)",
				slog.String("task_path", taskPath),
			)
			return nil
		}

		slog.WarnContext(ctx, "failed to delete cloud task",
			slog.String("task_path", taskPath),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to delete cloud task: %w", err)
	}

	slog.InfoContext(ctx, "task deleted from Cloud Tasks",
		slog.String("task_path", taskPath),
	)
	return nil
}

// List reads every pending task in the queue back into a ScheduledItem.
// Tasks whose body is not a notification payload are skipped.
func (p *CloudTasksPlatform) List(ctx context.Context) ([]domain.ScheduledItem, error) {
	it := p.client.ListTasks(ctx, &taskspb.ListTasksRequest{
		Parent:       p.queuePath,
		ResponseView: taskspb.Task_FULL,
	})

	items := make([]domain.ScheduledItem, 0)
	for {
		task, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list cloud tasks: %w", err)
		}

		item, err := taskItem(task)
		if err != nil {
			slog.WarnContext(ctx, "skipping task that is not a notification",
				slog.String("task_name", task.GetName()),
				slog.String("error", err.Error()),
			)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

var errNotHTTPTask = errors.New("task has no http request")

// taskItem decodes the notification payload a task carries. The task's own
// schedule time wins over the trigger recorded in the body.
func taskItem(task *taskspb.Task) (domain.ScheduledItem, error) {
	httpReq := task.GetHttpRequest()
	if httpReq == nil {
		return domain.ScheduledItem{}, errNotHTTPTask
	}

	payload, err := decodePayload(httpReq.GetBody())
	if err != nil {
		return domain.ScheduledItem{}, err
	}

	item := payload.scheduledItem(domain.Handle(task.GetName()))
	if ts := task.GetScheduleTime(); ts != nil {
		item.TriggerAt = ts.AsTime()
	}
	return item, nil
}

// isTaskGone reports a delete of a task that already ran or was deleted.
func isTaskGone(err error) bool {
	return status.Code(err) == codes.NotFound
}

func (p *CloudTasksPlatform) Close() error {
	return p.client.Close()
}
