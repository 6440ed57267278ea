//go:build !gcloud

package platform

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

const defaultQueueName = "default"

// PrimindPlatform schedules notifications on the primind tasks emulator.
// The emulator cannot list tasks, so it is wrapped in an IndexedPlatform.
type PrimindPlatform struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
	channels   *ChannelRegistry
	now        func() time.Time
}

func NewPrimindPlatform(baseURL, queueName string, maxRetries int) *PrimindPlatform {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if queueName == "" {
		queueName = defaultQueueName
	}
	return &PrimindPlatform{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxRetries: maxRetries,
		channels:   NewChannelRegistry(),
		now:        time.Now,
	}
}

func (p *PrimindPlatform) SetChannel(ctx context.Context, channel domain.Channel) error {
	return p.channels.Set(channel)
}

func (p *PrimindPlatform) Schedule(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error) {
	payload, err := buildPayload(req, p.channels, p.now())
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	primindReq := PrimindTaskRequest{
		Task: PrimindTask{
			HTTPRequest: PrimindHTTPRequest{
				Body: base64.StdEncoding.EncodeToString(body),
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
			},
			ScheduleTime: req.TriggerAt.UTC().Format(time.RFC3339),
		},
	}

	reqBody, err := json.Marshal(primindReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal primind request: %w", err)
	}

	url := fmt.Sprintf("%s/tasks", p.baseURL)
	if p.queueName != defaultQueueName {
		url = fmt.Sprintf("%s/tasks/%s", p.baseURL, p.queueName)
	}

	attrs := []any{
		slog.String("reminder_id", req.Metadata.ReminderID()),
		slog.Time("trigger_at", req.TriggerAt),
	}

	var handle domain.Handle
	err = withRetry(ctx, p.maxRetries, "task registration", attrs, func(ctx context.Context) error {
		resp, err := p.create(ctx, url, reqBody, req.Metadata.ReminderID())
		if err != nil {
			return err
		}
		handle = domain.Handle(resp.Name)
		return nil
	})
	if err != nil {
		return "", err
	}

	return handle, nil
}

// Cancel treats an unknown task as already gone.
func (p *PrimindPlatform) Cancel(ctx context.Context, handle domain.Handle) error {
	url := fmt.Sprintf("%s/tasks/%s/%s", p.baseURL, p.queueName, path.Base(handle.String()))

	attrs := []any{
		slog.String("handle", handle.String()),
	}

	return withRetry(ctx, p.maxRetries, "task deletion", attrs, func(ctx context.Context) error {
		return p.delete(ctx, url, handle)
	})
}

func (p *PrimindPlatform) create(ctx context.Context, url string, reqBody []byte, reminderID string) (*PrimindTaskResponse, error) {
	slog.DebugContext(ctx, "registering notification to Primind Tasks",
		slog.String("url", url),
		slog.String("reminder_id", reminderID),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, permanent(fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		slog.WarnContext(ctx, "failed to send request to Primind Tasks",
			slog.String("reminder_id", reminderID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.WarnContext(ctx, "unexpected status code from Primind Tasks",
			slog.String("reminder_id", reminderID),
			slog.Int("status_code", resp.StatusCode),
		)
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, permanent(err)
		}
		return nil, err
	}

	var primindResp PrimindTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&primindResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.InfoContext(ctx, "notification task registered to Primind Tasks",
		slog.String("task_name", primindResp.Name),
		slog.String("reminder_id", reminderID),
	)

	return &primindResp, nil
}

func (p *PrimindPlatform) delete(ctx context.Context, url string, handle domain.Handle) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return permanent(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		slog.WarnContext(ctx, "failed to send delete to Primind Tasks",
			slog.String("handle", handle.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		slog.InfoContext(ctx, "task not found in Primind Tasks (may have been processed)",
			slog.String("handle", handle.String()),
		)
		return nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		slog.InfoContext(ctx, "task deleted from Primind Tasks",
			slog.String("handle", handle.String()),
		)
		return nil
	default:
		slog.WarnContext(ctx, "unexpected status code from Primind Tasks",
			slog.String("handle", handle.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}
