package reminderstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/tracing"
)

// Client reads reminders from the reminder store and writes their
// completion state back.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ domain.ReminderSource = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: newHTTPClient(baseURL),
	}
}

func (c *Client) Get(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	u, err := c.reminderURL(reminderID, "")
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.StartExternalAPISpan(ctx, "get_reminder", u)
	defer span.End()

	slog.DebugContext(ctx, "fetching reminder from reminder store",
		slog.String("url", u),
	)

	resp, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		slog.DebugContext(ctx, "reminder not found in reminder store",
			slog.String("reminder_id", reminderID),
		)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		slog.ErrorContext(ctx, "unexpected status code from reminder store",
			slog.String("url", u),
			slog.Int("status_code", resp.StatusCode),
		)
		tracing.RecordError(span, err)
		return nil, err
	}

	var body ReminderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.ErrorContext(ctx, "failed to decode response from reminder store",
			slog.String("error", err.Error()),
		)
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	tracing.RecordError(span, nil)
	return body.ToDomain(), nil
}

func (c *Client) MarkCompleted(ctx context.Context, reminderID, completedBy string, completedAt time.Time) error {
	payload, err := json.Marshal(CompletionRequest{
		CompletedBy: completedBy,
		CompletedAt: completedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	return c.writeCompletion(ctx, http.MethodPost, "mark_completed", reminderID, payload)
}

func (c *Client) MarkIncomplete(ctx context.Context, reminderID string) error {
	return c.writeCompletion(ctx, http.MethodDelete, "mark_incomplete", reminderID, nil)
}

func (c *Client) writeCompletion(ctx context.Context, method, operation, reminderID string, payload []byte) error {
	u, err := c.reminderURL(reminderID, "/completion")
	if err != nil {
		return err
	}

	ctx, span := tracing.StartExternalAPISpan(ctx, operation, u)
	defer span.End()

	slog.DebugContext(ctx, "updating reminder completion",
		slog.String("reminder_id", reminderID),
		slog.String("method", method),
	)

	resp, err := c.do(ctx, method, u, payload)
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		tracing.RecordError(span, nil)
		return nil
	case http.StatusNotFound:
		tracing.RecordError(span, domain.ErrReminderNotFound)
		return fmt.Errorf("%w: %s", domain.ErrReminderNotFound, reminderID)
	default:
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		slog.ErrorContext(ctx, "unexpected status code when updating reminder completion",
			slog.String("reminder_id", reminderID),
			slog.Int("status_code", resp.StatusCode),
		)
		tracing.RecordError(span, err)
		return err
	}
}

func (c *Client) reminderURL(reminderID, suffix string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/api/v1/reminders/" + url.PathEscape(reminderID) + suffix
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, u string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set(logging.RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to reminder store",
			slog.String("method", method),
			slog.String("url", u),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}
