package platform

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

// NotificationPayload is the JSON body each task POSTs to the push sender
// at its trigger time.
type NotificationPayload struct {
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Metadata  map[string]string `json:"metadata"`
	TriggerAt time.Time         `json:"trigger_at"`
	Channel   ChannelPayload    `json:"channel"`
}

type ChannelPayload struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Importance string  `json:"importance"`
	Vibration  []int64 `json:"vibration,omitempty"`
	Color      string  `json:"color"` // hex color code e.g. "#EF4444"
}

// buildPayload rejects requests for unregistered channels and triggers that
// are not after now.
func buildPayload(req *domain.NotificationRequest, channels *ChannelRegistry, now time.Time) (*NotificationPayload, error) {
	if !req.TriggerAt.After(now) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTrigger, req.TriggerAt.Format(time.RFC3339))
	}

	channel, err := channels.Get(req.Channel)
	if err != nil {
		return nil, err
	}

	return &NotificationPayload{
		Title:     req.Title,
		Body:      req.Body,
		Metadata:  req.Metadata.Clone(),
		TriggerAt: req.TriggerAt.UTC(),
		Channel: ChannelPayload{
			ID:         channel.ID.String(),
			Name:       channel.Name,
			Importance: string(channel.Importance),
			Vibration:  channel.Vibration,
			Color:      channel.Color,
		},
	}, nil
}

func decodePayload(data []byte) (*NotificationPayload, error) {
	var payload NotificationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode notification payload: %w", err)
	}
	return &payload, nil
}

func (p *NotificationPayload) scheduledItem(handle domain.Handle) domain.ScheduledItem {
	return domain.ScheduledItem{
		Handle:    handle,
		Metadata:  domain.Metadata(p.Metadata),
		TriggerAt: p.TriggerAt,
	}
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
