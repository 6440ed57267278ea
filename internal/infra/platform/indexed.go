package platform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

//go:generate mockgen -source=indexed.go -destination=indexed_mock.go -package=platform

// ListlessPlatform is a notification platform that cannot enumerate what it
// holds.
type ListlessPlatform interface {
	Schedule(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error)
	Cancel(ctx context.Context, handle domain.Handle) error
	SetChannel(ctx context.Context, channel domain.Channel) error
}

// HandleIndex remembers the handles issued for each reminder.
type HandleIndex interface {
	Put(ctx context.Context, reminderID string, item domain.ScheduledItem) error
	Remove(ctx context.Context, handle domain.Handle) error
	Items(ctx context.Context) ([]domain.ScheduledItem, error)
}

// IndexedPlatform gives a ListlessPlatform a List backed by a HandleIndex.
type IndexedPlatform struct {
	inner ListlessPlatform
	index HandleIndex
	now   func() time.Time
}

var _ domain.NotificationPlatform = (*IndexedPlatform)(nil)

func NewIndexedPlatform(inner ListlessPlatform, index HandleIndex) *IndexedPlatform {
	return &IndexedPlatform{
		inner: inner,
		index: index,
		now:   time.Now,
	}
}

func (p *IndexedPlatform) SetChannel(ctx context.Context, channel domain.Channel) error {
	return p.inner.SetChannel(ctx, channel)
}

// Schedule withdraws an accepted task when its handle cannot be indexed, as
// an unindexed task could never be cancelled.
func (p *IndexedPlatform) Schedule(ctx context.Context, req *domain.NotificationRequest) (domain.Handle, error) {
	handle, err := p.inner.Schedule(ctx, req)
	if err != nil {
		return "", err
	}

	item := domain.ScheduledItem{
		Handle:    handle,
		Metadata:  req.Metadata.Clone(),
		TriggerAt: req.TriggerAt,
	}
	if err := p.index.Put(ctx, req.Metadata.ReminderID(), item); err != nil {
		slog.WarnContext(ctx, "failed to index handle, withdrawing task",
			slog.String("handle", handle.String()),
			slog.String("reminder_id", req.Metadata.ReminderID()),
			slog.String("error", err.Error()),
		)
		if cancelErr := p.inner.Cancel(ctx, handle); cancelErr != nil {
			slog.ErrorContext(ctx, "failed to withdraw unindexed task",
				slog.String("handle", handle.String()),
				slog.String("error", cancelErr.Error()),
			)
		}
		return "", fmt.Errorf("failed to index handle %s: %w", handle, err)
	}

	return handle, nil
}

func (p *IndexedPlatform) Cancel(ctx context.Context, handle domain.Handle) error {
	if err := p.inner.Cancel(ctx, handle); err != nil {
		return err
	}

	// a stale entry only costs one more idempotent cancel later
	if err := p.index.Remove(ctx, handle); err != nil {
		slog.WarnContext(ctx, "failed to remove handle from index",
			slog.String("handle", handle.String()),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// List returns indexed items that have not fired yet.
func (p *IndexedPlatform) List(ctx context.Context) ([]domain.ScheduledItem, error) {
	items, err := p.index.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read handle index: %w", err)
	}

	now := p.now()
	pending := make([]domain.ScheduledItem, 0, len(items))
	for _, item := range items {
		if item.TriggerAt.After(now) {
			pending = append(pending, item)
		}
	}
	return pending, nil
}
