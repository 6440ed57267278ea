package domain

import "context"

//go:generate mockgen -source=platform.go -destination=platform_mock.go -package=domain

// NotificationPlatform schedules fire-once notifications. It is the system
// of record for what is currently scheduled.
type NotificationPlatform interface {
	Schedule(ctx context.Context, req *NotificationRequest) (Handle, error)
	// Cancel must succeed for handles that already fired or were cancelled.
	Cancel(ctx context.Context, handle Handle) error
	List(ctx context.Context) ([]ScheduledItem, error)
	SetChannel(ctx context.Context, channel Channel) error
}
