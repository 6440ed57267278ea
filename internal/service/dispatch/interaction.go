package dispatch

import (
	"strings"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

// Metadata keys used by the non-reminder notification kinds.
const (
	MetadataKeyMessageID    = "messageId"
	MetadataKeySenderID     = "senderId"
	MetadataKeyCoupleID     = "coupleId"
	MetadataKeyActivityID   = "activityId"
	MetadataKeyActivityType = "activityType"
)

const (
	ActionOpen     = "open"
	ActionComplete = "complete"
)

type ReminderInteraction struct {
	ReminderID string
	IsWarning  bool
	Priority   domain.Priority
	Category   string
	Action     string
}

type MessageInteraction struct {
	MessageID string
	SenderID  string
	CoupleID  string
}

type ActivityInteraction struct {
	ActivityID   string
	ActivityType string
	CoupleID     string
}

func reminderInteraction(metadata domain.Metadata) ReminderInteraction {
	action := strings.TrimSpace(metadata.Get(domain.MetadataKeyAction))
	if action == "" {
		action = ActionOpen
	}

	return ReminderInteraction{
		ReminderID: metadata.ReminderID(),
		IsWarning:  metadata.IsWarning(),
		Priority:   domain.ParsePriority(metadata.Get(domain.MetadataKeyPriority)),
		Category:   metadata.Get(domain.MetadataKeyCategory),
		Action:     action,
	}
}

func messageInteraction(metadata domain.Metadata) MessageInteraction {
	return MessageInteraction{
		MessageID: metadata.Get(MetadataKeyMessageID),
		SenderID:  metadata.Get(MetadataKeySenderID),
		CoupleID:  metadata.Get(MetadataKeyCoupleID),
	}
}

func activityInteraction(metadata domain.Metadata) ActivityInteraction {
	return ActivityInteraction{
		ActivityID:   metadata.Get(MetadataKeyActivityID),
		ActivityType: metadata.Get(MetadataKeyActivityType),
		CoupleID:     metadata.Get(MetadataKeyCoupleID),
	}
}
