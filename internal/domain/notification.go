package domain

import (
	"strconv"
	"time"
)

// Metadata keys carried by every reminder notification.
const (
	MetadataKeyKind         = "kind"
	MetadataKeyReminderID   = "reminderId"
	MetadataKeyIsWarning    = "isWarning"
	MetadataKeyPriority     = "priority"
	MetadataKeyCategory     = "category"
	MetadataKeyType         = "type"
	MetadataKeyOccurrenceAt = "occurrenceAt"
	MetadataKeyAction       = "action"
)

// Values of MetadataKeyKind.
const (
	KindValueReminder       = "reminder"
	KindValueLoveMessage    = "love-message"
	KindValueCoupleActivity = "couple-activity"
)

// Metadata is the flat key/value payload attached to a notification. It is
// the only state available to identify the originating reminder later.
type Metadata map[string]string

func (m Metadata) Get(key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}

func (m Metadata) Kind() string {
	return m.Get(MetadataKeyKind)
}

func (m Metadata) ReminderID() string {
	return m.Get(MetadataKeyReminderID)
}

// IsWarning reports false for a missing or malformed flag.
func (m Metadata) IsWarning() bool {
	v, err := strconv.ParseBool(m.Get(MetadataKeyIsWarning))
	if err != nil {
		return false
	}
	return v
}

func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type NotificationRequest struct {
	Title     string
	Body      string
	Metadata  Metadata
	TriggerAt time.Time
	Channel   ChannelID
}

func (r *NotificationRequest) IsWarning() bool {
	return r.Metadata.IsWarning()
}

// Handle is the opaque identifier the platform returns for an accepted
// request.
type Handle string

func (h Handle) String() string {
	return string(h)
}

// ScheduledItem is a notification currently held by the platform.
type ScheduledItem struct {
	Handle    Handle
	Metadata  Metadata
	TriggerAt time.Time
}
