package domain

type ChannelID string

const (
	ChannelReminder  ChannelID = "reminder"
	ChannelUrgent    ChannelID = "urgent"
	ChannelRecurring ChannelID = "recurring"
)

func (c ChannelID) String() string {
	return string(c)
}

type Importance string

const (
	ImportanceDefault Importance = "default"
	ImportanceHigh    Importance = "high"
	ImportanceMax     Importance = "max"
)

// Channel controls how the device presents notifications posted to it.
type Channel struct {
	ID         ChannelID
	Name       string
	Importance Importance
	Vibration  []int64 // pattern in milliseconds
	Color      string  // hex color code e.g. "#EF4444"
}

// ReminderChannels returns the channels reminder notifications are posted
// to.
func ReminderChannels() []Channel {
	return []Channel{
		{
			ID:         ChannelReminder,
			Name:       "Reminders",
			Importance: ImportanceDefault,
			Vibration:  []int64{0, 250, 250, 250},
			Color:      "#3B82F6",
		},
		{
			ID:         ChannelUrgent,
			Name:       "Urgent reminders",
			Importance: ImportanceMax,
			Vibration:  []int64{0, 500, 200, 500, 200, 500},
			Color:      "#EF4444",
		},
		{
			ID:         ChannelRecurring,
			Name:       "Recurring reminders",
			Importance: ImportanceHigh,
			Vibration:  []int64{0, 250, 250, 250},
			Color:      "#8B5CF6",
		},
	}
}
