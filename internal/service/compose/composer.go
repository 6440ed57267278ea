package compose

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

const (
	recurringTitlePrefix = "🔄 "
	warningTitlePrefix   = "Upcoming: "
	defaultDueBody       = "Your reminder is due"
)

type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Compose builds the notification requests for one occurrence: the due
// request, preceded by a warning when the priority has a lead time and the
// warning would still fire after now. A request whose trigger is not after
// now is never returned.
func (c *Composer) Compose(reminder *domain.Reminder, occurrence domain.Occurrence, now time.Time) []domain.NotificationRequest {
	requests := make([]domain.NotificationRequest, 0, 2)

	if !occurrence.FiringAt.After(now) {
		return requests
	}

	channel := SelectChannel(reminder)
	dueTitle := c.dueTitle(reminder)

	if lead := LeadTime(reminder.Priority); lead > 0 {
		warningAt := occurrence.FiringAt.Add(-lead)
		if warningAt.After(now) {
			requests = append(requests, domain.NotificationRequest{
				Title:     warningTitlePrefix + dueTitle,
				Body:      c.warningBody(reminder, lead),
				Metadata:  c.metadata(reminder, occurrence, true),
				TriggerAt: warningAt,
				Channel:   channel,
			})
		}
	}

	requests = append(requests, domain.NotificationRequest{
		Title:     dueTitle,
		Body:      c.dueBody(reminder),
		Metadata:  c.metadata(reminder, occurrence, false),
		TriggerAt: occurrence.FiringAt,
		Channel:   channel,
	})

	return requests
}

// SelectChannel applies the precedence recurring, urgent, default.
func SelectChannel(reminder *domain.Reminder) domain.ChannelID {
	switch {
	case reminder.IsRecurring():
		return domain.ChannelRecurring
	case reminder.Priority == domain.PriorityUrgent:
		return domain.ChannelUrgent
	default:
		return domain.ChannelReminder
	}
}

func (c *Composer) dueTitle(reminder *domain.Reminder) string {
	title := strings.TrimSpace(reminder.Title)
	if reminder.IsRecurring() {
		return recurringTitlePrefix + title
	}
	return title
}

func (c *Composer) dueBody(reminder *domain.Reminder) string {
	if desc := strings.TrimSpace(reminder.Description); desc != "" {
		return desc
	}
	return defaultDueBody
}

func (c *Composer) warningBody(reminder *domain.Reminder, lead time.Duration) string {
	body := fmt.Sprintf("Due in %d minutes", int(lead.Minutes()))
	if desc := strings.TrimSpace(reminder.Description); desc != "" {
		body += "\n" + desc
	}
	return body
}

func (c *Composer) metadata(reminder *domain.Reminder, occurrence domain.Occurrence, isWarning bool) domain.Metadata {
	reminderType := reminder.Type
	if reminderType == "" {
		reminderType = domain.ReminderTypePersonal
	}

	return domain.Metadata{
		domain.MetadataKeyKind:         domain.KindValueReminder,
		domain.MetadataKeyReminderID:   reminder.ID,
		domain.MetadataKeyIsWarning:    strconv.FormatBool(isWarning),
		domain.MetadataKeyPriority:     reminder.Priority.String(),
		domain.MetadataKeyCategory:     reminder.Category,
		domain.MetadataKeyType:         string(reminderType),
		domain.MetadataKeyOccurrenceAt: occurrence.FiringAt.UTC().Format(time.RFC3339),
	}
}
