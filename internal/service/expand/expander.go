package expand

import (
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/recurrence"
)

// MaxOccurrences caps every expansion, whatever the rule or end date.
const MaxOccurrences = 30

type Expander struct {
	maxOccurrences int
}

func NewExpander() *Expander {
	return &Expander{
		maxOccurrences: MaxOccurrences,
	}
}

// Expand returns the future occurrences of reminder, strictly after now and
// strictly increasing.
func (e *Expander) Expand(reminder *domain.Reminder, now time.Time) []domain.Occurrence {
	if !reminder.IsRecurring() {
		if reminder.DueDate.After(now) {
			return []domain.Occurrence{domain.NewOccurrence(reminder.ID, reminder.DueDate)}
		}
		return []domain.Occurrence{}
	}

	bound := BoundOf(reminder)
	occurrences := make([]domain.Occurrence, 0, e.maxOccurrences)

	notBefore := now
	for len(occurrences) < e.maxOccurrences {
		next, ok := recurrence.NextOccurrence(reminder.DueDate, reminder.Recurrence, notBefore)
		if !ok {
			break
		}
		if bound.IsBounded() && !bound.Allows(next) {
			break
		}

		occurrences = append(occurrences, domain.NewOccurrence(reminder.ID, next))
		notBefore = next
	}

	return occurrences
}
