package expand

import (
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

type boundKind int

const (
	boundUnbounded boundKind = iota
	boundUntil
)

// Bound is the horizon of an expansion. It is either Unbounded or Until an
// end instant; the occurrence cap applies to both.
type Bound struct {
	kind  boundKind
	until time.Time
}

func Unbounded() Bound {
	return Bound{kind: boundUnbounded}
}

func Until(t time.Time) Bound {
	return Bound{kind: boundUntil, until: t}
}

// BoundOf derives the horizon from a reminder's recurrence end date.
func BoundOf(reminder *domain.Reminder) Bound {
	if reminder.RecurrenceEndDate == nil || reminder.RecurrenceEndDate.IsZero() {
		return Unbounded()
	}
	return Until(*reminder.RecurrenceEndDate)
}

// Allows reports whether t lies within the horizon.
func (b Bound) Allows(t time.Time) bool {
	switch b.kind {
	case boundUntil:
		return !t.After(b.until)
	default:
		return true
	}
}

func (b Bound) IsBounded() bool {
	return b.kind == boundUntil
}
