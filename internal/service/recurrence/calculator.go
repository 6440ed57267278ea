package recurrence

import (
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

const (
	daysPerWeek   = 7
	monthsPerYear = 12
	secondsPerDay = 24 * 60 * 60
)

// NextOccurrence returns the earliest occurrence of rule, anchored at
// anchor, that is strictly after notBefore. ok is false when the rule
// produces no further occurrences.
//
// Calendar arithmetic happens in the anchor's location, so a daily
// reminder at 09:00 stays at 09:00 across DST changes. Monthly and yearly
// candidates are always derived from the anchor itself, clamping the day
// of month to the last day of shorter months.
func NextOccurrence(anchor time.Time, rule domain.RecurrenceRule, notBefore time.Time) (time.Time, bool) {
	switch rule {
	case domain.RecurrenceDaily:
		return nextByDays(anchor, 1, notBefore), true
	case domain.RecurrenceWeekly:
		return nextByDays(anchor, daysPerWeek, notBefore), true
	case domain.RecurrenceMonthly:
		return nextByMonths(anchor, 1, notBefore), true
	case domain.RecurrenceYearly:
		return nextByMonths(anchor, monthsPerYear, notBefore), true
	default:
		return time.Time{}, false
	}
}

func nextByDays(anchor time.Time, step int, notBefore time.Time) time.Time {
	if anchor.After(notBefore) {
		return anchor
	}

	at := func(k int) time.Time {
		return anchor.AddDate(0, 0, k*step)
	}

	elapsed := civilDay(notBefore.In(anchor.Location())) - civilDay(anchor)
	k := int(elapsed / int64(step))

	return settle(k, at, notBefore)
}

func nextByMonths(anchor time.Time, step int, notBefore time.Time) time.Time {
	if anchor.After(notBefore) {
		return anchor
	}

	at := func(k int) time.Time {
		return AddMonthsClamped(anchor, k*step)
	}

	nb := notBefore.In(anchor.Location())
	elapsed := (nb.Year()-anchor.Year())*monthsPerYear + int(nb.Month()) - int(anchor.Month())
	k := elapsed / step

	return settle(k, at, notBefore)
}

// settle moves the estimate k to the smallest non-negative index whose
// candidate is strictly after notBefore. The estimate is off by at most a
// step or two (DST, day-of-month, time of day), so both loops are short.
func settle(k int, at func(int) time.Time, notBefore time.Time) time.Time {
	if k < 0 {
		k = 0
	}
	for k > 0 && at(k-1).After(notBefore) {
		k--
	}
	candidate := at(k)
	for !candidate.After(notBefore) {
		k++
		candidate = at(k)
	}
	return candidate
}

// AddMonthsClamped adds n calendar months to t, keeping the wall clock and
// clamping the day of month to the last valid day of the target month.
func AddMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hour, minute, sec := t.Clock()
	loc := t.Location()

	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, loc)
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, hour, minute, sec, t.Nanosecond(), loc)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}
