package expand

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

func ptr(t time.Time) *time.Time {
	return &t
}

func TestExpander_Expand(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	expander := NewExpander()

	tests := []struct {
		name      string
		reminder  domain.Reminder
		now       time.Time
		wantCount int
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name: "one-time reminder in the future",
			reminder: domain.Reminder{
				ID: "r-1", Title: "t", DueDate: now.Add(2 * time.Hour), Recurrence: domain.RecurrenceNone,
			},
			now:       now,
			wantCount: 1,
			wantFirst: now.Add(2 * time.Hour),
			wantLast:  now.Add(2 * time.Hour),
		},
		{
			name: "one-time reminder in the past",
			reminder: domain.Reminder{
				ID: "r-1", Title: "t", DueDate: now.Add(-time.Minute), Recurrence: domain.RecurrenceNone,
			},
			now:       now,
			wantCount: 0,
		},
		{
			name: "one-time reminder due exactly now",
			reminder: domain.Reminder{
				ID: "r-1", Title: "t", DueDate: now, Recurrence: domain.RecurrenceNone,
			},
			now:       now,
			wantCount: 0,
		},
		{
			name: "daily without end date is capped",
			reminder: domain.Reminder{
				ID: "r-1", Title: "t", DueDate: time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC), Recurrence: domain.RecurrenceDaily,
			},
			now:       time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			wantCount: MaxOccurrences,
			wantFirst: time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2000, 1, 30, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly truncated by end date between 3rd and 4th occurrence",
			reminder: domain.Reminder{
				ID:                "r-1",
				Title:             "t",
				DueDate:           time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
				Recurrence:        domain.RecurrenceWeekly,
				RecurrenceEndDate: ptr(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)),
			},
			now:       now,
			wantCount: 3,
			wantFirst: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 6, 17, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "end date equal to an occurrence includes it",
			reminder: domain.Reminder{
				ID:                "r-1",
				Title:             "t",
				DueDate:           time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
				Recurrence:        domain.RecurrenceWeekly,
				RecurrenceEndDate: ptr(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)),
			},
			now:       now,
			wantCount: 2,
			wantFirst: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "end date already passed",
			reminder: domain.Reminder{
				ID:                "r-1",
				Title:             "t",
				DueDate:           time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
				Recurrence:        domain.RecurrenceDaily,
				RecurrenceEndDate: ptr(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
			},
			now:       now,
			wantCount: 0,
		},
		{
			name: "past anchor starts from the first future occurrence",
			reminder: domain.Reminder{
				ID:         "r-1",
				Title:      "t",
				DueDate:    now.Add(-5 * time.Minute),
				Recurrence: domain.RecurrenceDaily,
			},
			now:       now,
			wantCount: MaxOccurrences,
			wantFirst: now.Add(-5*time.Minute).AddDate(0, 0, 1),
			wantLast:  now.Add(-5*time.Minute).AddDate(0, 0, MaxOccurrences),
		},
		{
			name: "monthly from the 31st",
			reminder: domain.Reminder{
				ID:                "r-1",
				Title:             "t",
				DueDate:           time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
				Recurrence:        domain.RecurrenceMonthly,
				RecurrenceEndDate: ptr(time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC)),
			},
			now:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantCount: 4,
			wantFirst: time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expander.Expand(&tt.reminder, tt.now)

			if len(got) != tt.wantCount {
				t.Fatalf("count: got %d, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if !got[0].FiringAt.Equal(tt.wantFirst) {
				t.Errorf("first: got %v, want %v", got[0].FiringAt, tt.wantFirst)
			}
			if !got[len(got)-1].FiringAt.Equal(tt.wantLast) {
				t.Errorf("last: got %v, want %v", got[len(got)-1].FiringAt, tt.wantLast)
			}

			for i, occ := range got {
				if occ.ReminderID != tt.reminder.ID {
					t.Errorf("occurrence[%d]: reminder id %q, want %q", i, occ.ReminderID, tt.reminder.ID)
				}
				if !occ.FiringAt.After(tt.now) {
					t.Errorf("occurrence[%d]: %v is not after now %v", i, occ.FiringAt, tt.now)
				}
				if i > 0 && !occ.FiringAt.After(got[i-1].FiringAt) {
					t.Errorf("occurrence[%d]: %v is not after previous %v", i, occ.FiringAt, got[i-1].FiringAt)
				}
				if end := tt.reminder.RecurrenceEndDate; end != nil && occ.FiringAt.After(*end) {
					t.Errorf("occurrence[%d]: %v is after end date %v", i, occ.FiringAt, *end)
				}
			}
		})
	}
}

func TestBound(t *testing.T) {
	end := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		bound Bound
		at    time.Time
		want  bool
	}{
		{"unbounded allows anything", Unbounded(), end.AddDate(100, 0, 0), true},
		{"until allows before", Until(end), end.Add(-time.Second), true},
		{"until allows equal", Until(end), end, true},
		{"until rejects after", Until(end), end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bound.Allows(tt.at); got != tt.want {
				t.Errorf("Allows: got %v, want %v", got, tt.want)
			}
		})
	}

	if BoundOf(&domain.Reminder{}).IsBounded() {
		t.Error("reminder without end date should be unbounded")
	}
	if !BoundOf(&domain.Reminder{RecurrenceEndDate: &end}).IsBounded() {
		t.Error("reminder with end date should be bounded")
	}
}
