package compose

import (
	"time"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

var leadTimes = map[domain.Priority]time.Duration{
	domain.PriorityUrgent: 60 * time.Minute,
	domain.PriorityHigh:   30 * time.Minute,
	domain.PriorityMedium: 15 * time.Minute,
	domain.PriorityLow:    0,
}

// LeadTime returns how long before the due instant a warning fires. Zero
// means no warning.
func LeadTime(priority domain.Priority) time.Duration {
	return leadTimes[priority]
}
