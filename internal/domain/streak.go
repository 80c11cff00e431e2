package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreakRecord tracks a learner's daily activity.
// Days is the visual marker for the current ISO week.
type StreakRecord struct {
	LearnerID       uuid.UUID
	Days            map[time.Weekday]bool
	ConsecutiveDays int
	LastVisit       time.Time
}

// EmptyWeek returns a week marker with every weekday unset.
func EmptyWeek() map[time.Weekday]bool {
	days := make(map[time.Weekday]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = false
	}
	return days
}
