package streak

import (
	"time"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

// Advance returns the streak after a visit at now. A nil prev is a first visit.
//
// Consecutive days grow by one when the previous visit was on the previous UTC
// calendar day, stay put on the same day and restart at one otherwise, clock
// skew included. The weekday markers are reset whenever the ISO week changes.
// LastVisit holds the UTC start of the visit day.
func Advance(prev *domain.StreakRecord, now time.Time) domain.StreakRecord {
	now = now.UTC()

	next := domain.StreakRecord{
		Days:            domain.EmptyWeek(),
		ConsecutiveDays: 1,
		LastVisit:       midnight(now),
	}

	if prev != nil {
		next.LearnerID = prev.LearnerID
		last := prev.LastVisit.UTC()

		switch daysBetween(last, now) {
		case 0:
			next.ConsecutiveDays = max(prev.ConsecutiveDays, 1)
		case 1:
			next.ConsecutiveDays = prev.ConsecutiveDays + 1
		}

		if sameISOWeek(last, now) {
			for d, seen := range prev.Days {
				next.Days[d] = seen
			}
		}
	}

	next.Days[now.Weekday()] = true
	return next
}

// daysBetween counts UTC calendar days from a to b; negative when b is earlier.
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)) / (24 * time.Hour))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}
