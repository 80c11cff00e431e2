package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningRecord is the spaced-repetition state of one concept for one learner.
// It is created lazily on the first answer and never exists for unseen concepts.
type LearningRecord struct {
	LearnerID      uuid.UUID
	ConceptID      string
	EaseFactor     float64
	Interval       int
	Repetitions    int
	NextReviewDate time.Time
	LastReviewDate time.Time
}

// IsDue returns true when the record's next review is at or before now.
func (r *LearningRecord) IsDue(now time.Time) bool {
	return !r.NextReviewDate.After(now)
}

// Bucket classifies the record:
//   - MASTERED: at least 3 consecutive recalls and ease above 2.0
//   - LEARNING: at least one consecutive recall
//   - NEW: unseen or just failed
func (r *LearningRecord) Bucket() MasteryBucket {
	switch {
	case r.Repetitions >= 3 && r.EaseFactor > 2.0:
		return MasteryBucketMastered
	case r.Repetitions > 0:
		return MasteryBucketLearning
	default:
		return MasteryBucketNew
	}
}
