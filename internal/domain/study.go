package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionMetrics holds the counters accumulated during a study session.
// ConceptsReviewed always equals Mastered + Reviewing.
type SessionMetrics struct {
	TotalConcepts    int
	ConceptsReviewed int
	Mastered         int
	Reviewing        int
	TimeSpentSeconds int
}

// StudySession is the persisted summary of one study session.
type StudySession struct {
	ID              uuid.UUID
	LearnerID       uuid.UUID
	NotebookID      uuid.UUID
	Mode            SessionMode
	Status          SessionStatus
	ConceptsStudied int
	StartTime       time.Time
	EndTime         *time.Time
	Metrics         SessionMetrics
}

// SessionPatch lists the session fields to update. Nil fields are left unchanged.
type SessionPatch struct {
	Status          *SessionStatus
	ConceptsStudied *int
	EndTime         *time.Time
	Metrics         *SessionMetrics
}

// IsEmpty reports whether the patch changes nothing.
func (p SessionPatch) IsEmpty() bool {
	return p.Status == nil && p.ConceptsStudied == nil && p.EndTime == nil && p.Metrics == nil
}

// NotebookStats is a read-only rollup of a learner's progress in one notebook.
type NotebookStats struct {
	TotalConcepts int
	Unseen        int
	Mastered      int
	Learning      int
	New           int
	DueToday      int
	DueThisWeek   int
}
