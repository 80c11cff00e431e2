package study

import "github.com/heartmarshall/conceptdeck-backend/internal/domain"

// SessionSnapshot is the live view of a session.
type SessionSnapshot struct {
	Session domain.StudySession
	// Current is the concept awaiting an answer; nil once the session is completed.
	Current      *domain.Concept
	Remaining    int
	RetryPending int
	RetryPass    int
}

// AnswerResult describes the effect of one recorded answer.
type AnswerResult struct {
	// Record is the updated learning record; nil if the previous record could not be read.
	Record *domain.LearningRecord
	// Persisted is false when the record write failed; the session moves on regardless.
	Persisted bool
	Requeued  bool
	Snapshot  SessionSnapshot
	// SummaryPersisted is meaningful only when the answer completed the session.
	SummaryPersisted bool
}

// Completed reports whether the answer ended the session.
func (r AnswerResult) Completed() bool {
	return r.Snapshot.Session.Status == domain.SessionStatusCompleted
}
