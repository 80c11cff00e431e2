package domain

// Quality is the learner's self-assessed recall quality for one answer,
// ordered worst (0) to best (5).
type Quality int

const (
	QualityCompletelyForgotten Quality = 0
	QualityAlmostForgotten     Quality = 1
	QualityDifficult           Quality = 2
	QualityNotSmooth           Quality = 3
	QualityGood                Quality = 4
	QualityPerfect             Quality = 5
)

var qualityNames = [...]string{
	"COMPLETELY_FORGOTTEN",
	"ALMOST_FORGOTTEN",
	"DIFFICULT",
	"NOT_SMOOTH",
	"GOOD",
	"PERFECT",
}

func (q Quality) String() string {
	if !q.IsValid() {
		return "UNKNOWN"
	}
	return qualityNames[q]
}

func (q Quality) IsValid() bool {
	return q >= QualityCompletelyForgotten && q <= QualityPerfect
}

// IsPass reports whether the answer counts as a successful recall.
func (q Quality) IsPass() bool {
	return q >= QualityNotSmooth
}

// SessionMode selects which concepts a study session draws from.
type SessionMode string

const (
	SessionModeStudy  SessionMode = "STUDY"
	SessionModeReview SessionMode = "REVIEW"
	SessionModeQuiz   SessionMode = "QUIZ"
)

func (m SessionMode) String() string { return string(m) }

func (m SessionMode) IsValid() bool {
	switch m {
	case SessionModeStudy, SessionModeReview, SessionModeQuiz:
		return true
	}
	return false
}

// SessionStatus represents the state of a study session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusCompleted:
		return true
	}
	return false
}

// MasteryBucket classifies a learning record for stats rollups.
type MasteryBucket string

const (
	MasteryBucketNew      MasteryBucket = "NEW"
	MasteryBucketLearning MasteryBucket = "LEARNING"
	MasteryBucketMastered MasteryBucket = "MASTERED"
)

func (b MasteryBucket) String() string { return string(b) }
