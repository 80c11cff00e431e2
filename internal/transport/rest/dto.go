package rest

import (
	"time"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
	"github.com/heartmarshall/conceptdeck-backend/internal/service/study"
)

type conceptResponse struct {
	ID         string `json:"id"`
	GroupID    string `json:"groupId"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Source     string `json:"source,omitempty"`
}

type metricsResponse struct {
	TotalConcepts    int `json:"totalConcepts"`
	ConceptsReviewed int `json:"conceptsReviewed"`
	Mastered         int `json:"mastered"`
	Reviewing        int `json:"reviewing"`
	TimeSpentSeconds int `json:"timeSpentSeconds"`
}

type sessionResponse struct {
	ID              string          `json:"id"`
	NotebookID      string          `json:"notebookId"`
	Mode            string          `json:"mode"`
	Status          string          `json:"status"`
	ConceptsStudied int             `json:"conceptsStudied"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         *time.Time      `json:"endTime,omitempty"`
	Metrics         metricsResponse `json:"metrics"`
}

type snapshotResponse struct {
	Session      sessionResponse  `json:"session"`
	Current      *conceptResponse `json:"current"`
	Remaining    int              `json:"remaining"`
	RetryPending int              `json:"retryPending"`
	RetryPass    int              `json:"retryPass"`
}

type recordResponse struct {
	ConceptID      string    `json:"conceptId"`
	EaseFactor     float64   `json:"easeFactor"`
	Interval       int       `json:"interval"`
	Repetitions    int       `json:"repetitions"`
	NextReviewDate time.Time `json:"nextReviewDate"`
	LastReviewDate time.Time `json:"lastReviewDate"`
}

type answerResponse struct {
	Record           *recordResponse  `json:"record"`
	Persisted        bool             `json:"persisted"`
	Requeued         bool             `json:"requeued"`
	Completed        bool             `json:"completed"`
	SummaryPersisted *bool            `json:"summaryPersisted,omitempty"`
	Snapshot         snapshotResponse `json:"snapshot"`
}

type completeResponse struct {
	Snapshot         snapshotResponse `json:"snapshot"`
	SummaryPersisted bool             `json:"summaryPersisted"`
}

type sessionListResponse struct {
	Sessions []sessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

type statsResponse struct {
	TotalConcepts int `json:"totalConcepts"`
	Unseen        int `json:"unseen"`
	Mastered      int `json:"mastered"`
	Learning      int `json:"learning"`
	New           int `json:"new"`
	DueToday      int `json:"dueToday"`
	DueThisWeek   int `json:"dueThisWeek"`
}

type streakResponse struct {
	ConsecutiveDays int             `json:"consecutiveDays"`
	Days            map[string]bool `json:"days"`
	LastVisit       *time.Time      `json:"lastVisit,omitempty"`
}

type groupResponse struct {
	ID         string            `json:"id"`
	NotebookID string            `json:"notebookId"`
	CreatedAt  time.Time         `json:"createdAt"`
	Concepts   []conceptResponse `json:"concepts"`
}

func toConceptResponse(c domain.Concept) conceptResponse {
	return conceptResponse{
		ID:         c.ID,
		GroupID:    c.GroupID.String(),
		Term:       c.Term,
		Definition: c.Definition,
		Source:     c.Source,
	}
}

func toSessionResponse(s domain.StudySession) sessionResponse {
	return sessionResponse{
		ID:              s.ID.String(),
		NotebookID:      s.NotebookID.String(),
		Mode:            string(s.Mode),
		Status:          string(s.Status),
		ConceptsStudied: s.ConceptsStudied,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Metrics: metricsResponse{
			TotalConcepts:    s.Metrics.TotalConcepts,
			ConceptsReviewed: s.Metrics.ConceptsReviewed,
			Mastered:         s.Metrics.Mastered,
			Reviewing:        s.Metrics.Reviewing,
			TimeSpentSeconds: s.Metrics.TimeSpentSeconds,
		},
	}
}

func toSnapshotResponse(s study.SessionSnapshot) snapshotResponse {
	resp := snapshotResponse{
		Session:      toSessionResponse(s.Session),
		Remaining:    s.Remaining,
		RetryPending: s.RetryPending,
		RetryPass:    s.RetryPass,
	}
	if s.Current != nil {
		c := toConceptResponse(*s.Current)
		resp.Current = &c
	}
	return resp
}

func toAnswerResponse(r study.AnswerResult) answerResponse {
	resp := answerResponse{
		Persisted: r.Persisted,
		Requeued:  r.Requeued,
		Completed: r.Completed(),
		Snapshot:  toSnapshotResponse(r.Snapshot),
	}
	if r.Record != nil {
		resp.Record = &recordResponse{
			ConceptID:      r.Record.ConceptID,
			EaseFactor:     r.Record.EaseFactor,
			Interval:       r.Record.Interval,
			Repetitions:    r.Record.Repetitions,
			NextReviewDate: r.Record.NextReviewDate,
			LastReviewDate: r.Record.LastReviewDate,
		}
	}
	if resp.Completed {
		persisted := r.SummaryPersisted
		resp.SummaryPersisted = &persisted
	}
	return resp
}

func toStreakResponse(s domain.StreakRecord) streakResponse {
	days := make(map[string]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d.String()] = s.Days[d]
	}
	resp := streakResponse{ConsecutiveDays: s.ConsecutiveDays, Days: days}
	if !s.LastVisit.IsZero() {
		lv := s.LastVisit
		resp.LastVisit = &lv
	}
	return resp
}

func toGroupResponse(g domain.ConceptGroup) groupResponse {
	concepts := make([]conceptResponse, 0, len(g.Concepts))
	for _, c := range g.Flatten() {
		concepts = append(concepts, toConceptResponse(c))
	}
	return groupResponse{
		ID:         g.ID.String(),
		NotebookID: g.NotebookID.String(),
		CreatedAt:  g.CreatedAt,
		Concepts:   concepts,
	}
}
