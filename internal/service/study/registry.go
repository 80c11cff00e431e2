package study

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/conceptdeck-backend/internal/domain"
)

// activeSession is the in-memory state of a session between start and completion.
// All fields are guarded by mu.
type activeSession struct {
	mu sync.Mutex

	session      domain.StudySession
	primary      *conceptQueue
	retry        *conceptQueue
	retryPasses  int
	studied      map[string]struct{}
	lastActivity time.Time
	completed    bool
}

func newActiveSession(session domain.StudySession, queue []domain.Concept) *activeSession {
	return &activeSession{
		session:      session,
		primary:      newConceptQueue(queue),
		retry:        newConceptQueue(nil),
		studied:      make(map[string]struct{}, len(queue)),
		lastActivity: session.StartTime,
	}
}

// advance promotes the retry queue once the primary queue is exhausted.
// It reports whether any concept is left to answer.
func (a *activeSession) advance(maxPasses int) bool {
	if a.primary.Len() > 0 {
		return true
	}
	if a.retry.Len() == 0 {
		return false
	}
	if maxPasses > 0 && a.retryPasses >= maxPasses {
		a.retry.Drain()
		return false
	}
	a.primary = newConceptQueue(a.retry.Drain())
	a.retryPasses++
	return true
}

type registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*activeSession
}

func newRegistry() *registry {
	return &registry{sessions: make(map[uuid.UUID]*activeSession)}
}

func (r *registry) get(id uuid.UUID) (*activeSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.sessions[id]
	return a, ok
}

func (r *registry) put(a *activeSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[a.session.ID] = a
}

func (r *registry) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// all returns a snapshot of the registered sessions.
func (r *registry) all() []*activeSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*activeSession, 0, len(r.sessions))
	for _, a := range r.sessions {
		out = append(out, a)
	}
	return out
}
