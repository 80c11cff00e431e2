package study

import "github.com/heartmarshall/conceptdeck-backend/internal/domain"

// conceptQueue is a FIFO of concepts: pop from the front, push to the back.
type conceptQueue struct {
	items []domain.Concept
}

func newConceptQueue(items []domain.Concept) *conceptQueue {
	q := &conceptQueue{items: make([]domain.Concept, 0, len(items))}
	q.items = append(q.items, items...)
	return q
}

func (q *conceptQueue) Len() int { return len(q.items) }

func (q *conceptQueue) Peek() (domain.Concept, bool) {
	if len(q.items) == 0 {
		return domain.Concept{}, false
	}
	return q.items[0], true
}

func (q *conceptQueue) PopFront() (domain.Concept, bool) {
	c, ok := q.Peek()
	if !ok {
		return c, false
	}
	q.items[0] = domain.Concept{}
	q.items = q.items[1:]
	return c, true
}

func (q *conceptQueue) PushBack(c domain.Concept) {
	q.items = append(q.items, c)
}

// Drain returns all queued concepts in order and empties the queue.
func (q *conceptQueue) Drain() []domain.Concept {
	items := q.items
	q.items = nil
	return items
}
