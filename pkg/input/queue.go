package input

// Queue buffers events produced by native callbacks in arrival order. It is
// not safe for concurrent use; callbacks fire on the polling thread.
type Queue struct {
	events []Event
}

func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Pop removes the oldest event. ok is false when the queue is empty.
func (q *Queue) Pop() (e Event, ok bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e = q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return e, true
}

func (q *Queue) Len() int {
	return len(q.events)
}
