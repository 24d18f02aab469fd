package collision

// Queue is a double-buffered event mailbox. The detector writes the current
// tick's events after Swap; consumers read Current. Previous keeps the
// events of the tick before so readers never see a buffer being rewritten.
type Queue struct {
	current  []Event
	previous []Event
}

// Swap retires the current buffer and starts an empty one, reusing the
// storage of the buffer retired last time.
func (q *Queue) Swap() {
	q.previous, q.current = q.current, q.previous[:0]
}

func (q *Queue) Publish(events ...Event) {
	q.current = append(q.current, events...)
}

// Buffer exposes the write side for Detect.
func (q *Queue) Buffer() []Event {
	return q.current
}

// SetBuffer stores the slice returned by Detect.
func (q *Queue) SetBuffer(events []Event) {
	q.current = events
}

func (q *Queue) Current() []Event {
	return q.current
}

func (q *Queue) Previous() []Event {
	return q.previous
}

func (q *Queue) Reset() {
	q.current = q.current[:0]
	q.previous = q.previous[:0]
}
