package accio

// PathQueue is a FIFO of directories waiting to be expanded.
//
// A queue belongs to a single search call and is not safe for concurrent use.
// Paths are not deduplicated.
type PathQueue struct {
	paths []string
	head  int
	limit int
}

// NewPathQueue creates an empty queue. A limit <= 0 means unbounded.
func NewPathQueue(limit int) *PathQueue {
	return &PathQueue{
		limit: limit,
	}
}

// Enqueue appends path to the tail
func (q *PathQueue) Enqueue(path string) error {
	if q.limit > 0 && q.Len() >= q.limit {
		return newQueueExhaustedError(path, q.limit)
	}

	q.paths = append(q.paths, path)
	return nil
}

// Dequeue removes and returns the head, or false if the queue is empty
func (q *PathQueue) Dequeue() (string, bool) {
	if q.IsEmpty() {
		return "", false
	}

	path := q.paths[q.head]
	q.paths[q.head] = ""
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array
	if q.head == len(q.paths) {
		q.paths = q.paths[:0]
		q.head = 0
	} else if q.head >= 1024 && q.head*2 >= len(q.paths) {
		remaining := copy(q.paths, q.paths[q.head:])
		clear(q.paths[remaining:])
		q.paths = q.paths[:remaining]
		q.head = 0
	}

	return path, true
}

// Len returns the number of pending paths
func (q *PathQueue) Len() int {
	return len(q.paths) - q.head
}

// IsEmpty reports whether no paths are pending
func (q *PathQueue) IsEmpty() bool {
	return q.Len() == 0
}

// Reset drops every pending path without processing it
func (q *PathQueue) Reset() {
	q.paths = nil
	q.head = 0
}
