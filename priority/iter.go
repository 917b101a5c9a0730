package priority

import "iter"

// All returns an iterator over the queue's values and priorities in the order
// Pop would return them. The queue is not modified. Pushing or popping while
// ranging over All has undefined results.
func (q *Queue[V, P]) All() iter.Seq2[V, P] {
	return func(yield func(V, P) bool) {
		n := q.Len()
		for i := 0; i < n; i++ {
			p := q.buf[q.slot(i)]
			if !yield(p.Value, p.Priority) {
				return
			}
		}
	}
}

// Drain returns an iterator that pops each element as it is yielded.
// Stopping early leaves the remaining elements in the queue.
func (q *Queue[V, P]) Drain() iter.Seq2[V, P] {
	return func(yield func(V, P) bool) {
		for !q.IsEmpty() {
			p := q.buf[q.head]
			q.buf[q.head] = Pair[V, P]{}
			q.head = q.next(q.head)
			if !yield(p.Value, p.Priority) {
				return
			}
		}
	}
}

// Pairs returns a snapshot of the queue's contents in priority order.
func (q *Queue[V, P]) Pairs() []Pair[V, P] {
	out := make([]Pair[V, P], q.Len())
	q.unwrap(out)
	return out
}
