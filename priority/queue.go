package priority

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/kesano/p-queue/monitoring"
)

// MinCapacity is the smallest number of slots a Queue ever allocates.
const MinCapacity = 10

// ErrEmpty is returned when removing or peeking from a queue with no elements.
var ErrEmpty = errors.New("empty queue")

// Number is the set of types usable as priorities.
type Number interface {
	constraints.Integer | constraints.Float
}

// Pair is a value stored together with its priority.
type Pair[V any, P Number] struct {
	Value    V
	Priority P
}

// Queue is a priority queue backed by a ring buffer whose occupied slots are
// always sorted by ascending priority. Push pays the ordering cost, Pop is O(1).
//
// The zero value is an empty queue ready to use. A Queue is not safe for
// concurrent use.
type Queue[V any, P Number] struct {
	buf  []Pair[V, P] // len(buf) is the capacity.
	head int          // first occupied slot.
	tail int          // one past the last occupied slot.
	opts options
}

// New creates an empty queue.
func New[V any, P Number](opts ...Option) *Queue[V, P] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[V, P]{
		buf:  make([]Pair[V, P], o.initialCapacity),
		opts: o,
	}
}

// Len returns the number of elements in the queue.
func (q *Queue[V, P]) Len() int {
	if len(q.buf) == 0 {
		return 0
	}
	return (q.tail - q.head + len(q.buf)) % len(q.buf)
}

// Cap returns the number of allocated slots. One slot is always kept free,
// so a queue holds at most Cap()-1 elements before it grows.
func (q *Queue[V, P]) Cap() int {
	return len(q.buf)
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[V, P]) IsEmpty() bool {
	return q.head == q.tail
}

// Clear logically removes all elements. The buffer keeps its capacity.
func (q *Queue[V, P]) Clear() {
	q.head, q.tail = 0, 0
}

// Push inserts value with the given priority. It is placed after every
// element whose priority is less than or equal to priority, so elements with
// equal priority leave the queue in insertion order.
func (q *Queue[V, P]) Push(value V, priority P) {
	if q.buf == nil {
		q.buf = make([]Pair[V, P], max(q.opts.initialCapacity, MinCapacity))
	}
	n := q.Len()
	if n == len(q.buf)-1 {
		q.grow()
	}

	pos := n
	for i := 0; i < n; i++ {
		if priority < q.buf[q.slot(i)].Priority {
			pos = i
			break
		}
	}

	for i := n; i > pos; i-- {
		q.buf[q.slot(i)] = q.buf[q.slot(i-1)]
	}
	q.buf[q.slot(pos)] = Pair[V, P]{Value: value, Priority: priority}
	q.tail = q.next(q.tail)
}

// Pop removes and returns the value with the lowest priority.
func (q *Queue[V, P]) Pop() (V, error) {
	if q.IsEmpty() {
		var zero V
		return zero, fmt.Errorf("priority: pop: %w", ErrEmpty)
	}
	v := q.buf[q.head].Value
	q.buf[q.head] = Pair[V, P]{}
	q.head = q.next(q.head)
	return v, nil
}

// Peek returns the value with the lowest priority without removing it.
func (q *Queue[V, P]) Peek() (V, error) {
	if q.IsEmpty() {
		var zero V
		return zero, fmt.Errorf("priority: peek: %w", ErrEmpty)
	}
	return q.buf[q.head].Value, nil
}

// PeekPriority returns the lowest priority in the queue.
func (q *Queue[V, P]) PeekPriority() (P, error) {
	if q.IsEmpty() {
		var zero P
		return zero, fmt.Errorf("priority: peek priority: %w", ErrEmpty)
	}
	return q.buf[q.head].Priority, nil
}

// Clone returns a deep copy of q. The copy owns its own buffer.
func (q *Queue[V, P]) Clone() *Queue[V, P] {
	c := &Queue[V, P]{}
	c.copyFrom(q)
	return c
}

// CopyFrom replaces the contents of q with a deep copy of src.
// Copying a queue onto itself does nothing.
func (q *Queue[V, P]) CopyFrom(src *Queue[V, P]) {
	if q == src {
		return
	}
	q.copyFrom(src)
}

func (q *Queue[V, P]) log(eventType, message string, details map[string]any) {
	if q.opts.logger == nil {
		return
	}
	q.opts.logger.Log(monitoring.DEBUG, eventType, message, details)
}
