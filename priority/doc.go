// Package priority implements a generic priority queue that stores
// (value, priority) pairs and always yields the pair with the lowest priority
// first.
//
// The queue is backed by a ring buffer. The occupied slots, read from head to
// tail, are kept sorted by ascending priority at all times, so removing the
// minimum is a single index move while insertion shifts the larger elements
// one slot toward the tail.
//
// Key features:
//   - Generic over the value type and any integer or floating point priority
//   - O(1) Pop, Peek and PeekPriority
//   - O(n) Push, with amortized O(1) growth by doubling
//   - Equal priorities are returned in insertion order
//   - Deep copies via Clone and CopyFrom that never share a buffer
//   - Iterators over the contents and a k-way Merge of several queues
//
// Basic usage:
//
//	q := priority.New[string, float64]()
//
//	q.Push("low", 5)
//	q.Push("high", 1)
//	q.Push("mid", 3)
//
//	v, err := q.Peek() // "high"
//	if errors.Is(err, priority.ErrEmpty) {
//	    // nothing queued
//	}
//
//	for v, p := range q.Drain() {
//	    fmt.Println(v, p) // high 1, mid 3, low 5
//	}
//
// Implementation Details:
// The buffer always keeps one slot free. A full ring would have head == tail,
// which cannot be told apart from an empty one, so Push doubles the buffer
// when the queue holds Cap()-1 elements. Growth copies the elements in order
// to the start of the new buffer, which also unwraps the ring.
//
// Clear only resets head and tail. Stale slots are overwritten by later
// pushes and are unreachable until then.
//
// A Queue is not safe for concurrent use.
package priority
