package priority

// slot maps the logical position i, counted from head, to a buffer index.
func (q *Queue[V, P]) slot(i int) int {
	return (q.head + i) % len(q.buf)
}

func (q *Queue[V, P]) next(idx int) int {
	idx++
	if idx == len(q.buf) {
		return 0
	}
	return idx
}

// unwrap copies the occupied slots into dst starting at index 0.
func (q *Queue[V, P]) unwrap(dst []Pair[V, P]) int {
	n := q.Len()
	if q.head+n <= len(q.buf) {
		copy(dst, q.buf[q.head:q.head+n])
		return n
	}
	k := copy(dst, q.buf[q.head:])
	copy(dst[k:], q.buf[:n-k])
	return n
}

// grow doubles the capacity and lays the elements out from index 0.
func (q *Queue[V, P]) grow() {
	oldCap := len(q.buf)
	buf := make([]Pair[V, P], oldCap*2)
	n := q.unwrap(buf)
	q.buf = buf
	q.head, q.tail = 0, n

	q.log("grow", "grew ring buffer", map[string]any{
		"old_capacity": oldCap,
		"new_capacity": len(buf),
		"len":          n,
	})
}

func (q *Queue[V, P]) copyFrom(src *Queue[V, P]) {
	capacity := max(len(src.buf), MinCapacity, src.Len()+1)
	buf := make([]Pair[V, P], capacity)
	n := src.unwrap(buf)

	q.buf = buf
	q.head, q.tail = 0, n
	q.opts = src.opts

	q.log("clone", "copied queue", map[string]any{
		"capacity": capacity,
		"len":      n,
	})
}
