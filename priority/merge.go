package priority

import "iter"

// Merge returns an iterator over the combined contents of queues in
// ascending priority order, using a tournament tree over one cursor per
// queue. Equal priorities from different queues are yielded in argument
// order; within a queue its own order is kept. The queues are not modified,
// nil queues are skipped.
func Merge[V any, P Number](queues ...*Queue[V, P]) iter.Seq2[V, P] {
	return func(yield func(V, P) bool) {
		t := newTree(queues)
		if t == nil {
			return
		}
		for {
			w := t.nodes[0].index
			leaf := &t.nodes[w]
			if leaf.done {
				return
			}
			if !yield(leaf.pair.Value, leaf.pair.Priority) {
				return
			}
			t.advance(w)
			t.replayGames(w)
		}
	}
}

// A loser tree laid out such that nodes N and N+1 have parent N/2.
// The M leaves sit in positions M...2M-1 and the M-1 internal nodes in 1..M-1.
// Node 0 holds the winner.
type tree[V any, P Number] struct {
	nodes []node[V, P]
}

type node[V any, P Number] struct {
	index int // Loser leaf for internal nodes, winner leaf for node 0.

	// Leaf state.
	queue *Queue[V, P]
	pos   int
	pair  Pair[V, P]
	done  bool
}

func newTree[V any, P Number](queues []*Queue[V, P]) *tree[V, P] {
	live := make([]*Queue[V, P], 0, len(queues))
	for _, q := range queues {
		if q != nil {
			live = append(live, q)
		}
	}
	if len(live) == 0 {
		return nil
	}

	m := len(live)
	t := &tree[V, P]{nodes: make([]node[V, P], 2*m)}
	for i, q := range live {
		t.nodes[m+i].queue = q
		t.advance(m + i)
	}
	t.nodes[0].index = t.playGame(1)
	return t
}

// advance loads the next pair of the leaf's queue, or marks it done.
func (t *tree[V, P]) advance(leaf int) {
	n := &t.nodes[leaf]
	if n.pos >= n.queue.Len() {
		n.pair = Pair[V, P]{}
		n.done = true
		return
	}
	n.pair = n.queue.buf[n.queue.slot(n.pos)]
	n.pos++
}

// beats reports whether leaf a wins against leaf b. Exhausted leaves always
// lose and ties go to the lower leaf, which belongs to the earlier queue.
func (t *tree[V, P]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	switch {
	case na.done && nb.done:
		return a < b
	case na.done || nb.done:
		return nb.done
	case na.pair.Priority < nb.pair.Priority:
		return true
	case nb.pair.Priority < na.pair.Priority:
		return false
	default:
		return a < b
	}
}

// playGame finds the winner below pos, storing losers in internal nodes.
func (t *tree[V, P]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	if t.beats(right, left) {
		t.nodes[pos].index = left
		return right
	}
	t.nodes[pos].index = right
	return left
}

// replayGames re-plays the path from leaf pos, the previous winner, to the root.
func (t *tree[V, P]) replayGames(pos int) {
	winner := pos
	for n := parent(pos); n != 0; n = parent(n) {
		if t.beats(t.nodes[n].index, winner) {
			t.nodes[n].index, winner = winner, t.nodes[n].index
		}
	}
	t.nodes[0].index = winner
}

func parent(i int) int { return i >> 1 }
