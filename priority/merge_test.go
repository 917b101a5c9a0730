package priority_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kesano/p-queue/priority"
)

type tagged struct {
	queue int
	seq   int
}

func newQueue(pairs ...priority.Pair[string, int]) *priority.Queue[string, int] {
	q := priority.New[string, int]()
	for _, p := range pairs {
		q.Push(p.Value, p.Priority)
	}
	return q
}

func collect(q ...*priority.Queue[string, int]) []string {
	var got []string
	for v := range priority.Merge(q...) {
		got = append(got, v)
	}
	return got
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		queues []*priority.Queue[string, int]
		want   []string
	}{
		{
			name: "no queues",
		},
		{
			name:   "one queue",
			queues: []*priority.Queue[string, int]{newQueue(priority.Pair[string, int]{Value: "a", Priority: 1})},
			want:   []string{"a"},
		},
		{
			name: "two queues, first empty",
			queues: []*priority.Queue[string, int]{
				newQueue(),
				newQueue(priority.Pair[string, int]{Value: "a", Priority: 1}, priority.Pair[string, int]{Value: "b", Priority: 2}),
			},
			want: []string{"a", "b"},
		},
		{
			name: "nil queue skipped",
			queues: []*priority.Queue[string, int]{
				nil,
				newQueue(priority.Pair[string, int]{Value: "a", Priority: 1}),
			},
			want: []string{"a"},
		},
		{
			name: "interleaved",
			queues: []*priority.Queue[string, int]{
				newQueue(priority.Pair[string, int]{Value: "a1", Priority: 1}, priority.Pair[string, int]{Value: "a3", Priority: 3}),
				newQueue(priority.Pair[string, int]{Value: "b2", Priority: 2}, priority.Pair[string, int]{Value: "b4", Priority: 4}),
				newQueue(priority.Pair[string, int]{Value: "c0", Priority: 0}, priority.Pair[string, int]{Value: "c5", Priority: 5}),
			},
			want: []string{"c0", "a1", "b2", "a3", "b4", "c5"},
		},
		{
			name: "ties go to earlier queue",
			queues: []*priority.Queue[string, int]{
				newQueue(priority.Pair[string, int]{Value: "a", Priority: 1}, priority.Pair[string, int]{Value: "a'", Priority: 1}),
				newQueue(priority.Pair[string, int]{Value: "b", Priority: 1}),
				newQueue(priority.Pair[string, int]{Value: "c", Priority: 0}, priority.Pair[string, int]{Value: "c'", Priority: 1}),
			},
			want: []string{"c", "a", "a'", "b", "c'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.queues...))
		})
	}
}

func TestMergeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	queues := make([]*priority.Queue[tagged, int], 5)
	var want []priority.Pair[tagged, int]

	for i := range queues {
		queues[i] = priority.New[tagged, int]()
		n := rng.Intn(200)
		for j := 0; j < n; j++ {
			queues[i].Push(tagged{queue: i, seq: j}, rng.Intn(40))
		}
		want = append(want, queues[i].Pairs()...)
	}
	// Queues were appended in argument order, so a stable sort gives the
	// expected tie order.
	slices.SortStableFunc(want, func(a, b priority.Pair[tagged, int]) int {
		return a.Priority - b.Priority
	})

	var got []priority.Pair[tagged, int]
	for v, p := range priority.Merge(queues...) {
		got = append(got, priority.Pair[tagged, int]{Value: v, Priority: p})
	}
	assert.Equal(t, want, got)

	total := 0
	for _, q := range queues {
		total += q.Len()
	}
	assert.Equal(t, len(want), total, "merge must not consume its inputs")
}

func TestMergeStopsEarly(t *testing.T) {
	a := newQueue(priority.Pair[string, int]{Value: "a", Priority: 1}, priority.Pair[string, int]{Value: "c", Priority: 3})
	b := newQueue(priority.Pair[string, int]{Value: "b", Priority: 2})

	var got []string
	for v := range priority.Merge(a, b) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
