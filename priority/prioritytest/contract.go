// Package prioritytest provides the contract every priority.Queue
// implementation is certified against.
package prioritytest

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/pq/order"
	"github.com/davidvella/pq/priority"
)

// Factory creates an empty queue ordered by cmp.
type Factory func(cmp order.Func[int]) priority.Queue[int]

type unit struct {
	name string
	cmp  order.Func[int]
}

// units are the two orderings every case runs with: natural order makes the
// queue a max-queue, reversed order a min-queue.
var units = []unit{
	{name: "natural", cmp: order.Natural[int]},
	{name: "reverse", cmp: order.Reverse(order.Natural[int])},
}

// Run certifies the queues built by newQueue.
func Run(t *testing.T, newQueue Factory) {
	t.Helper()

	t.Run("new queue is empty", func(t *testing.T) {
		for _, u := range units {
			q := newQueue(u.cmp)
			assert.True(t, q.Empty(), u.name)
			assert.Equal(t, 0, q.Len(), u.name)
		}
	})

	t.Run("empty queue operations", func(t *testing.T) {
		for _, u := range units {
			q := newQueue(u.cmp)

			_, err := q.Best()
			assert.ErrorIs(t, err, priority.ErrEmpty, u.name)
			assert.ErrorIs(t, q.Remove(), priority.ErrEmpty, u.name)
			assert.True(t, q.Empty(), u.name)
		}
	})

	t.Run("not empty after insert", func(t *testing.T) {
		for _, u := range units {
			q := newQueue(u.cmp)
			q.Insert(1)
			assert.False(t, q.Empty(), u.name)
			assert.Equal(t, 1, q.Len(), u.name)

			best, err := q.Best()
			require.NoError(t, err)
			assert.Equal(t, 1, best, u.name)
		}
	})

	t.Run("remove last element empties queue", func(t *testing.T) {
		for _, u := range units {
			q := newQueue(u.cmp)
			q.Insert(1)
			require.NoError(t, q.Remove())
			assert.True(t, q.Empty(), u.name)

			_, err := q.Best()
			assert.ErrorIs(t, err, priority.ErrEmpty, u.name)
		}
	})

	t.Run("insert updates best", func(t *testing.T) {
		tests := []struct {
			name    string
			cmp     order.Func[int]
			batches [][]int
			want    []int
		}{
			{
				name:    "natural",
				cmp:     units[0].cmp,
				batches: [][]int{{2, 1}, {4, 3}},
				want:    []int{2, 4},
			},
			{
				name:    "reverse",
				cmp:     units[1].cmp,
				batches: [][]int{{2, 1}, {3, 4}},
				want:    []int{1, 1},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q := newQueue(tt.cmp)
				for i, batch := range tt.batches {
					for _, v := range batch {
						q.Insert(v)
					}
					best, err := q.Best()
					require.NoError(t, err)
					assert.Equal(t, tt.want[i], best)
				}
			})
		}
	})

	t.Run("remove updates best", func(t *testing.T) {
		tests := []struct {
			name   string
			cmp    order.Func[int]
			insert []int
			want   []int
		}{
			{
				name:   "natural",
				cmp:    units[0].cmp,
				insert: []int{1, 4, 0, 8, 2},
				want:   []int{8, 4, 2, 1, 0},
			},
			{
				name:   "reverse",
				cmp:    units[1].cmp,
				insert: []int{1, 4, 0, 8, 2},
				want:   []int{0, 1, 2, 4, 8},
			},
			{
				name:   "natural with duplicates",
				cmp:    units[0].cmp,
				insert: []int{1, 4, 0, 8, 8, 2},
				want:   []int{8, 8, 4, 2, 1, 0},
			},
			{
				name:   "reverse with duplicates",
				cmp:    units[1].cmp,
				insert: []int{1, 4, 0, 0, 8, 2},
				want:   []int{0, 0, 1, 2, 4, 8},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q := newQueue(tt.cmp)
				for _, v := range tt.insert {
					q.Insert(v)
				}

				got := make([]int, 0, len(tt.want))
				for !q.Empty() {
					best, err := q.Best()
					require.NoError(t, err)
					got = append(got, best)
					require.NoError(t, q.Remove())
				}
				assert.Equal(t, tt.want, got)
				assert.ErrorIs(t, q.Remove(), priority.ErrEmpty)
			})
		}
	})

	t.Run("duplicates need one remove each", func(t *testing.T) {
		for _, u := range units {
			q := newQueue(u.cmp)
			for range 3 {
				q.Insert(7)
			}
			for i := range 3 {
				assert.False(t, q.Empty(), "%s: remove %d", u.name, i)
				best, err := q.Best()
				require.NoError(t, err)
				assert.Equal(t, 7, best)
				require.NoError(t, q.Remove())
			}
			assert.True(t, q.Empty(), u.name)
		}
	})

	t.Run("best is monotonic under insert", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		for _, u := range units {
			q := newQueue(u.cmp)
			q.Insert(r.Intn(1000))
			for range 200 {
				prev, err := q.Best()
				require.NoError(t, err)

				v := r.Intn(1000)
				q.Insert(v)

				want := prev
				if u.cmp(v, prev) > 0 {
					want = v
				}
				best, err := q.Best()
				require.NoError(t, err)
				require.Equal(t, want, best, u.name)
			}
		}
	})

	t.Run("insert then remove restores emptiness", func(t *testing.T) {
		for _, u := range units {
			q := newQueue(u.cmp)
			best := 100
			if u.cmp(-100, best) > 0 {
				best = -100
			}
			q.Insert(5)
			q.Insert(-5)

			for range 4 {
				q.Insert(best)
			}
			for range 4 {
				require.NoError(t, q.Remove())
			}
			assert.False(t, q.Empty(), u.name)
			assert.Equal(t, 2, q.Len(), u.name)
		}
	})

	t.Run("random operations match a reference model", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for _, u := range units {
			q := newQueue(u.cmp)
			var model []int

			for i := range 2000 {
				if r.Intn(3) > 0 || len(model) == 0 {
					v := r.Intn(100)
					q.Insert(v)
					model = append(model, v)
				} else {
					slices.SortFunc(model, u.cmp)
					model = model[:len(model)-1]
					require.NoError(t, q.Remove(), "%s: op %d", u.name, i)
				}

				require.Equal(t, len(model) == 0, q.Empty(), "%s: op %d", u.name, i)
				require.Equal(t, len(model), q.Len(), "%s: op %d", u.name, i)
				if len(model) > 0 {
					best, err := q.Best()
					require.NoError(t, err)
					require.Equal(t, slices.MaxFunc(model, u.cmp), best, "%s: op %d", u.name, i)
				}
			}
		}
	})
}
