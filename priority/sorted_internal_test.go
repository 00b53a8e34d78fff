package priority

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/pq/order"
)

func TestSortedKeepsRankOrder(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	s := NewSorted(order.Reverse(order.Natural[int]), WithCapacity(128))

	for range 1000 {
		if r.Intn(3) > 0 || s.Empty() {
			s.Insert(r.Intn(100))
		} else {
			require.NoError(t, s.Remove())
		}
		require.True(t, slices.IsSortedFunc(s.items, s.cmp))
	}
}

func TestSortedInsertsAfterEqualRun(t *testing.T) {
	s := NewSorted(byRank)
	s.Insert(job{2, "a"})
	s.Insert(job{1, "b"})
	s.Insert(job{2, "c"})
	s.Insert(job{3, "d"})
	s.Insert(job{2, "e"})

	assert.Equal(t, []job{{1, "b"}, {2, "a"}, {2, "c"}, {2, "e"}, {3, "d"}}, s.items)

	best, err := s.Best()
	require.NoError(t, err)
	assert.Equal(t, job{3, "d"}, best)
}
