package main

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/davidvella/pq/instrument"
	"github.com/davidvella/pq/order"
	"github.com/davidvella/pq/priority"
)

// checkEvery is how many inserts a replay performs between context checks.
const checkEvery = 1024

type result struct {
	backend string
	removed []int // Values in the order the queue handed them out.
	elapsed time.Duration
}

// run replays w against every backend concurrently, one queue per goroutine,
// and fails if the backends disagree on the order values came out in.
func run(ctx context.Context, w Workload, m *instrument.Metrics, logger log.Logger) error {
	cmp, err := w.cmp()
	if err != nil {
		return err
	}

	results := make([]result, len(w.Backends))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range w.Backends {
		g.Go(func() error {
			r, err := replay(ctx, w, name, cmp, m)
			if err != nil {
				return fmt.Errorf("backend %s: %w", name, err)
			}
			results[i] = r
			level.Info(logger).Log(
				"msg", "workload replayed",
				"backend", name,
				"removed", len(r.removed),
				"duration", r.elapsed,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	want := results[0]
	for _, got := range results[1:] {
		if i := divergence(want.removed, got.removed); i >= 0 {
			return fmt.Errorf("backend %s diverges from %s at removal %d", got.backend, want.backend, i)
		}
	}
	level.Info(logger).Log("msg", "backends agree", "backends", len(results), "values", len(want.removed))
	return nil
}

func replay(ctx context.Context, w Workload, name string, cmp order.Func[int], m *instrument.Metrics) (result, error) {
	r := rand.New(rand.NewSource(w.Seed))
	q := instrument.Wrap(backends[name](cmp, w.Inserts), m, name)
	removed := make([]int, 0, w.Inserts)
	start := time.Now()

	for i := 1; i <= w.Inserts; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return result{}, err
			}
		}

		q.Insert(r.Intn(w.MaxValue))
		if w.RemoveEvery == 0 || i%w.RemoveEvery != 0 {
			continue
		}

		best, err := q.Best()
		if err != nil {
			return result{}, err
		}
		if err := q.Remove(); err != nil {
			return result{}, err
		}
		removed = append(removed, best)
	}

	tail := slices.Collect(priority.Drain[int](q))
	if !slices.IsSortedFunc(tail, order.Reverse(cmp)) {
		return result{}, fmt.Errorf("drained values are not in rank order")
	}
	removed = append(removed, tail...)

	return result{
		backend: name,
		removed: removed,
		elapsed: time.Since(start),
	}, nil
}

// divergence returns the first index where a and b differ, or -1.
func divergence(a, b []int) int {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}
