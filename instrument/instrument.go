// Package instrument exposes Prometheus metrics for priority queues.
package instrument

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/davidvella/pq/priority"
)

// Metrics holds the collectors shared by instrumented queues. Every series is
// labelled with the queue's backend.
type Metrics struct {
	inserts     *prometheus.CounterVec
	removes     *prometheus.CounterVec
	emptyErrors *prometheus.CounterVec
	size        *prometheus.GaugeVec
}

// NewMetrics creates the queue collectors and registers them with registerer.
// Registering twice with the same registerer panics.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		inserts: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "pq_inserts_total",
			Help: "Total number of values inserted into priority queues.",
		}, []string{"backend"}),
		removes: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "pq_removes_total",
			Help: "Total number of best values removed from priority queues.",
		}, []string{"backend"}),
		emptyErrors: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "pq_empty_errors_total",
			Help: "Total number of Best or Remove calls made against an empty priority queue.",
		}, []string{"backend"}),
		size: promauto.With(registerer).NewGaugeVec(prometheus.GaugeOpts{
			Name: "pq_size",
			Help: "Number of values currently held by priority queues.",
		}, []string{"backend"}),
	}
}

// Queue decorates a priority.Queue with metrics. Like the queue it wraps it
// is not safe for concurrent use, though several instrumented queues may
// share one Metrics.
type Queue[T any] struct {
	q priority.Queue[T]

	inserts     prometheus.Counter
	removes     prometheus.Counter
	emptyErrors prometheus.Counter
	size        prometheus.Gauge
}

var _ priority.Queue[int] = (*Queue[int])(nil)

// Wrap instruments q, labelling its series with backend. Queues wrapped with
// the same backend label add up in the same series.
func Wrap[T any](q priority.Queue[T], m *Metrics, backend string) *Queue[T] {
	iq := &Queue[T]{
		q:           q,
		inserts:     m.inserts.WithLabelValues(backend),
		removes:     m.removes.WithLabelValues(backend),
		emptyErrors: m.emptyErrors.WithLabelValues(backend),
		size:        m.size.WithLabelValues(backend),
	}
	iq.size.Add(float64(q.Len()))
	return iq
}

// Insert adds t and counts it.
func (iq *Queue[T]) Insert(t T) {
	iq.q.Insert(t)
	iq.inserts.Inc()
	iq.size.Inc()
}

// Remove deletes the best value. Calls against an empty queue are counted
// as empty errors.
func (iq *Queue[T]) Remove() error {
	if err := iq.q.Remove(); err != nil {
		iq.observe(err)
		return err
	}
	iq.removes.Inc()
	iq.size.Dec()
	return nil
}

// Best returns the best value of the wrapped queue.
func (iq *Queue[T]) Best() (T, error) {
	t, err := iq.q.Best()
	iq.observe(err)
	return t, err
}

// Empty reports whether the wrapped queue holds no values.
func (iq *Queue[T]) Empty() bool {
	return iq.q.Empty()
}

// Len returns the number of values in the wrapped queue.
func (iq *Queue[T]) Len() int {
	return iq.q.Len()
}

func (iq *Queue[T]) observe(err error) {
	if errors.Is(err, priority.ErrEmpty) {
		iq.emptyErrors.Inc()
	}
}
