package priority

// options defines the construction options shared by the queue backends.
type options struct {
	capacity int // Initial capacity of slice backed queues
	degree   int // Node degree of the btree backed queue
}

// Option is a function that configures a queue.
type Option func(*options)

// WithCapacity preallocates room for n elements. Backends that do not store
// elements in a slice ignore it.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithDegree sets the btree node degree used by NewTree.
func WithDegree(d int) Option {
	return func(o *options) {
		if d >= 2 {
			o.degree = d
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: 0,
		degree:   16,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
