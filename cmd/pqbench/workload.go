package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/davidvella/pq/order"
	"github.com/davidvella/pq/priority"
)

// Workload describes the operations replayed against every backend.
type Workload struct {
	Seed        int64    `yaml:"seed"`
	Inserts     int      `yaml:"inserts"`
	RemoveEvery int      `yaml:"removeEvery"`
	MaxValue    int      `yaml:"maxValue"`
	Order       string   `yaml:"order"`
	Backends    []string `yaml:"backends"`
}

var backends = map[string]func(cmp order.Func[int], capacity int) priority.Queue[int]{
	"heap": func(cmp order.Func[int], capacity int) priority.Queue[int] {
		return priority.NewHeap(cmp, priority.WithCapacity(capacity))
	},
	"sorted": func(cmp order.Func[int], capacity int) priority.Queue[int] {
		return priority.NewSorted(cmp, priority.WithCapacity(capacity))
	},
	"list": func(cmp order.Func[int], _ int) priority.Queue[int] {
		return priority.NewList(cmp)
	},
	"tree": func(cmp order.Func[int], _ int) priority.Queue[int] {
		return priority.NewTree(cmp)
	},
}

func defaultWorkload() Workload {
	return Workload{
		Seed:     1,
		Inserts:  10000,
		MaxValue: 1 << 20,
		Order:    "natural",
		Backends: []string{"heap", "sorted", "list", "tree"},
	}
}

// LoadWorkload reads a YAML workload; fields it omits keep their defaults.
func LoadWorkload(path string) (Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Workload{}, fmt.Errorf("failed to open workload %s: %w", path, err)
	}
	defer f.Close()

	return DecodeWorkload(f)
}

func DecodeWorkload(r io.Reader) (Workload, error) {
	w := defaultWorkload()
	if err := yaml.NewDecoder(r).Decode(&w); err != nil && !errors.Is(err, io.EOF) {
		return Workload{}, fmt.Errorf("failed to decode workload: %w", err)
	}
	if err := w.Validate(); err != nil {
		return Workload{}, err
	}
	return w, nil
}

func (w Workload) Validate() error {
	if w.Inserts < 0 {
		return fmt.Errorf("inserts must not be negative")
	}
	if w.RemoveEvery < 0 {
		return fmt.Errorf("removeEvery must not be negative")
	}
	if w.MaxValue <= 0 {
		return fmt.Errorf("maxValue must be greater than 0")
	}
	if _, err := w.cmp(); err != nil {
		return err
	}
	if len(w.Backends) == 0 {
		return fmt.Errorf("backends must not be empty")
	}
	for _, b := range w.Backends {
		if _, ok := backends[b]; !ok {
			return fmt.Errorf("unknown backend %q", b)
		}
	}
	return nil
}

func (w Workload) cmp() (order.Func[int], error) {
	switch w.Order {
	case "natural":
		return order.Natural[int], nil
	case "reverse":
		return order.Reverse(order.Natural[int]), nil
	default:
		return nil, fmt.Errorf("unknown order %q, want natural or reverse", w.Order)
	}
}
