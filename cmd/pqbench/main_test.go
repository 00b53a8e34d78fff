package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/pq/instrument"
)

func TestDecodeWorkload(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Workload
		wantErr string
	}{
		{
			name:  "empty document keeps defaults",
			input: "",
			want:  defaultWorkload(),
		},
		{
			name: "full document",
			input: `
seed: 42
inserts: 500
removeEvery: 3
maxValue: 100
order: reverse
backends: [heap, list]
`,
			want: Workload{
				Seed:        42,
				Inserts:     500,
				RemoveEvery: 3,
				MaxValue:    100,
				Order:       "reverse",
				Backends:    []string{"heap", "list"},
			},
		},
		{
			name:    "unknown backend",
			input:   "backends: [heap, skiplist]",
			wantErr: `unknown backend "skiplist"`,
		},
		{
			name:    "unknown order",
			input:   "order: sideways",
			wantErr: `unknown order "sideways"`,
		},
		{
			name:    "negative inserts",
			input:   "inserts: -1",
			wantErr: "inserts must not be negative",
		},
		{
			name:    "malformed yaml",
			input:   "seed: [",
			wantErr: "failed to decode workload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeWorkload(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadWorkload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inserts: 10\nbackends: [tree]\n"), 0o600))

	w, err := LoadWorkload(path)
	require.NoError(t, err)
	assert.Equal(t, 10, w.Inserts)
	assert.Equal(t, []string{"tree"}, w.Backends)

	_, err = LoadWorkload(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		workload Workload
	}{
		{
			name: "natural order with removals",
			workload: Workload{
				Seed: 7, Inserts: 2000, RemoveEvery: 3, MaxValue: 50,
				Order: "natural", Backends: []string{"heap", "sorted", "list", "tree"},
			},
		},
		{
			name: "reverse order without removals",
			workload: Workload{
				Seed: 9, Inserts: 1000, MaxValue: 1000,
				Order: "reverse", Backends: []string{"tree", "heap"},
			},
		},
		{
			name: "no inserts",
			workload: Workload{
				Seed: 1, MaxValue: 1, Order: "natural", Backends: []string{"heap", "list"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.NewLogfmtLogger(&buf)
			reg := prometheus.NewRegistry()

			err := run(context.Background(), tt.workload, instrument.NewMetrics(reg), logger)
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "backends agree")

			// Every queue was drained.
			for _, b := range tt.workload.Backends {
				assert.Contains(t, buf.String(), "backend="+b)
			}
			n, err := testutil.GatherAndCount(reg, "pq_size")
			require.NoError(t, err)
			assert.Equal(t, len(tt.workload.Backends), n)
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := Workload{Seed: 1, Inserts: 5000, MaxValue: 10, Order: "natural", Backends: []string{"heap"}}
	err := run(ctx, w, instrument.NewMetrics(prometheus.NewRegistry()), log.NewNopLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDivergence(t *testing.T) {
	assert.Equal(t, -1, divergence([]int{1, 2}, []int{1, 2}))
	assert.Equal(t, 1, divergence([]int{1, 2}, []int{1, 3}))
	assert.Equal(t, 2, divergence([]int{1, 2}, []int{1, 2, 3}))
	assert.Equal(t, -1, divergence(nil, nil))
}

func TestConfigValidate(t *testing.T) {
	c := Config{logLevel: "debug"}
	assert.NoError(t, c.Validate())

	c.logLevel = "loud"
	assert.EqualError(t, c.Validate(), `unknown log level "loud"`)
}
