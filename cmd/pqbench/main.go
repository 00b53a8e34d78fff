// Command pqbench replays a workload against every priority queue backend
// and checks that they all hand out values in the same order.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/davidvella/pq/instrument"
)

// Config is the command line configuration of pqbench.
type Config struct {
	workload string
	logLevel string
}

// RegisterFlags registers the pqbench flags on f.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&c.workload, "workload", "", "YAML workload file; built-in defaults when empty")
	f.StringVar(&c.logLevel, "log.level", "info", "one of debug, info, warn, error")
}

// Validate rejects an unknown log level.
func (c *Config) Validate() error {
	if _, err := levelOption(c.logLevel); err != nil {
		return err
	}
	return nil
}

func levelOption(s string) (level.Option, error) {
	switch s {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q", s)
	}
}

func newLogger(lvl level.Option) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, lvl)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func main() {
	var config Config
	config.RegisterFlags(flag.CommandLine)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lvl, _ := levelOption(config.logLevel)
	logger := newLogger(lvl)

	w := defaultWorkload()
	if config.workload != "" {
		var err error
		if w, err = LoadWorkload(config.workload); err != nil {
			level.Error(logger).Log("msg", "failed to load workload", "err", err)
			os.Exit(1)
		}
	}
	level.Debug(logger).Log(
		"msg", "starting",
		"seed", w.Seed,
		"inserts", w.Inserts,
		"removeEvery", w.RemoveEvery,
		"order", w.Order,
		"backends", fmt.Sprint(w.Backends),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	if err := run(ctx, w, instrument.NewMetrics(reg), logger); err != nil {
		level.Error(logger).Log("msg", "workload failed", "err", err)
		stop()
		os.Exit(1)
	}
	logMetrics(reg, logger)
}

// logMetrics writes every gathered series at debug level.
func logMetrics(g prometheus.Gatherer, logger log.Logger) {
	families, err := g.Gather()
	if err != nil {
		level.Warn(logger).Log("msg", "failed to gather metrics", "err", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			kv := []interface{}{"msg", "metric", "name", mf.GetName()}
			for _, l := range m.GetLabel() {
				kv = append(kv, l.GetName(), l.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				kv = append(kv, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				kv = append(kv, "value", m.GetGauge().GetValue())
			}
			level.Debug(logger).Log(kv...)
		}
	}
}
