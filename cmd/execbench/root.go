package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/execgo"
	"github.com/hupe1980/execgo/internal/dataset"
	"github.com/hupe1980/execgo/prom"
)

type benchConfig struct {
	Size        int
	K           int
	Workers     int
	Seed        int64
	Term        string
	Compression string
	LogLevel    string
	LogFormat   string
	ShowMetrics bool
	PromListen  string
}

var cfg benchConfig

var rootCmd = &cobra.Command{
	Use:           "execbench",
	Short:         "Benchmark harness for the execgo query-execution kernels",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int("size", 1<<20, "number of generated input elements")
	pf.Int("k", 100, "selection size for top-k")
	pf.Int("workers", 4, "worker count for top-k")
	pf.Int64("seed", 42, "seed for input generation")
	pf.String("term", "string_10", "substring to match")
	pf.String("compression", "none", "column compression: none, lz4 or zstd")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Bool("metrics", false, "dump collector stats after the run")
	pf.String("prom-listen", "", "expose Prometheus metrics on this address (e.g. :2112)")

	rootCmd.AddCommand(topkCmd, groupSumCmd, matchCmd, intersectCmd, columnarCmd, streamCmd, allCmd)
}

// loadConfig resolves settings from flags and EXECBENCH_* environment
// variables, explicit flags winning over the environment.
func loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("EXECBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg = benchConfig{
		Size:        v.GetInt("size"),
		K:           v.GetInt("k"),
		Workers:     v.GetInt("workers"),
		Seed:        v.GetInt64("seed"),
		Term:        v.GetString("term"),
		Compression: v.GetString("compression"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		ShowMetrics: v.GetBool("metrics"),
		PromListen:  v.GetString("prom-listen"),
	}

	if cfg.Size < 1 {
		return fmt.Errorf("size must be positive, got %d", cfg.Size)
	}

	return nil
}

// benchRun bundles the state every subcommand needs: a logger, the metrics
// collectors and a seeded input generator.
type benchRun struct {
	logger  *execgo.Logger
	basic   *execgo.BasicMetricsCollector
	metrics execgo.MetricsCollector
	rng     *dataset.RNG
}

func newBenchRun() (*benchRun, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	basic := &execgo.BasicMetricsCollector{}
	var metrics execgo.MetricsCollector = basic

	if cfg.PromListen != "" {
		collector := prom.NewCollector(prometheus.DefaultRegisterer)
		metrics = teeCollector{basic, collector}

		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.PromListen, nil); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	return &benchRun{
		logger:  logger,
		basic:   basic,
		metrics: metrics,
		rng:     dataset.NewRNG(cfg.Seed),
	}, nil
}

// finish dumps the in-memory collector stats when --metrics is set.
func (b *benchRun) finish() {
	if !cfg.ShowMetrics {
		return
	}

	stats := b.basic.GetStats()
	fmt.Println("\n--- Collector Stats ---")
	fmt.Printf("topk:      %d runs, %d errors, avg %s\n",
		stats.TopKCount, stats.TopKErrors, time.Duration(stats.TopKAvgNanos))
	fmt.Printf("groupsum:  %d runs, %d errors, avg %s\n",
		stats.GroupSumCount, stats.GroupSumErrors, time.Duration(stats.GroupSumAvgNanos))
	fmt.Printf("match:     %d runs, %d hits\n", stats.MatchCount, stats.MatchHits)
	fmt.Printf("intersect: %d runs\n", stats.IntersectCount)
}

func newLogger() (*execgo.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	switch cfg.LogFormat {
	case "json":
		return execgo.NewJSONLogger(level), nil
	case "text":
		return execgo.NewTextLogger(level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", s, err)
	}

	return level, nil
}

// teeCollector fans each record out to all wrapped collectors.
type teeCollector []execgo.MetricsCollector

func (t teeCollector) RecordTopK(k, workers, n int, duration time.Duration, err error) {
	for _, c := range t {
		c.RecordTopK(k, workers, n, duration, err)
	}
}

func (t teeCollector) RecordGroupSum(n, groups int, duration time.Duration, err error) {
	for _, c := range t {
		c.RecordGroupSum(n, groups, duration, err)
	}
}

func (t teeCollector) RecordMatch(n, matches int, duration time.Duration) {
	for _, c := range t {
		c.RecordMatch(n, matches, duration)
	}
}

func (t teeCollector) RecordIntersect(size int, duration time.Duration) {
	for _, c := range t {
		c.RecordIntersect(size, duration)
	}
}
