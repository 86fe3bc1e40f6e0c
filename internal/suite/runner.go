package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/probelab/browsercheck/internal/metrics"
	"github.com/probelab/browsercheck/internal/probe"
	"github.com/probelab/browsercheck/internal/profiler"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RunnerConfig contains the collaborators a runner needs. All of them are
// caller-owned; the runner holds no process-wide state.
type RunnerConfig struct {
	Logger   logrus.FieldLogger
	Registry *probe.Registry
	Profiler *profiler.Profiler
	Metrics  metrics.Collector
}

// Runner executes selected probes concurrently and aggregates their results
// into a Suite.
type Runner struct {
	registry *probe.Registry
	profiler *profiler.Profiler
	metrics  metrics.Collector
	log      logrus.FieldLogger
}

// NewRunner creates a new suite runner.
func NewRunner(cfg *RunnerConfig) *Runner {
	return &Runner{
		registry: cfg.Registry,
		profiler: cfg.Profiler,
		metrics:  cfg.Metrics,
		log:      cfg.Logger.WithField("component", "suite_runner"),
	}
}

// RunAll executes the full battery in registration order.
func (r *Runner) RunAll(ctx context.Context) *Suite {
	return r.run(ctx, r.registry.Names())
}

// RunSelected executes only the named probes. Unknown names are skipped with
// a warning; duplicates collapse to their first occurrence. Result order
// matches the caller-supplied name order for recognized probes.
func (r *Runner) RunSelected(ctx context.Context, names []string) *Suite {
	selected := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}

		seen[name] = true

		if _, ok := r.registry.Lookup(name); !ok {
			r.log.WithField("probe", name).Warn("unknown probe name, skipping")
			continue
		}

		selected = append(selected, name)
	}

	return r.run(ctx, selected)
}

// run launches the named probes concurrently and waits for every one of
// them to settle. Results keep launch order regardless of completion order,
// and the suite timestamp is assigned once, after the last probe settles.
func (r *Runner) run(ctx context.Context, names []string) *Suite {
	results := make([]probe.Result, len(names))

	g, gctx := errgroup.WithContext(ctx)

	started := time.Now()

	for i, name := range names {
		i := i
		detector, _ := r.registry.Lookup(name)

		g.Go(func() error {
			result := r.execute(gctx, detector)
			results[i] = result

			if r.metrics != nil {
				r.metrics.RecordProbe(metrics.ProbeMetric{
					Feature:   result.Feature,
					Supported: result.Supported,
					Duration:  time.Duration(result.PerformanceMS * float64(time.Millisecond)),
					Error:     result.Error,
				})
			}

			return nil
		})
	}

	// Probes are total, so Wait only synchronizes; it cannot fail.
	_ = g.Wait()

	s := &Suite{
		ID:           uuid.NewString(),
		Browser:      r.profiler.BrowserInfo(),
		Timestamp:    time.Now(),
		Results:      results,
		OverallScore: Score(results),
	}

	r.log.WithFields(logrus.Fields{
		"probes":   len(results),
		"score":    s.OverallScore,
		"duration": time.Since(started),
	}).Info("suite completed")

	return s
}

// execute invokes a detector, converting a panic into a failure result so
// nothing escapes the probe boundary.
func (r *Runner) execute(ctx context.Context, d probe.Detector) (result probe.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.WithField("probe", d.Name()).WithField("panic", rec).Error("probe panicked")

			result = probe.Result{
				Feature: d.Name(),
				Tested:  true,
				Error:   fmt.Sprintf("panic: %v", rec),
				Notes:   "Unexpected failure - may indicate missing hardware",
			}
		}
	}()

	return d.Probe(ctx)
}
