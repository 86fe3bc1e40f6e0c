// Package metrics provides probe execution metrics collection and
// aggregation for terminal output.
package metrics

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ProbeMetric captures metrics about a single capability check.
type ProbeMetric struct {
	Feature   string
	Supported bool
	Duration  time.Duration
	Error     string // empty if supported
	Timestamp time.Time
}

// SummaryMetric provides aggregate statistics across a run.
type SummaryMetric struct {
	TotalDuration time.Duration
	TotalProbes   int
	Supported     int
	Unsupported   int
	Score         int // percentage of supported capabilities
}

// Collector interface for metrics collection.
type Collector interface {
	Start(ctx context.Context) error
	Stop() error
	RecordProbe(metric ProbeMetric)
	GetProbeMetrics() []ProbeMetric
	GetSummary() SummaryMetric
}

// collector implements Collector interface.
type collector struct {
	log       logrus.FieldLogger
	mu        sync.RWMutex
	probes    []ProbeMetric
	startTime time.Time
}

// NewCollector creates a new metrics collector.
func NewCollector(log logrus.FieldLogger) Collector {
	return &collector{
		log:    log.WithField("component", "metrics_collector"),
		probes: make([]ProbeMetric, 0, 16), // capacity hint
	}
}

func (c *collector) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTime = time.Now()

	c.log.Debug("metrics collector started")

	return nil
}

func (c *collector) Stop() error {
	c.log.Debug("metrics collector stopped")
	return nil
}

// RecordProbe records the outcome of one capability check.
func (c *collector) RecordProbe(metric ProbeMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if metric.Timestamp.IsZero() {
		metric.Timestamp = time.Now()
	}

	c.probes = append(c.probes, metric)
}

// GetProbeMetrics returns a copy of all recorded probe metrics.
func (c *collector) GetProbeMetrics() []ProbeMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ProbeMetric, len(c.probes))
	copy(out, c.probes)

	return out
}

// GetSummary aggregates recorded metrics into a run summary.
func (c *collector) GetSummary() SummaryMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary := SummaryMetric{
		TotalProbes: len(c.probes),
	}

	if !c.startTime.IsZero() {
		summary.TotalDuration = time.Since(c.startTime)
	}

	for _, p := range c.probes {
		if p.Supported {
			summary.Supported++
		} else {
			summary.Unsupported++
		}
	}

	if summary.TotalProbes > 0 {
		summary.Score = int(math.Round(100 * float64(summary.Supported) / float64(summary.TotalProbes)))
	}

	return summary
}
