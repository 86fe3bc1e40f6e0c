package probe

import (
	"context"
	"strings"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// Performance enumerates performance measurement surfaces. Unlike the other
// probes it records its elapsed time on the failure path too, so a suite
// always carries at least one timing figure.
type Performance struct {
	timing platform.TimingInfo
	log    logrus.FieldLogger
}

// NewPerformance creates the performance timing detector.
func NewPerformance(log logrus.FieldLogger, timing platform.TimingInfo) *Performance {
	return &Performance{
		timing: timing,
		log:    log.WithField("probe", FeaturePerformance),
	}
}

// Name returns the capability name.
func (p *Performance) Name() string { return FeaturePerformance }

// Probe detects the timing feature set.
func (p *Performance) Probe(ctx context.Context) Result {
	start := time.Now()

	if p.timing == nil {
		result := failure(FeaturePerformance, platform.ErrUnsupported, "")
		result.PerformanceMS = elapsedMS(start)

		return result
	}

	set, err := p.timing.Detect(ctx)
	if err != nil {
		p.log.WithError(err).Debug("timing feature detection failed")

		result := failure(FeaturePerformance, err, "")
		result.PerformanceMS = elapsedMS(start)

		return result
	}

	present := set.Present()
	if len(present) == 0 {
		result := failure(FeaturePerformance, platform.ErrUnsupported,
			"No performance measurement surfaces present")
		result.PerformanceMS = elapsedMS(start)

		return result
	}

	return success(FeaturePerformance, start, "Available: "+strings.Join(present, ", "))
}
