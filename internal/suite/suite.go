// Package suite assembles capability check results into scored, timestamped
// test suites.
package suite

import (
	"math"
	"time"

	"github.com/probelab/browsercheck/internal/probe"
	"github.com/probelab/browsercheck/internal/profiler"
)

// Suite is one complete run of one or more probes. Constructed once at the
// end of a run and immutable after construction.
type Suite struct {
	ID           string               `json:"id"`
	Browser      profiler.BrowserInfo `json:"browser"`
	Timestamp    time.Time            `json:"timestamp"`
	Results      []probe.Result       `json:"results"`
	OverallScore int                  `json:"overallScore"`
}

// Score computes the compatibility score: the rounded percentage of
// supported capabilities. An empty result set scores 0 by convention, so a
// zero-probe run never surfaces NaN arithmetic downstream.
func Score(results []probe.Result) int {
	if len(results) == 0 {
		return 0
	}

	supported := 0

	for _, r := range results {
		if r.Supported {
			supported++
		}
	}

	return int(math.Round(100 * float64(supported) / float64(len(results))))
}
