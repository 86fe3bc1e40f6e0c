// Package probe implements the capability detectors. Each detector exercises
// one browser capability through the narrow platform interfaces and converts
// every possible outcome into a Result; detectors are total and never let a
// failure escape the probe boundary.
package probe

import (
	"context"
	"errors"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
)

// Feature names for the fixed battery. These are the unique keys under which
// results appear in a suite and in battery selection files.
const (
	FeatureCamera        = "camera"
	FeatureMicrophone    = "microphone"
	FeatureGeolocation   = "geolocation"
	FeatureMotionSensors = "motion"
	FeatureFileSystem    = "filesystem"
	FeatureNotifications = "notifications"
	FeatureAppSupport    = "pwa"
	FeatureNetwork       = "network"
	FeaturePerformance   = "performance"
)

// Result is the outcome of a single capability check.
type Result struct {
	Feature       string  `json:"feature"`
	Supported     bool    `json:"supported"`
	Tested        bool    `json:"tested"`
	Error         string  `json:"error,omitempty"`
	PerformanceMS float64 `json:"performance,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// Detector is a single async capability check. Probe is total: it must
// return a Result for every outcome and never panic or propagate an error.
type Detector interface {
	Name() string
	Probe(ctx context.Context) Result
}

// elapsedMS measures wall-clock probe duration in milliseconds.
func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

// success builds a passing result.
func success(feature string, start time.Time, notes string) Result {
	return Result{
		Feature:       feature,
		Supported:     true,
		Tested:        true,
		PerformanceMS: elapsedMS(start),
		Notes:         notes,
	}
}

// failure builds a failing result, deriving notes from the error taxonomy
// when the caller has nothing more specific to say.
func failure(feature string, err error, notes string) Result {
	msg := "unknown failure"
	if err != nil {
		msg = err.Error()
	}

	if notes == "" {
		notes = classify(err)
	}

	return Result{
		Feature:   feature,
		Supported: false,
		Tested:    true,
		Error:     msg,
		Notes:     notes,
	}
}

// classify phrases the likely cause of a failure: permission vs unsupported
// vs timeout vs anything else.
func classify(err error) string {
	switch {
	case errors.Is(err, platform.ErrPermissionDenied):
		return "Permission denied - grant access and re-run the check"
	case errors.Is(err, platform.ErrUnsupported):
		return "API not available on this platform"
	case errors.Is(err, platform.ErrTimeout):
		return "Check timed out before the platform responded"
	default:
		return "Unexpected failure - may indicate missing hardware"
	}
}
