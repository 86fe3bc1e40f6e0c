package suite

import (
	"context"
	"testing"
	"time"

	"github.com/probelab/browsercheck/internal/metrics"
	"github.com/probelab/browsercheck/internal/platform"
	"github.com/probelab/browsercheck/internal/platform/platformtest"
	"github.com/probelab/browsercheck/internal/probe"
	"github.com/probelab/browsercheck/internal/profiler"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, surfaces platform.Surfaces) (*Runner, metrics.Collector) {
	t.Helper()

	log := logrus.New()
	collector := metrics.NewCollector(log)

	runner := NewRunner(&RunnerConfig{
		Logger:   log,
		Registry: probe.Battery(log, surfaces, platform.PositionOptions{}),
		Profiler: profiler.New(surfaces.Environment),
		Metrics:  collector,
	})

	return runner, collector
}

func TestRunner_RunAll(t *testing.T) {
	t.Parallel()

	runner, collector := newTestRunner(t, platformtest.AllSupported())

	s := runner.RunAll(context.Background())

	require.Len(t, s.Results, 9)
	assert.Equal(t, 100, s.OverallScore)
	assert.NotEmpty(t, s.ID)
	assert.WithinDuration(t, time.Now(), s.Timestamp, 5*time.Second)
	assert.Equal(t, "Chrome", s.Browser.Name)
	assert.Equal(t, "120", s.Browser.Version)

	// Results keep registration order regardless of completion order.
	for i, name := range probe.Battery(logrus.New(), platformtest.AllSupported(), platform.PositionOptions{}).Names() {
		assert.Equal(t, name, s.Results[i].Feature)
	}

	summary := collector.GetSummary()
	assert.Equal(t, 9, summary.TotalProbes)
	assert.Equal(t, 9, summary.Supported)
	assert.Equal(t, 100, summary.Score)
}

func TestRunner_RunAll_PartialFailure(t *testing.T) {
	t.Parallel()

	surfaces := platformtest.AllSupported()
	surfaces.MediaDevices = &platformtest.MediaDevices{Err: platform.ErrPermissionDenied}
	surfaces.Geolocator = &platformtest.Geolocator{Err: platform.ErrUnsupported}

	runner, _ := newTestRunner(t, surfaces)

	s := runner.RunAll(context.Background())

	require.Len(t, s.Results, 9)
	assert.Equal(t, 67, s.OverallScore)

	byFeature := make(map[string]probe.Result, len(s.Results))
	for _, r := range s.Results {
		byFeature[r.Feature] = r
	}

	assert.False(t, byFeature[probe.FeatureCamera].Supported)
	assert.False(t, byFeature[probe.FeatureMicrophone].Supported)
	assert.False(t, byFeature[probe.FeatureGeolocation].Supported)
	assert.True(t, byFeature[probe.FeatureNotifications].Supported)

	// Every probe settles even when some fail.
	for _, r := range s.Results {
		assert.True(t, r.Tested, r.Feature)
	}
}

func TestRunner_RunSelected(t *testing.T) {
	t.Parallel()

	t.Run("results match selection order", func(t *testing.T) {
		t.Parallel()

		runner, _ := newTestRunner(t, platformtest.AllSupported())

		s := runner.RunSelected(context.Background(), []string{
			probe.FeatureNetwork,
			probe.FeatureCamera,
		})

		require.Len(t, s.Results, 2)
		assert.Equal(t, probe.FeatureNetwork, s.Results[0].Feature)
		assert.Equal(t, probe.FeatureCamera, s.Results[1].Feature)
		assert.Equal(t, 100, s.OverallScore)
	})

	t.Run("unknown names are skipped", func(t *testing.T) {
		t.Parallel()

		runner, _ := newTestRunner(t, platformtest.AllSupported())

		s := runner.RunSelected(context.Background(), []string{
			probe.FeatureCamera,
			"telepathy",
			probe.FeatureNetwork,
		})

		require.Len(t, s.Results, 2)
		assert.Equal(t, probe.FeatureCamera, s.Results[0].Feature)
		assert.Equal(t, probe.FeatureNetwork, s.Results[1].Feature)
	})

	t.Run("duplicates collapse to first occurrence", func(t *testing.T) {
		t.Parallel()

		runner, _ := newTestRunner(t, platformtest.AllSupported())

		s := runner.RunSelected(context.Background(), []string{
			probe.FeatureCamera,
			probe.FeatureCamera,
			probe.FeatureCamera,
		})

		require.Len(t, s.Results, 1)
	})

	t.Run("empty selection scores zero", func(t *testing.T) {
		t.Parallel()

		runner, _ := newTestRunner(t, platformtest.AllSupported())

		s := runner.RunSelected(context.Background(), nil)

		require.Empty(t, s.Results)
		assert.Equal(t, 0, s.OverallScore)
		assert.NotEmpty(t, s.ID)
	})
}

// panicDetector blows up on Probe so the runner's recovery path can be
// exercised.
type panicDetector struct{}

func (panicDetector) Name() string { return "unstable" }

func (panicDetector) Probe(_ context.Context) probe.Result {
	panic("wires crossed")
}

func TestRunner_RecoversFromProbePanic(t *testing.T) {
	t.Parallel()

	log := logrus.New()

	registry := probe.NewRegistry(log)
	registry.Register(panicDetector{})
	registry.Register(probe.NewFileSystem(log, &platformtest.FileAccess{NativePicker: true}))

	runner := NewRunner(&RunnerConfig{
		Logger:   log,
		Registry: registry,
		Profiler: profiler.New(nil),
		Metrics:  metrics.NewCollector(log),
	})

	s := runner.RunAll(context.Background())

	require.Len(t, s.Results, 2)

	crashed := s.Results[0]
	assert.Equal(t, "unstable", crashed.Feature)
	assert.True(t, crashed.Tested)
	assert.False(t, crashed.Supported)
	assert.Contains(t, crashed.Error, "panic: wires crossed")

	// The other probe is unaffected.
	assert.True(t, s.Results[1].Supported)
	assert.Equal(t, 50, s.OverallScore)
}
