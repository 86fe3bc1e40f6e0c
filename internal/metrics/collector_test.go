package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordAndSummarize(t *testing.T) {
	t.Parallel()

	c := NewCollector(logrus.New())
	require.NoError(t, c.Start(context.Background()))

	defer func() {
		require.NoError(t, c.Stop())
	}()

	c.RecordProbe(ProbeMetric{Feature: "camera", Supported: true, Duration: 10 * time.Millisecond})
	c.RecordProbe(ProbeMetric{Feature: "microphone", Supported: true, Duration: 8 * time.Millisecond})
	c.RecordProbe(ProbeMetric{Feature: "geolocation", Supported: false, Error: "permission denied"})

	recorded := c.GetProbeMetrics()
	require.Len(t, recorded, 3)
	assert.Equal(t, "camera", recorded[0].Feature)
	assert.False(t, recorded[2].Timestamp.IsZero())

	summary := c.GetSummary()
	assert.Equal(t, 3, summary.TotalProbes)
	assert.Equal(t, 2, summary.Supported)
	assert.Equal(t, 1, summary.Unsupported)
	assert.Equal(t, 67, summary.Score)
	assert.Greater(t, summary.TotalDuration, time.Duration(0))
}

func TestCollector_EmptySummary(t *testing.T) {
	t.Parallel()

	c := NewCollector(logrus.New())

	summary := c.GetSummary()

	assert.Zero(t, summary.TotalProbes)
	assert.Zero(t, summary.Score)
	assert.Zero(t, summary.TotalDuration)
}

func TestCollector_ConcurrentRecording(t *testing.T) {
	t.Parallel()

	c := NewCollector(logrus.New())
	require.NoError(t, c.Start(context.Background()))

	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			c.RecordProbe(ProbeMetric{Feature: "camera", Supported: true})
			done <- struct{}{}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}

	assert.Len(t, c.GetProbeMetrics(), 8)
}
