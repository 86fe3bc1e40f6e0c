package probe

import (
	"context"
	"testing"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/probelab/browsercheck/internal/platform/platformtest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeolocation_Probe(t *testing.T) {
	t.Parallel()

	t.Run("reports accuracy on success", func(t *testing.T) {
		t.Parallel()

		geo := &platformtest.Geolocator{Pos: platform.Position{Latitude: 59.33, Longitude: 18.07, AccuracyMeters: 42}}

		result := NewGeolocation(logrus.New(), geo, platform.PositionOptions{}).Probe(context.Background())

		require.True(t, result.Supported)
		assert.Contains(t, result.Notes, "accuracy 42m")
	})

	t.Run("bounded wait converts a hang into a timeout failure", func(t *testing.T) {
		t.Parallel()

		geo := &platformtest.Geolocator{Block: true}
		opts := platform.PositionOptions{Timeout: 50 * time.Millisecond}

		result := NewGeolocation(logrus.New(), geo, opts).Probe(context.Background())

		require.True(t, result.Tested)
		require.False(t, result.Supported)
		assert.Contains(t, result.Error, "timed out")
	})

	t.Run("denied position is distinguished from absence", func(t *testing.T) {
		t.Parallel()

		geo := &platformtest.Geolocator{Err: platform.ErrPermissionDenied}

		result := NewGeolocation(logrus.New(), geo, platform.PositionOptions{}).Probe(context.Background())

		require.False(t, result.Supported)
		assert.Contains(t, result.Notes, "Permission denied")
	})

	t.Run("missing geolocator reports unsupported", func(t *testing.T) {
		t.Parallel()

		result := NewGeolocation(logrus.New(), nil, platform.PositionOptions{}).Probe(context.Background())

		require.False(t, result.Supported)
		assert.Contains(t, result.Notes, "not available")
	})
}
