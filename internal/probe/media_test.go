package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/probelab/browsercheck/internal/platform/platformtest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera_Probe(t *testing.T) {
	t.Parallel()

	t.Run("stops every track exactly once on success", func(t *testing.T) {
		t.Parallel()

		tracks := []*platformtest.Track{
			{TrackKind: "video", TrackLabel: "front"},
			{TrackKind: "video", TrackLabel: "rear"},
		}
		media := &platformtest.MediaDevices{Stream: &platformtest.Stream{TrackList: tracks}}

		result := NewCamera(logrus.New(), media).Probe(context.Background())

		require.True(t, result.Tested)
		require.True(t, result.Supported)
		assert.Contains(t, result.Notes, "2 video track(s)")
		assert.True(t, media.LastConstraints.Video)
		assert.False(t, media.LastConstraints.Audio)

		for _, track := range tracks {
			assert.Equal(t, 1, track.StopCalls)
		}
	})

	t.Run("permission denial becomes a failure result", func(t *testing.T) {
		t.Parallel()

		media := &platformtest.MediaDevices{Err: platform.ErrPermissionDenied}

		result := NewCamera(logrus.New(), media).Probe(context.Background())

		require.True(t, result.Tested)
		require.False(t, result.Supported)
		assert.NotEmpty(t, result.Error)
		assert.Contains(t, result.Notes, "Permission denied")
	})

	t.Run("missing media surface reports unsupported", func(t *testing.T) {
		t.Parallel()

		result := NewCamera(logrus.New(), nil).Probe(context.Background())

		require.True(t, result.Tested)
		require.False(t, result.Supported)
		assert.Contains(t, result.Notes, "not available")
	})
}

func TestMicrophone_Probe(t *testing.T) {
	t.Parallel()

	t.Run("stops acquired audio tracks", func(t *testing.T) {
		t.Parallel()

		track := &platformtest.Track{TrackKind: "audio", TrackLabel: "built-in"}
		media := &platformtest.MediaDevices{Stream: &platformtest.Stream{TrackList: []*platformtest.Track{track}}}

		result := NewMicrophone(logrus.New(), media).Probe(context.Background())

		require.True(t, result.Supported)
		assert.Contains(t, result.Notes, "1 audio track(s)")
		assert.True(t, media.LastConstraints.Audio)
		assert.Equal(t, 1, track.StopCalls)
	})

	t.Run("hardware failure keeps the raw error", func(t *testing.T) {
		t.Parallel()

		media := &platformtest.MediaDevices{Err: errors.New("device wedged")}

		result := NewMicrophone(logrus.New(), media).Probe(context.Background())

		require.False(t, result.Supported)
		assert.Equal(t, "device wedged", result.Error)
		assert.Contains(t, result.Notes, "missing hardware")
	})

	t.Run("records probe duration on success", func(t *testing.T) {
		t.Parallel()

		media := &platformtest.MediaDevices{Stream: &platformtest.Stream{}}

		result := NewMicrophone(logrus.New(), media).Probe(context.Background())

		require.True(t, result.Supported)
		assert.GreaterOrEqual(t, result.PerformanceMS, 0.0)
	})
}
