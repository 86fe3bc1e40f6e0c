package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// Camera checks whether a video capture stream can be acquired.
type Camera struct {
	media platform.MediaDevices
	log   logrus.FieldLogger
}

// NewCamera creates the camera detector.
func NewCamera(log logrus.FieldLogger, media platform.MediaDevices) *Camera {
	return &Camera{
		media: media,
		log:   log.WithField("probe", FeatureCamera),
	}
}

// Name returns the capability name.
func (p *Camera) Name() string { return FeatureCamera }

// Probe requests a short-lived video stream, counts its tracks and stops
// every track before returning.
func (p *Camera) Probe(ctx context.Context) Result {
	start := time.Now()

	if p.media == nil {
		return failure(FeatureCamera, platform.ErrUnsupported, "")
	}

	stream, err := p.media.AcquireStream(ctx, platform.StreamConstraints{Video: true})
	if err != nil {
		p.log.WithError(err).Debug("video stream acquisition failed")
		return failure(FeatureCamera, err, "")
	}

	tracks := releaseTracks(p.log, stream)

	return success(FeatureCamera, start, fmt.Sprintf("Camera accessible (%d video track(s))", tracks))
}

// Microphone checks whether an audio capture stream can be acquired.
type Microphone struct {
	media platform.MediaDevices
	log   logrus.FieldLogger
}

// NewMicrophone creates the microphone detector.
func NewMicrophone(log logrus.FieldLogger, media platform.MediaDevices) *Microphone {
	return &Microphone{
		media: media,
		log:   log.WithField("probe", FeatureMicrophone),
	}
}

// Name returns the capability name.
func (p *Microphone) Name() string { return FeatureMicrophone }

// Probe requests a short-lived audio stream, counts its tracks and stops
// every track before returning.
func (p *Microphone) Probe(ctx context.Context) Result {
	start := time.Now()

	if p.media == nil {
		return failure(FeatureMicrophone, platform.ErrUnsupported, "")
	}

	stream, err := p.media.AcquireStream(ctx, platform.StreamConstraints{Audio: true})
	if err != nil {
		p.log.WithError(err).Debug("audio stream acquisition failed")
		return failure(FeatureMicrophone, err, "")
	}

	tracks := releaseTracks(p.log, stream)

	return success(FeatureMicrophone, start, fmt.Sprintf("Microphone accessible (%d audio track(s))", tracks))
}

// releaseTracks stops every track of an acquired stream exactly once and
// returns the track count. A stream must never be left held open after the
// probe that acquired it returns.
func releaseTracks(log logrus.FieldLogger, stream platform.MediaStream) int {
	tracks := stream.Tracks()

	for _, track := range tracks {
		if err := track.Stop(); err != nil {
			log.WithError(err).WithField("kind", track.Kind()).Warn("failed to stop media track")
		}
	}

	return len(tracks)
}
